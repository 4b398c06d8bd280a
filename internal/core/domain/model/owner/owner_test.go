package owner_test

import (
	"testing"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/owner"
	"relais/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOwner(t *testing.T) *owner.Owner {
	t.Helper()
	o, err := owner.NewOwner(kernel.NewUUID(), "Pierre Blanc", "pierre@example.com")
	require.NoError(t, err)
	return o
}

func TestNewOwner(t *testing.T) {
	t.Run("creates owner with no relay points", func(t *testing.T) {
		o := newTestOwner(t)

		assert.Equal(t, "Pierre Blanc", o.Name())
		assert.Empty(t, o.RelayPointIDs())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := owner.NewOwner(kernel.NewUUID(), "", "pierre@example.com")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = owner.NewOwner(kernel.NewUUID(), "Pierre", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = owner.NewOwner(kernel.NewUUID(), "Pierre", "not-an-email")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o owner.Owner

		require.Error(t, o.Validate())
	})
}

func TestOwner_Update(t *testing.T) {
	t.Run("replaces name and email", func(t *testing.T) {
		o := newTestOwner(t)
		relayID := kernel.NewUUID()
		require.NoError(t, o.AddRelayPoint(relayID))

		require.NoError(t, o.Update("Pierre Noir", "noir@example.com"))

		assert.Equal(t, "Pierre Noir", o.Name())
		assert.Equal(t, "noir@example.com", o.Email())
		assert.True(t, o.Owns(relayID))
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		o := newTestOwner(t)

		require.ErrorIs(t, o.Update("", "noir@example.com"), errs.ErrValueIsRequired)
		require.ErrorIs(t, o.Update("Pierre", "not-an-email"), owner.ErrEmailIsInvalid)
	})
}

func TestOwner_AddRelayPoint(t *testing.T) {
	t.Run("adds relay point", func(t *testing.T) {
		o := newTestOwner(t)
		relayID := kernel.NewUUID()

		require.NoError(t, o.AddRelayPoint(relayID))

		assert.True(t, o.Owns(relayID))
		assert.Len(t, o.RelayPointIDs(), 1)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		o := newTestOwner(t)
		relayID := kernel.NewUUID()
		require.NoError(t, o.AddRelayPoint(relayID))

		err := o.AddRelayPoint(relayID)

		require.ErrorIs(t, err, owner.ErrRelayPointAlreadyOwned)
		assert.Len(t, o.RelayPointIDs(), 1)
	})
}

func TestOwner_RemoveRelayPoint(t *testing.T) {
	t.Run("removes owned relay point", func(t *testing.T) {
		o := newTestOwner(t)
		relayID := kernel.NewUUID()
		require.NoError(t, o.AddRelayPoint(relayID))

		require.NoError(t, o.RemoveRelayPoint(relayID))

		assert.False(t, o.Owns(relayID))
	})

	t.Run("rejects unknown relay point", func(t *testing.T) {
		o := newTestOwner(t)

		err := o.RemoveRelayPoint(kernel.NewUUID())

		require.ErrorIs(t, err, owner.ErrRelayPointNotOwned)
	})
}

func TestRestoreOwner(t *testing.T) {
	ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	o, err := owner.RestoreOwner(kernel.NewUUID(), "Pierre", "p@example.com", ids)

	require.NoError(t, err)
	assert.Len(t, o.RelayPointIDs(), 2)
	assert.True(t, o.Owns(ids[0]))
}
