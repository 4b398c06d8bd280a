package parcel_test

import (
	"testing"
	"time"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/parcel"
	"relais/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "books", 2.5, 30)
	require.NoError(t, err)
	return p
}

func TestNewParcel(t *testing.T) {
	t.Run("creates pending parcel", func(t *testing.T) {
		id := kernel.NewUUID()
		sender := kernel.NewUUID()
		recipient := kernel.NewUUID()

		p, err := parcel.NewParcel(id, sender, recipient, "books", 2.5, 30)

		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(id))
		assert.True(t, p.SenderID().IsEqual(sender))
		assert.True(t, p.RecipientID().IsEqual(recipient))
		assert.Equal(t, parcel.StatusPending, p.Status())
		assert.Nil(t, p.RelayPointID())
		assert.Nil(t, p.DepositedAt())
		assert.Nil(t, p.WithdrawnAt())
		assert.Empty(t, p.QRCodePath())
	})

	t.Run("rejects non-positive weight", func(t *testing.T) {
		for _, weight := range []float64{0, -1.5} {
			_, err := parcel.NewParcel(
				kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "books", weight, 30)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("rejects identical sender and recipient", func(t *testing.T) {
		client := kernel.NewUUID()

		_, err := parcel.NewParcel(kernel.NewUUID(), client, client, "books", 1, 30)

		require.Error(t, err)
		require.ErrorIs(t, err, parcel.ErrSenderAndRecipientAreSame)
	})

	t.Run("rejects invalid ids", func(t *testing.T) {
		var zero kernel.UUID

		_, err := parcel.NewParcel(zero, kernel.NewUUID(), kernel.NewUUID(), "books", 1, 30)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p parcel.Parcel

		require.Error(t, p.Validate())
	})
}

func TestParcel_VerifyQRCode(t *testing.T) {
	p := newTestParcel(t)
	require.NoError(t, p.AssignQRCodePath("/qr-codes/QRCode_abc.png"))

	assert.True(t, p.VerifyQRCode("/qr-codes/QRCode_abc.png"))
	assert.False(t, p.VerifyQRCode("wrong"))
	assert.False(t, p.VerifyQRCode(""))
}

func TestParcel_VerifyQRCode_WithoutCredential(t *testing.T) {
	p := newTestParcel(t)

	// No credential generated yet: nothing matches, not even empty input.
	assert.False(t, p.VerifyQRCode(""))
}

func TestParcel_AssignQRCodePath(t *testing.T) {
	t.Run("stores and replaces the credential", func(t *testing.T) {
		p := newTestParcel(t)

		require.NoError(t, p.AssignQRCodePath("/qr-codes/a.png"))
		assert.Equal(t, "/qr-codes/a.png", p.QRCodePath())

		require.NoError(t, p.AssignQRCodePath("/qr-codes/b.png"))
		assert.Equal(t, "/qr-codes/b.png", p.QRCodePath())
	})

	t.Run("rejects empty path", func(t *testing.T) {
		p := newTestParcel(t)

		require.Error(t, p.AssignQRCodePath(""))
	})
}

func TestParcel_MarkReceived(t *testing.T) {
	t.Run("from pending", func(t *testing.T) {
		p := newTestParcel(t)

		err := p.MarkReceived()

		require.NoError(t, err)
		assert.Equal(t, parcel.StatusReceived, p.Status())
		require.NotNil(t, p.DepositedAt())
		assert.WithinDuration(t, time.Now(), *p.DepositedAt(), time.Second)
	})

	t.Run("second reception is rejected", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.MarkReceived())

		err := p.MarkReceived()

		require.Error(t, err)
		assert.Equal(t, parcel.StatusReceived, p.Status())
	})
}

func TestParcel_MarkWithdrawn(t *testing.T) {
	const code = "/qr-codes/QRCode_abc.png"

	readyParcel := func(t *testing.T) *parcel.Parcel {
		p := newTestParcel(t)
		require.NoError(t, p.AssignQRCodePath(code))
		require.NoError(t, p.MarkReceived())
		return p
	}

	t.Run("succeeds with matching credential", func(t *testing.T) {
		p := readyParcel(t)

		err := p.MarkWithdrawn(code)

		require.NoError(t, err)
		assert.Equal(t, parcel.StatusWithdrawn, p.Status())
		require.NotNil(t, p.WithdrawnAt())
	})

	t.Run("fails with wrong credential and leaves state unchanged", func(t *testing.T) {
		p := readyParcel(t)

		err := p.MarkWithdrawn("wrong")

		require.ErrorIs(t, err, parcel.ErrInvalidQRCode)
		assert.Equal(t, parcel.StatusReceived, p.Status())
		assert.Nil(t, p.WithdrawnAt())
	})

	t.Run("fails before reception", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.AssignQRCodePath(code))

		err := p.MarkWithdrawn(code)

		require.Error(t, err)
		assert.Equal(t, parcel.StatusPending, p.Status())
	})

	t.Run("second withdrawal is rejected", func(t *testing.T) {
		p := readyParcel(t)
		require.NoError(t, p.MarkWithdrawn(code))

		err := p.MarkWithdrawn(code)

		require.Error(t, err)
	})
}

func TestParcel_ChangeStatus(t *testing.T) {
	t.Run("walks the full lifecycle", func(t *testing.T) {
		p := newTestParcel(t)

		require.NoError(t, p.ChangeStatus(parcel.StatusInTransit))
		require.NoError(t, p.ChangeStatus(parcel.StatusReceived))
		require.NotNil(t, p.DepositedAt())
		require.NoError(t, p.ChangeStatus(parcel.StatusDelivered))
		require.NoError(t, p.ChangeStatus(parcel.StatusWithdrawn))
		require.NotNil(t, p.WithdrawnAt())
	})

	t.Run("rejects illegal jumps", func(t *testing.T) {
		p := newTestParcel(t)

		err := p.ChangeStatus(parcel.StatusWithdrawn)

		require.Error(t, err)
		assert.Equal(t, parcel.StatusPending, p.Status())
	})
}

func TestParcel_AssignRelayPoint(t *testing.T) {
	t.Run("assigns while pending", func(t *testing.T) {
		p := newTestParcel(t)
		relayID := kernel.NewUUID()

		require.NoError(t, p.AssignRelayPoint(relayID))

		require.NotNil(t, p.RelayPointID())
		assert.True(t, p.RelayPointID().IsEqual(relayID))
	})

	t.Run("rejects reassignment after reception", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.AssignRelayPoint(kernel.NewUUID()))
		require.NoError(t, p.MarkReceived())

		err := p.AssignRelayPoint(kernel.NewUUID())

		require.Error(t, err)
	})
}

func TestRestoreParcel(t *testing.T) {
	t.Run("round-trips persisted state", func(t *testing.T) {
		relayID := kernel.NewUUID()
		deposited := time.Now().Add(-time.Hour)
		updated := time.Now()

		p, err := parcel.RestoreParcel(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &relayID,
			"books", 2.5, 30, parcel.StatusReceived,
			&deposited, nil, updated, "/qr-codes/QRCode_x.png")

		require.NoError(t, err)
		assert.Equal(t, parcel.StatusReceived, p.Status())
		assert.Equal(t, "/qr-codes/QRCode_x.png", p.QRCodePath())
		require.NotNil(t, p.DepositedAt())
		assert.Equal(t, deposited, *p.DepositedAt())
	})

	t.Run("rejects invalid persisted status", func(t *testing.T) {
		_, err := parcel.RestoreParcel(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			"books", 2.5, 30, parcel.StatusUnknown,
			nil, nil, time.Now(), "")

		require.Error(t, err)
	})
}
