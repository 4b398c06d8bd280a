package relaypoint_test

import (
	"testing"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/parcel"
	"relais/internal/core/domain/model/relaypoint"
	"relais/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) relaypoint.Address {
	t.Helper()
	addr, err := relaypoint.NewAddress("12 rue de la Paix", "Paris", "75002")
	require.NoError(t, err)
	return addr
}

func testCoordinates(t *testing.T) kernel.Coordinates {
	t.Helper()
	coords, err := kernel.NewCoordinates(48.8566, 2.3522)
	require.NoError(t, err)
	return coords
}

func newTestRelayPoint(t *testing.T, capacity int) *relaypoint.RelayPoint {
	t.Helper()
	rp, err := relaypoint.NewRelayPoint(
		kernel.NewUUID(), "Tabac de la Paix", testCoordinates(t), testAddress(t),
		kernel.NewUUID(), capacity, "Mon-Sat 8:00-19:00", "corner shop")
	require.NoError(t, err)
	return rp
}

func newHeldParcel(t *testing.T, rp *relaypoint.RelayPoint, code string) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "books", 1.0, 10)
	require.NoError(t, err)
	require.NoError(t, p.AssignQRCodePath(code))
	require.NoError(t, rp.ReceiveParcel(p.ID()))
	return p
}

func TestNewRelayPoint(t *testing.T) {
	t.Run("creates empty relay point", func(t *testing.T) {
		rp := newTestRelayPoint(t, 10)

		assert.Equal(t, 10, rp.MaxCapacity())
		assert.Equal(t, 0, rp.CurrentStock())
		assert.Empty(t, rp.ParcelIDs())
		assert.Nil(t, rp.Rating())
		assert.True(t, rp.CanAcceptParcel())
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		for _, capacity := range []int{0, -3} {
			_, err := relaypoint.NewRelayPoint(
				kernel.NewUUID(), "Shop", testCoordinates(t), testAddress(t),
				kernel.NewUUID(), capacity, "Mon-Sat", "")

			require.Error(t, err)
		}
	})

	t.Run("rejects missing name and hours", func(t *testing.T) {
		_, err := relaypoint.NewRelayPoint(
			kernel.NewUUID(), "", testCoordinates(t), testAddress(t),
			kernel.NewUUID(), 5, "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var rp relaypoint.RelayPoint

		require.Error(t, rp.Validate())
	})
}

func TestRelayPoint_ReceiveParcel(t *testing.T) {
	t.Run("appends and increments stock", func(t *testing.T) {
		rp := newTestRelayPoint(t, 2)
		parcelID := kernel.NewUUID()

		err := rp.ReceiveParcel(parcelID)

		require.NoError(t, err)
		assert.Equal(t, 1, rp.CurrentStock())
		assert.True(t, rp.Holds(parcelID))
	})

	t.Run("full relay point rejects with capacity error", func(t *testing.T) {
		rp := newTestRelayPoint(t, 1)
		require.NoError(t, rp.ReceiveParcel(kernel.NewUUID()))

		err := rp.ReceiveParcel(kernel.NewUUID())

		require.ErrorIs(t, err, relaypoint.ErrCapacityExceeded)
		assert.Equal(t, 1, rp.CurrentStock())
		assert.Len(t, rp.ParcelIDs(), 1)
	})

	t.Run("duplicate parcel is rejected", func(t *testing.T) {
		rp := newTestRelayPoint(t, 5)
		parcelID := kernel.NewUUID()
		require.NoError(t, rp.ReceiveParcel(parcelID))

		err := rp.ReceiveParcel(parcelID)

		require.ErrorIs(t, err, relaypoint.ErrParcelAlreadyHeld)
		assert.Equal(t, 1, rp.CurrentStock())
	})

	t.Run("stock never exceeds capacity over a call sequence", func(t *testing.T) {
		rp := newTestRelayPoint(t, 3)

		for i := 0; i < 10; i++ {
			_ = rp.ReceiveParcel(kernel.NewUUID())
			assert.LessOrEqual(t, rp.CurrentStock(), rp.MaxCapacity())
			assert.Equal(t, len(rp.ParcelIDs()), rp.CurrentStock())
		}
		assert.Equal(t, 3, rp.CurrentStock())
	})
}

func TestRelayPoint_WithdrawParcel(t *testing.T) {
	const code = "/qr-codes/QRCode_abc.png"

	t.Run("removes and decrements stock", func(t *testing.T) {
		rp := newTestRelayPoint(t, 2)
		p := newHeldParcel(t, rp, code)

		err := rp.WithdrawParcel(p, code)

		require.NoError(t, err)
		assert.Equal(t, 0, rp.CurrentStock())
		assert.False(t, rp.Holds(p.ID()))
	})

	t.Run("wrong credential leaves held set unchanged", func(t *testing.T) {
		rp := newTestRelayPoint(t, 2)
		p := newHeldParcel(t, rp, code)

		err := rp.WithdrawParcel(p, "wrong")

		require.ErrorIs(t, err, parcel.ErrInvalidQRCode)
		assert.Equal(t, 1, rp.CurrentStock())
		assert.True(t, rp.Holds(p.ID()))
	})

	t.Run("parcel not held here is rejected", func(t *testing.T) {
		rp := newTestRelayPoint(t, 2)
		p, err := parcel.NewParcel(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "books", 1.0, 10)
		require.NoError(t, err)
		require.NoError(t, p.AssignQRCodePath(code))

		err = rp.WithdrawParcel(p, code)

		require.ErrorIs(t, err, relaypoint.ErrParcelNotHeld)
	})
}

func TestRelayPoint_CapacityScenario(t *testing.T) {
	// capaciteMaximale=1, stockActuel=0: first reception succeeds,
	// second fails with the capacity error.
	rp := newTestRelayPoint(t, 1)

	require.NoError(t, rp.ReceiveParcel(kernel.NewUUID()))
	assert.Equal(t, 1, rp.CurrentStock())

	err := rp.ReceiveParcel(kernel.NewUUID())
	require.ErrorIs(t, err, relaypoint.ErrCapacityExceeded)
}

func TestRelayPoint_RecomputeStock(t *testing.T) {
	coords := testCoordinates(t)
	addr := testAddress(t)
	held := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	// Restore with a drifted counter, then reconcile.
	rp, err := relaypoint.RestoreRelayPoint(
		kernel.NewUUID(), "Shop", coords, addr, kernel.NewUUID(),
		10, 5, "Mon-Sat", "", nil, held)
	require.NoError(t, err)
	assert.Equal(t, 5, rp.CurrentStock())

	rp.RecomputeStock()

	assert.Equal(t, 2, rp.CurrentStock())
}

func TestRelayPoint_ChangeRating(t *testing.T) {
	rp := newTestRelayPoint(t, 5)

	require.NoError(t, rp.ChangeRating(4.5))
	require.NotNil(t, rp.Rating())
	assert.InDelta(t, 4.5, *rp.Rating(), 0.0)

	for _, bad := range []float64{-0.1, 5.5} {
		require.Error(t, rp.ChangeRating(bad))
	}
}

func TestRelayPoint_ChangeHours(t *testing.T) {
	rp := newTestRelayPoint(t, 5)

	require.NoError(t, rp.ChangeHours("Mon-Sun 7:00-22:00"))
	assert.Equal(t, "Mon-Sun 7:00-22:00", rp.OpeningHours())

	require.Error(t, rp.ChangeHours(""))
}

func TestRelayPoint_UpdateDetails(t *testing.T) {
	t.Run("replaces administrative fields", func(t *testing.T) {
		rp := newTestRelayPoint(t, 5)
		coords, _ := kernel.NewCoordinates(45.7640, 4.8357)
		addr, _ := relaypoint.NewAddress("1 place Bellecour", "Lyon", "69002")

		err := rp.UpdateDetails("Presse Bellecour", coords, addr, 8, "Tue-Sun", "kiosk")

		require.NoError(t, err)
		assert.Equal(t, "Presse Bellecour", rp.Name())
		assert.Equal(t, 8, rp.MaxCapacity())
		assert.Equal(t, "Lyon", rp.Address().City())
	})

	t.Run("rejects capacity below current stock", func(t *testing.T) {
		rp := newTestRelayPoint(t, 5)
		require.NoError(t, rp.ReceiveParcel(kernel.NewUUID()))
		require.NoError(t, rp.ReceiveParcel(kernel.NewUUID()))

		err := rp.UpdateDetails("Shop", testCoordinates(t), testAddress(t), 1, "Mon-Sat", "")

		require.Error(t, err)
		assert.Equal(t, 5, rp.MaxCapacity())
	})
}

func TestRestoreRelayPoint(t *testing.T) {
	t.Run("rejects stock above capacity", func(t *testing.T) {
		_, err := relaypoint.RestoreRelayPoint(
			kernel.NewUUID(), "Shop", testCoordinates(t), testAddress(t),
			kernel.NewUUID(), 2, 3, "Mon-Sat", "", nil, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("restores rating", func(t *testing.T) {
		rating := 3.7

		rp, err := relaypoint.RestoreRelayPoint(
			kernel.NewUUID(), "Shop", testCoordinates(t), testAddress(t),
			kernel.NewUUID(), 2, 0, "Mon-Sat", "", &rating, nil)

		require.NoError(t, err)
		require.NotNil(t, rp.Rating())
		assert.InDelta(t, 3.7, *rp.Rating(), 0.0)
	})
}
