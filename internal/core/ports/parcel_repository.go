package ports

import (
	"context"
	"time"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Delete removes a parcel aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByQRCodePath retrieves the parcel holding the given pickup credential.
	GetByQRCodePath(ctx context.Context, qrCodePath string) (*parcel.Parcel, error)

	// GetAllReceivedBefore retrieves parcels still in Received status whose
	// deposit timestamp is older than the cutoff. Used by the reminder job.
	GetAllReceivedBefore(ctx context.Context, cutoff time.Time) ([]*parcel.Parcel, error)
}
