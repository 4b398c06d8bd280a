package ports

import (
	"context"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/owner"
)

// OwnerRepository defines the persistence contract for owner aggregates.
type OwnerRepository interface {
	// Add persists a new owner aggregate to storage.
	Add(ctx context.Context, aggregate *owner.Owner) error

	// Update persists changes to an existing owner aggregate.
	Update(ctx context.Context, aggregate *owner.Owner) error

	// Delete removes an owner aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an owner aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*owner.Owner, error)
}
