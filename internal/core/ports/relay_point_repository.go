package ports

import (
	"context"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/relaypoint"
)

// RelayPointRepository defines the persistence contract for relay-point
// aggregates, including their held parcel-id set.
type RelayPointRepository interface {
	// Add persists a new relay-point aggregate to storage.
	Add(ctx context.Context, aggregate *relaypoint.RelayPoint) error

	// Update persists changes to an existing relay-point aggregate.
	Update(ctx context.Context, aggregate *relaypoint.RelayPoint) error

	// Delete removes a relay-point aggregate from storage.
	// Held parcels are detached, not deleted.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a relay-point aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*relaypoint.RelayPoint, error)
}
