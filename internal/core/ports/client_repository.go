// Package ports defines the contracts between the domain layer and
// infrastructure: repositories, the unit of work, notification delivery
// and QR credential generation.
package ports

import (
	"context"

	"relais/internal/core/domain/model/client"
	"relais/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for client aggregates.
type ClientRepository interface {
	// Add persists a new client aggregate to storage.
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists changes to an existing client aggregate.
	Update(ctx context.Context, aggregate *client.Client) error

	// Delete removes a client aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a client aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)
}
