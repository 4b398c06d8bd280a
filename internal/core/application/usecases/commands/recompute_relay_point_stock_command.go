package commands

import (
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/guard"
)

var ErrRecomputeRelayPointStockCommandIsNotConstructed = errors.New(
	"RecomputeRelayPointStockCommand must be created via NewRecomputeRelayPointStockCommand constructor",
)

// RecomputeRelayPointStockCommand reconciles a relay point's stock counter
// with its held parcel set.
type RecomputeRelayPointStockCommand struct { //nolint:recvcheck //using for validation
	relayPointID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecomputeRelayPointStockCommand creates a stock reconciliation command.
func NewRecomputeRelayPointStockCommand(relayPointID kernel.UUID) (RecomputeRelayPointStockCommand, error) {
	if err := relayPointID.Validate(); err != nil {
		return RecomputeRelayPointStockCommand{}, err
	}

	return RecomputeRelayPointStockCommand{
		relayPointID: relayPointID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecomputeRelayPointStockCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeRelayPointStockCommandIsNotConstructed)
}

// RelayPointID returns the identifier of the relay point to reconcile.
func (c RecomputeRelayPointStockCommand) RelayPointID() kernel.UUID { return c.relayPointID }
