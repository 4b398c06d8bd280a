package commands

import (
	"context"
)

// RecomputeRelayPointStockCommandHandler reconciles the cached stock counter
// against the held parcel set.
type RecomputeRelayPointStockCommandHandler struct {
	uowFactory RelayPointUoWFactory
}

// NewRecomputeRelayPointStockCommandHandler creates a handler for stock reconciliation.
func NewRecomputeRelayPointStockCommandHandler(uowFactory RelayPointUoWFactory) RecomputeRelayPointStockCommandHandler {
	return RecomputeRelayPointStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the relay point, recomputes its stock and persists it.
func (h *RecomputeRelayPointStockCommandHandler) Handle(ctx context.Context, cmd RecomputeRelayPointStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	relayRepo := uow.RelayPointRepository()
	aggregate, err := relayRepo.Get(ctx, cmd.RelayPointID())
	if err != nil {
		return err
	}

	aggregate.RecomputeStock()

	if err = relayRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
