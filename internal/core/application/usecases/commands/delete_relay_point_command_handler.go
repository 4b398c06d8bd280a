package commands

import (
	"context"
	"errors"

	"relais/internal/core/domain/model/owner"
)

// DeleteRelayPointCommandHandler closes a relay point.
// The owner's relay-point list is updated in the same transaction; the
// repository cascades removal to the parcels the relay point holds.
type DeleteRelayPointCommandHandler struct {
	uowFactory OwnerRelayUoWFactory
}

// NewDeleteRelayPointCommandHandler creates a handler for closing relay points.
func NewDeleteRelayPointCommandHandler(uowFactory OwnerRelayUoWFactory) DeleteRelayPointCommandHandler {
	return DeleteRelayPointCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the relay point and detaches it from its owner.
func (h *DeleteRelayPointCommandHandler) Handle(ctx context.Context, cmd DeleteRelayPointCommand) error {
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
	relayPoint, err := relayRepo.Get(ctx, cmd.RelayPointID())
	if err != nil {
		return err
	}

	ownerRepo := uow.OwnerRepository()
	relayOwner, err := ownerRepo.Get(ctx, relayPoint.OwnerID())
	if err != nil {
		return err
	}

	if err = relayOwner.RemoveRelayPoint(relayPoint.ID()); err != nil &&
		!errors.Is(err, owner.ErrRelayPointNotOwned) {
		return err
	}

	if err = ownerRepo.Update(ctx, relayOwner); err != nil {
		return err
	}

	if err = relayRepo.Delete(ctx, relayPoint.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
