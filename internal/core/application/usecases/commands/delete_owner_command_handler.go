package commands

import (
	"context"
	"errors"
)

// ErrOwnerStillHasRelayPoints is returned when deleting an owner that still
// operates relay points.
var ErrOwnerStillHasRelayPoints = errors.New("owner still operates relay points")

// DeleteOwnerCommandHandler handles owner account removal.
// Owners must close their relay points first.
type DeleteOwnerCommandHandler struct {
	uowFactory OwnerUoWFactory
}

// NewDeleteOwnerCommandHandler creates a handler for owner removal.
func NewDeleteOwnerCommandHandler(uowFactory OwnerUoWFactory) DeleteOwnerCommandHandler {
	return DeleteOwnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the owner exists and has no relay points, then deletes it.
func (h *DeleteOwnerCommandHandler) Handle(ctx context.Context, cmd DeleteOwnerCommand) error {
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

	ownerRepo := uow.OwnerRepository()
	aggregate, err := ownerRepo.Get(ctx, cmd.OwnerID())
	if err != nil {
		return err
	}

	if len(aggregate.RelayPointIDs()) > 0 {
		return ErrOwnerStillHasRelayPoints
	}

	if err = ownerRepo.Delete(ctx, cmd.OwnerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
