package commands

import (
	"context"
)

// ChangeParcelStatusCommandHandler handles administrative status changes.
// Illegal jumps are rejected by the parcel's transition table and surface
// as conflict errors at the API boundary.
type ChangeParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewChangeParcelStatusCommandHandler creates a handler for status changes.
func NewChangeParcelStatusCommandHandler(uowFactory ParcelUoWFactory) ChangeParcelStatusCommandHandler {
	return ChangeParcelStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the parcel, applies the guarded transition and persists it.
func (h *ChangeParcelStatusCommandHandler) Handle(ctx context.Context, cmd ChangeParcelStatusCommand) error {
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

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.NewStatus()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
