package commands

import (
	"context"
)

// UpdateOwnerCommandHandler handles owner profile updates.
type UpdateOwnerCommandHandler struct {
	uowFactory OwnerUoWFactory
}

// NewUpdateOwnerCommandHandler creates a handler for owner profile updates.
func NewUpdateOwnerCommandHandler(uowFactory OwnerUoWFactory) UpdateOwnerCommandHandler {
	return UpdateOwnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the owner, replaces its profile fields and persists the
// result within a transaction. The owned relay-point list is untouched.
func (h *UpdateOwnerCommandHandler) Handle(ctx context.Context, cmd UpdateOwnerCommand) error {
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

	if err = aggregate.Update(cmd.Name(), cmd.Email()); err != nil {
		return err
	}

	if err = ownerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
