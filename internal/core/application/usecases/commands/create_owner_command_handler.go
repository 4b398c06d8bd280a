package commands

import (
	"context"

	"relais/internal/core/domain/model/owner"
)

// CreateOwnerCommandHandler handles owner registration.
type CreateOwnerCommandHandler struct {
	uowFactory OwnerUoWFactory
}

// NewCreateOwnerCommandHandler creates a handler for owner registration.
func NewCreateOwnerCommandHandler(uowFactory OwnerUoWFactory) CreateOwnerCommandHandler {
	return CreateOwnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new owner within a transaction.
func (h *CreateOwnerCommandHandler) Handle(ctx context.Context, cmd CreateOwnerCommand) error {
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

	newOwner, err := owner.NewOwner(cmd.OwnerID(), cmd.Name(), cmd.Email())
	if err != nil {
		return err
	}

	if err = uow.OwnerRepository().Add(ctx, newOwner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
