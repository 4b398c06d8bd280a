package commands

import (
	"context"
)

// UpdateClientCommandHandler handles client profile updates.
type UpdateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewUpdateClientCommandHandler creates a handler for client profile updates.
func NewUpdateClientCommandHandler(uowFactory ClientUoWFactory) UpdateClientCommandHandler {
	return UpdateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the client, replaces its profile fields and persists the
// result within a transaction.
func (h *UpdateClientCommandHandler) Handle(ctx context.Context, cmd UpdateClientCommand) error {
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

	clientRepo := uow.ClientRepository()
	aggregate, err := clientRepo.Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	if err = aggregate.Update(
		cmd.Name(), cmd.Surname(), cmd.Email(),
		cmd.Phone(), cmd.Password(), cmd.Address()); err != nil {
		return err
	}

	if err = clientRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
