package commands

import (
	"context"
)

// DeleteClientCommandHandler handles client account removal.
type DeleteClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewDeleteClientCommandHandler creates a handler for client removal.
func NewDeleteClientCommandHandler(uowFactory ClientUoWFactory) DeleteClientCommandHandler {
	return DeleteClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the client exists and deletes it within a transaction.
func (h *DeleteClientCommandHandler) Handle(ctx context.Context, cmd DeleteClientCommand) error {
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
	if _, err := clientRepo.Get(ctx, cmd.ClientID()); err != nil {
		return err
	}

	if err := clientRepo.Delete(ctx, cmd.ClientID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
