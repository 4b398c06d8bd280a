package commands

import (
	"context"
)

// ChangeRelayPointRatingCommandHandler handles customer rating updates.
type ChangeRelayPointRatingCommandHandler struct {
	uowFactory RelayPointUoWFactory
}

// NewChangeRelayPointRatingCommandHandler creates a handler for rating updates.
func NewChangeRelayPointRatingCommandHandler(uowFactory RelayPointUoWFactory) ChangeRelayPointRatingCommandHandler {
	return ChangeRelayPointRatingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the relay point, applies the rating and persists it.
func (h *ChangeRelayPointRatingCommandHandler) Handle(ctx context.Context, cmd ChangeRelayPointRatingCommand) error {
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

	if err = aggregate.ChangeRating(cmd.Rating()); err != nil {
		return err
	}

	if err = relayRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
