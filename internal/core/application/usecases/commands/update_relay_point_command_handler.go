package commands

import (
	"context"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/relaypoint"
)

// UpdateRelayPointCommandHandler handles administrative relay-point updates.
// Shrinking capacity below the current stock is rejected by the aggregate.
type UpdateRelayPointCommandHandler struct {
	uowFactory RelayPointUoWFactory
}

// NewUpdateRelayPointCommandHandler creates a handler for relay-point updates.
func NewUpdateRelayPointCommandHandler(uowFactory RelayPointUoWFactory) UpdateRelayPointCommandHandler {
	return UpdateRelayPointCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the relay point, replaces its details and persists it.
func (h *UpdateRelayPointCommandHandler) Handle(ctx context.Context, cmd UpdateRelayPointCommand) error {
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

	coordinates, err := kernel.NewCoordinates(cmd.Latitude(), cmd.Longitude())
	if err != nil {
		return err
	}

	address, err := relaypoint.NewAddress(cmd.Street(), cmd.City(), cmd.PostalCode())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateDetails(
		cmd.Name(), coordinates, address,
		cmd.MaxCapacity(), cmd.OpeningHours(), cmd.Description()); err != nil {
		return err
	}

	if err = relayRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
