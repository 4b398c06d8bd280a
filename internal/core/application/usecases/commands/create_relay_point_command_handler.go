package commands

import (
	"context"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/relaypoint"
)

// CreateRelayPointCommandHandler opens a relay point under an owner.
// The owner must exist; its relay-point list is updated in the same
// transaction.
type CreateRelayPointCommandHandler struct {
	uowFactory OwnerRelayUoWFactory
}

// NewCreateRelayPointCommandHandler creates a handler for opening relay points.
func NewCreateRelayPointCommandHandler(uowFactory OwnerRelayUoWFactory) CreateRelayPointCommandHandler {
	return CreateRelayPointCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the owner, builds the relay point and persists both sides
// of the containment within one transaction.
func (h *CreateRelayPointCommandHandler) Handle(ctx context.Context, cmd CreateRelayPointCommand) error {
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
	relayOwner, err := ownerRepo.Get(ctx, cmd.OwnerID())
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

	relayPoint, err := relaypoint.NewRelayPoint(
		cmd.RelayPointID(), cmd.Name(), coordinates, address,
		relayOwner.ID(), cmd.MaxCapacity(), cmd.OpeningHours(), cmd.Description())
	if err != nil {
		return err
	}

	if err = relayOwner.AddRelayPoint(relayPoint.ID()); err != nil {
		return err
	}

	if err = uow.RelayPointRepository().Add(ctx, relayPoint); err != nil {
		return err
	}

	if err = ownerRepo.Update(ctx, relayOwner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
