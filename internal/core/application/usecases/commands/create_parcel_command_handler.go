package commands

import (
	"context"

	"relais/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler handles parcel registration.
// When a relay point is requested at creation, the handler verifies it
// exists before pre-assigning the parcel to it.
type CreateParcelCommandHandler struct {
	uowFactory ParcelRelayUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
func NewCreateParcelCommandHandler(uowFactory ParcelRelayUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the parcel in pending status and persists it within a
// transaction.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
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

	newParcel, err := parcel.NewParcel(
		cmd.ParcelID(), cmd.SenderID(), cmd.RecipientID(),
		cmd.Description(), cmd.Weight(), cmd.Dimensions())
	if err != nil {
		return err
	}

	if relayPointID := cmd.RelayPointID(); relayPointID != nil {
		if _, err = uow.RelayPointRepository().Get(ctx, *relayPointID); err != nil {
			return err
		}
		if err = newParcel.AssignRelayPoint(*relayPointID); err != nil {
			return err
		}
	}

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
