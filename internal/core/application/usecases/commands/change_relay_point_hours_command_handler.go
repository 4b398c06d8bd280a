package commands

import (
	"context"

	"relais/internal/core/domain/model/parcel"
	"relais/internal/core/ports"
)

// ChangeRelayPointHoursCommandHandler changes a relay point's opening hours
// and notifies the recipients of parcels currently waiting for pickup there.
// Notification is best-effort; delivery failures do not fail the command.
type ChangeRelayPointHoursCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewChangeRelayPointHoursCommandHandler creates a handler for hours changes.
func NewChangeRelayPointHoursCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
) ChangeRelayPointHoursCommandHandler {
	return ChangeRelayPointHoursCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle applies the hours change and notifies recipients of waiting parcels.
func (h *ChangeRelayPointHoursCommandHandler) Handle(ctx context.Context, cmd ChangeRelayPointHoursCommand) error {
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
	relayPoint, err := relayRepo.Get(ctx, cmd.RelayPointID())
	if err != nil {
		return err
	}

	if err = relayPoint.ChangeHours(cmd.NewHours()); err != nil {
		return err
	}

	if err = relayRepo.Update(ctx, relayPoint); err != nil {
		return err
	}

	parcelRepo := uow.ParcelRepository()
	clientRepo := uow.ClientRepository()
	for _, parcelID := range relayPoint.ParcelIDs() {
		heldParcel, err := parcelRepo.Get(ctx, parcelID)
		if err != nil {
			return err
		}

		if heldParcel.Status() != parcel.StatusReceived {
			continue
		}

		recipient, err := clientRepo.Get(ctx, heldParcel.RecipientID())
		if err != nil {
			return err
		}

		_ = h.notifier.NotifyHoursChanged(ctx, recipient, relayPoint.Name(), cmd.NewHours())
	}

	return uow.Commit(ctx)
}
