package commands

import (
	"context"
	"errors"

	"relais/internal/core/ports"
)

// ErrParcelAssignedElsewhere is returned when depositing or withdrawing a
// parcel at a relay point it is not assigned to.
var ErrParcelAssignedElsewhere = errors.New("parcel is assigned to another relay point")

// ReceiveParcelCommandHandler orchestrates a parcel deposit: relay-point
// capacity bookkeeping, the parcel's lifecycle transition and the recipient
// notification, all in one transaction.
//
// Example:
//
//	handler := NewReceiveParcelCommandHandler(uowFactory, notifier)
//	cmd, _ := NewReceiveParcelCommand(relayID, parcelID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, relaypoint.ErrCapacityExceeded):
//	    // relay point is full
//	case errors.Is(err, ErrParcelAssignedElsewhere):
//	    // parcel belongs to a different relay point
//	}
type ReceiveParcelCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewReceiveParcelCommandHandler creates a handler for parcel deposits.
func NewReceiveParcelCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) ReceiveParcelCommandHandler {
	return ReceiveParcelCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle records a parcel arriving at a relay point.
// An unassigned parcel is bound to the relay point on deposit; a parcel
// assigned elsewhere is rejected. The relay point's bookkeeping runs before
// the parcel transition so a full relay point never marks the parcel
// received. The recipient notification is best-effort.
func (h *ReceiveParcelCommandHandler) Handle(ctx context.Context, cmd ReceiveParcelCommand) error {
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

	parcelRepo := uow.ParcelRepository()
	depositedParcel, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	switch assigned := depositedParcel.RelayPointID(); {
	case assigned == nil:
		if err = depositedParcel.AssignRelayPoint(relayPoint.ID()); err != nil {
			return err
		}
	case !assigned.IsEqual(relayPoint.ID()):
		return ErrParcelAssignedElsewhere
	}

	if err = relayPoint.ReceiveParcel(depositedParcel.ID()); err != nil {
		return err
	}

	if err = depositedParcel.MarkReceived(); err != nil {
		return err
	}

	if err = relayRepo.Update(ctx, relayPoint); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, depositedParcel); err != nil {
		return err
	}

	recipient, err := uow.ClientRepository().Get(ctx, depositedParcel.RecipientID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.NotifyParcelReceived(ctx, recipient, relayPoint.Name())
	return nil
}
