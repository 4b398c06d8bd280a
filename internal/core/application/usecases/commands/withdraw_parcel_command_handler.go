package commands

import (
	"context"

	"relais/internal/core/ports"
)

// WithdrawParcelCommandHandler orchestrates a parcel pickup: credential
// verification, relay-point bookkeeping, the parcel's lifecycle transition
// and the confirmation notification, all in one transaction.
type WithdrawParcelCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewWithdrawParcelCommandHandler creates a handler for parcel pickups.
func NewWithdrawParcelCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) WithdrawParcelCommandHandler {
	return WithdrawParcelCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle records a parcel pickup.
// The parcel must be assigned to the given relay point and held there; the
// presented credential must match. Any failure leaves both aggregates
// unchanged. The confirmation notification is best-effort.
func (h *WithdrawParcelCommandHandler) Handle(ctx context.Context, cmd WithdrawParcelCommand) error {
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
	withdrawnParcel, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	assigned := withdrawnParcel.RelayPointID()
	if assigned == nil || !assigned.IsEqual(relayPoint.ID()) {
		return ErrParcelAssignedElsewhere
	}

	if err = relayPoint.WithdrawParcel(withdrawnParcel, cmd.QRCode()); err != nil {
		return err
	}

	if err = withdrawnParcel.MarkWithdrawn(cmd.QRCode()); err != nil {
		return err
	}

	if err = relayRepo.Update(ctx, relayPoint); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, withdrawnParcel); err != nil {
		return err
	}

	recipient, err := uow.ClientRepository().Get(ctx, withdrawnParcel.RecipientID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.NotifyParcelWithdrawn(ctx, recipient, relayPoint.Name())
	return nil
}
