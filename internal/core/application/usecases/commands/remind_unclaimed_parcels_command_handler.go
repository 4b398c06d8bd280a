package commands

import (
	"context"
	"time"

	"relais/internal/core/ports"
)

// RemindUnclaimedParcelsCommandHandler sweeps parcels still waiting at a
// relay point past the threshold and reminds their recipients.
// Driven by the reminder cron job.
type RemindUnclaimedParcelsCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewRemindUnclaimedParcelsCommandHandler creates a handler for reminder sweeps.
func NewRemindUnclaimedParcelsCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
) RemindUnclaimedParcelsCommandHandler {
	return RemindUnclaimedParcelsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle issues one reminder per overdue parcel. Reads run in a transaction;
// notifications go out after commit and are best-effort.
func (h *RemindUnclaimedParcelsCommandHandler) Handle(ctx context.Context, cmd RemindUnclaimedParcelsCommand) error {
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

	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, -cmd.OlderThanDays())

	overdue, err := uow.ParcelRepository().GetAllReceivedBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	clientRepo := uow.ClientRepository()
	relayRepo := uow.RelayPointRepository()

	reminders := make([]func(), 0, len(overdue))
	for _, overdueParcel := range overdue {
		recipient, err := clientRepo.Get(ctx, overdueParcel.RecipientID())
		if err != nil {
			return err
		}

		relayPointName := ""
		if relayPointID := overdueParcel.RelayPointID(); relayPointID != nil {
			relayPoint, err := relayRepo.Get(ctx, *relayPointID)
			if err != nil {
				return err
			}
			relayPointName = relayPoint.Name()
		}

		daysWaiting := 0
		if depositedAt := overdueParcel.DepositedAt(); depositedAt != nil {
			daysWaiting = int(now.Sub(*depositedAt).Hours() / 24)
		}

		reminders = append(reminders, func() {
			_ = h.notifier.NotifyUnclaimedParcel(ctx, recipient, relayPointName, daysWaiting)
		})
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, remind := range reminders {
		remind()
	}
	return nil
}
