package commands

import (
	"errors"

	"relais/internal/pkg/errs"
	"relais/internal/pkg/guard"
)

var (
	ErrRemindUnclaimedParcelsCommandIsNotConstructed = errors.New(
		"RemindUnclaimedParcelsCommand must be created via NewRemindUnclaimedParcelsCommand constructor",
	)
	ErrThresholdIsInvalid = errs.NewValueIsInvalidError("threshold days")
)

// RemindUnclaimedParcelsCommand asks for reminders to recipients of parcels
// waiting at a relay point longer than the threshold.
type RemindUnclaimedParcelsCommand struct { //nolint:recvcheck //using for validation
	olderThanDays int

	guard guard.ConstructorGuard
}

// NewRemindUnclaimedParcelsCommand creates a reminder sweep command.
func NewRemindUnclaimedParcelsCommand(olderThanDays int) (RemindUnclaimedParcelsCommand, error) {
	if olderThanDays <= 0 {
		return RemindUnclaimedParcelsCommand{}, ErrThresholdIsInvalid
	}

	return RemindUnclaimedParcelsCommand{
		olderThanDays: olderThanDays,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemindUnclaimedParcelsCommand) Validate() error {
	return c.guard.Validate(ErrRemindUnclaimedParcelsCommandIsNotConstructed)
}

// OlderThanDays returns the waiting-time threshold in days.
func (c RemindUnclaimedParcelsCommand) OlderThanDays() int { return c.olderThanDays }
