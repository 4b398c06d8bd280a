package commands

import (
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/parcel"
	"relais/internal/pkg/guard"
)

var ErrChangeParcelStatusCommandIsNotConstructed = errors.New(
	"ChangeParcelStatusCommand must be created via NewChangeParcelStatusCommand constructor",
)

// ChangeParcelStatusCommand represents an administrative lifecycle
// transition request. The transition is still subject to the parcel's
// transition table.
type ChangeParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	newStatus parcel.Status

	guard guard.ConstructorGuard
}

// NewChangeParcelStatusCommand creates a command to move a parcel to a new
// lifecycle status.
func NewChangeParcelStatusCommand(parcelID kernel.UUID, newStatus parcel.Status) (ChangeParcelStatusCommand, error) {
	if err := errors.Join(parcelID.Validate(), newStatus.Validate()); err != nil {
		return ChangeParcelStatusCommand{}, err
	}

	return ChangeParcelStatusCommand{
		parcelID:  parcelID,
		newStatus: newStatus,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to transition.
func (c ChangeParcelStatusCommand) ParcelID() kernel.UUID { return c.parcelID }

// NewStatus returns the requested lifecycle status.
func (c ChangeParcelStatusCommand) NewStatus() parcel.Status { return c.newStatus }
