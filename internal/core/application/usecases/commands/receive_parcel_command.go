package commands

import (
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/guard"
)

var ErrReceiveParcelCommandIsNotConstructed = errors.New(
	"ReceiveParcelCommand must be created via NewReceiveParcelCommand constructor",
)

// ReceiveParcelCommand represents a parcel arriving at a relay point.
type ReceiveParcelCommand struct { //nolint:recvcheck //using for validation
	relayPointID kernel.UUID
	parcelID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewReceiveParcelCommand creates a command recording a parcel deposit.
func NewReceiveParcelCommand(relayPointID kernel.UUID, parcelID kernel.UUID) (ReceiveParcelCommand, error) {
	if err := errors.Join(relayPointID.Validate(), parcelID.Validate()); err != nil {
		return ReceiveParcelCommand{}, err
	}

	return ReceiveParcelCommand{
		relayPointID: relayPointID,
		parcelID:     parcelID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveParcelCommand) Validate() error {
	return c.guard.Validate(ErrReceiveParcelCommandIsNotConstructed)
}

// RelayPointID returns the receiving relay point's identifier.
func (c ReceiveParcelCommand) RelayPointID() kernel.UUID { return c.relayPointID }

// ParcelID returns the deposited parcel's identifier.
func (c ReceiveParcelCommand) ParcelID() kernel.UUID { return c.parcelID }
