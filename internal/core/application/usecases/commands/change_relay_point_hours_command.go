package commands

import (
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/guard"
)

var ErrChangeRelayPointHoursCommandIsNotConstructed = errors.New(
	"ChangeRelayPointHoursCommand must be created via NewChangeRelayPointHoursCommand constructor",
)

// ChangeRelayPointHoursCommand represents an opening-hours change.
// Recipients of parcels waiting at the relay point are notified.
type ChangeRelayPointHoursCommand struct { //nolint:recvcheck //using for validation
	relayPointID kernel.UUID
	newHours     string

	guard guard.ConstructorGuard
}

// NewChangeRelayPointHoursCommand creates a command to change opening hours.
func NewChangeRelayPointHoursCommand(relayPointID kernel.UUID, newHours string) (ChangeRelayPointHoursCommand, error) {
	if err := relayPointID.Validate(); err != nil {
		return ChangeRelayPointHoursCommand{}, err
	}

	if newHours == "" {
		return ChangeRelayPointHoursCommand{}, ErrRelayPointHoursAreRequired
	}

	return ChangeRelayPointHoursCommand{
		relayPointID: relayPointID,
		newHours:     newHours,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeRelayPointHoursCommand) Validate() error {
	return c.guard.Validate(ErrChangeRelayPointHoursCommandIsNotConstructed)
}

// RelayPointID returns the identifier of the relay point to change.
func (c ChangeRelayPointHoursCommand) RelayPointID() kernel.UUID { return c.relayPointID }

// NewHours returns the new free-text opening hours.
func (c ChangeRelayPointHoursCommand) NewHours() string { return c.newHours }
