package commands

import (
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/guard"
)

var ErrDeleteRelayPointCommandIsNotConstructed = errors.New(
	"DeleteRelayPointCommand must be created via NewDeleteRelayPointCommand constructor",
)

// DeleteRelayPointCommand represents a request to close a relay point.
type DeleteRelayPointCommand struct { //nolint:recvcheck //using for validation
	relayPointID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteRelayPointCommand creates a command to close a relay point.
func NewDeleteRelayPointCommand(relayPointID kernel.UUID) (DeleteRelayPointCommand, error) {
	if err := relayPointID.Validate(); err != nil {
		return DeleteRelayPointCommand{}, err
	}

	return DeleteRelayPointCommand{
		relayPointID: relayPointID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRelayPointCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRelayPointCommandIsNotConstructed)
}

// RelayPointID returns the identifier of the relay point to close.
func (c DeleteRelayPointCommand) RelayPointID() kernel.UUID { return c.relayPointID }
