package commands

import (
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/guard"
)

var ErrDeleteOwnerCommandIsNotConstructed = errors.New(
	"DeleteOwnerCommand must be created via NewDeleteOwnerCommand constructor",
)

// DeleteOwnerCommand represents a request to remove an owner account.
type DeleteOwnerCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOwnerCommand creates a command to delete an owner.
func NewDeleteOwnerCommand(ownerID kernel.UUID) (DeleteOwnerCommand, error) {
	if err := ownerID.Validate(); err != nil {
		return DeleteOwnerCommand{}, err
	}

	return DeleteOwnerCommand{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOwnerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOwnerCommandIsNotConstructed)
}

// OwnerID returns the identifier of the owner to delete.
func (c DeleteOwnerCommand) OwnerID() kernel.UUID { return c.ownerID }
