package commands

import (
	"errors"
	"strings"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/guard"
)

var ErrUpdateOwnerCommandIsNotConstructed = errors.New(
	"UpdateOwnerCommand must be created via NewUpdateOwnerCommand constructor",
)

// UpdateOwnerCommand represents a full-field owner profile update.
type UpdateOwnerCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID
	name    string
	email   string

	guard guard.ConstructorGuard
}

// NewUpdateOwnerCommand creates a command to replace an owner's profile.
func NewUpdateOwnerCommand(ownerID kernel.UUID, name string, email string) (UpdateOwnerCommand, error) {
	ownerCommand := UpdateOwnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ownerCommand.setOwnerID(ownerID),
		ownerCommand.setName(name),
		ownerCommand.setEmail(email),
	); err != nil {
		return UpdateOwnerCommand{}, err
	}

	return ownerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOwnerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOwnerCommandIsNotConstructed)
}

// OwnerID returns the identifier of the owner to update.
func (c UpdateOwnerCommand) OwnerID() kernel.UUID { return c.ownerID }

// Name returns the new display name.
func (c UpdateOwnerCommand) Name() string { return c.name }

// Email returns the new contact email.
func (c UpdateOwnerCommand) Email() string { return c.email }

func (c *UpdateOwnerCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *UpdateOwnerCommand) setName(name string) error {
	if name == "" {
		return ErrOwnerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateOwnerCommand) setEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrOwnerEmailIsInvalid
	}

	c.email = email
	return nil
}
