package commands

import (
	"errors"
	"strings"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/errs"
	"relais/internal/pkg/guard"
)

var (
	ErrCreateOwnerCommandIsNotConstructed = errors.New(
		"CreateOwnerCommand must be created via NewCreateOwnerCommand constructor",
	)
	ErrOwnerNameIsRequired = errors.New("name is required")
	ErrOwnerEmailIsInvalid = errs.NewValueIsInvalidError("email")
)

// CreateOwnerCommand represents a request to register a relay-point owner.
type CreateOwnerCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID
	name    string
	email   string

	guard guard.ConstructorGuard
}

// NewCreateOwnerCommand creates a command to register an owner.
func NewCreateOwnerCommand(ownerID kernel.UUID, name string, email string) (CreateOwnerCommand, error) {
	ownerCommand := CreateOwnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ownerCommand.setOwnerID(ownerID),
		ownerCommand.setName(name),
		ownerCommand.setEmail(email),
	); err != nil {
		return CreateOwnerCommand{}, err
	}

	return ownerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOwnerCommand) Validate() error {
	return c.guard.Validate(ErrCreateOwnerCommandIsNotConstructed)
}

// OwnerID returns the identifier for the new owner.
func (c CreateOwnerCommand) OwnerID() kernel.UUID { return c.ownerID }

// Name returns the owner's display name.
func (c CreateOwnerCommand) Name() string { return c.name }

// Email returns the owner's contact email.
func (c CreateOwnerCommand) Email() string { return c.email }

func (c *CreateOwnerCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateOwnerCommand) setName(name string) error {
	if name == "" {
		return ErrOwnerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateOwnerCommand) setEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrOwnerEmailIsInvalid
	}

	c.email = email
	return nil
}
