package commands

import (
	"errors"
	"strings"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/guard"
)

var ErrUpdateClientCommandIsNotConstructed = errors.New(
	"UpdateClientCommand must be created via NewUpdateClientCommand constructor",
)

// UpdateClientCommand represents a full-field client profile update.
type UpdateClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	name     string
	surname  string
	email    string
	phone    string
	password string
	address  string

	guard guard.ConstructorGuard
}

// NewUpdateClientCommand creates a command to replace a client's profile.
func NewUpdateClientCommand(
	clientID kernel.UUID,
	name string,
	surname string,
	email string,
	phone string,
	password string,
	address string,
) (UpdateClientCommand, error) {
	clientCommand := UpdateClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		clientCommand.setClientID(clientID),
		clientCommand.setName(name),
		clientCommand.setSurname(surname),
		clientCommand.setEmail(email),
		clientCommand.setPassword(password),
	); err != nil {
		return UpdateClientCommand{}, err
	}

	clientCommand.phone = phone
	clientCommand.address = address
	return clientCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateClientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClientCommandIsNotConstructed)
}

// ClientID returns the identifier of the client to update.
func (c UpdateClientCommand) ClientID() kernel.UUID { return c.clientID }

// Name returns the new first name.
func (c UpdateClientCommand) Name() string { return c.name }

// Surname returns the new family name.
func (c UpdateClientCommand) Surname() string { return c.surname }

// Email returns the new contact email.
func (c UpdateClientCommand) Email() string { return c.email }

// Phone returns the new contact phone number.
func (c UpdateClientCommand) Phone() string { return c.phone }

// Password returns the new credential hash.
func (c UpdateClientCommand) Password() string { return c.password }

// Address returns the new free-text postal address.
func (c UpdateClientCommand) Address() string { return c.address }

func (c *UpdateClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *UpdateClientCommand) setName(name string) error {
	if name == "" {
		return ErrClientNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateClientCommand) setSurname(surname string) error {
	if surname == "" {
		return ErrClientSurnameIsRequired
	}

	c.surname = surname
	return nil
}

func (c *UpdateClientCommand) setEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrClientEmailIsInvalid
	}

	c.email = email
	return nil
}

func (c *UpdateClientCommand) setPassword(password string) error {
	if password == "" {
		return ErrClientPasswordIsRequired
	}

	c.password = password
	return nil
}
