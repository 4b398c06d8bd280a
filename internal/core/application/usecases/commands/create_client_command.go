package commands

import (
	"errors"
	"strings"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/errs"
	"relais/internal/pkg/guard"
)

var (
	ErrCreateClientCommandIsNotConstructed = errors.New(
		"CreateClientCommand must be created via NewCreateClientCommand constructor",
	)
	ErrClientNameIsRequired     = errors.New("name is required")
	ErrClientSurnameIsRequired  = errors.New("surname is required")
	ErrClientEmailIsInvalid     = errs.NewValueIsInvalidError("email")
	ErrClientPasswordIsRequired = errors.New("password is required")
)

// CreateClientCommand represents a request to register a new client account.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	name     string
	surname  string
	email    string
	phone    string
	password string
	address  string

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a client.
// Name, surname, a well-formed email and a password are required;
// phone and address may be empty.
func NewCreateClientCommand(
	clientID kernel.UUID,
	name string,
	surname string,
	email string,
	phone string,
	password string,
	address string,
) (CreateClientCommand, error) {
	clientCommand := CreateClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		clientCommand.setClientID(clientID),
		clientCommand.setName(name),
		clientCommand.setSurname(surname),
		clientCommand.setEmail(email),
		clientCommand.setPassword(password),
	); err != nil {
		return CreateClientCommand{}, err
	}

	clientCommand.phone = phone
	clientCommand.address = address
	return clientCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// ClientID returns the identifier for the new client.
func (c CreateClientCommand) ClientID() kernel.UUID { return c.clientID }

// Name returns the first name.
func (c CreateClientCommand) Name() string { return c.name }

// Surname returns the family name.
func (c CreateClientCommand) Surname() string { return c.surname }

// Email returns the contact email.
func (c CreateClientCommand) Email() string { return c.email }

// Phone returns the contact phone number.
func (c CreateClientCommand) Phone() string { return c.phone }

// Password returns the credential hash.
func (c CreateClientCommand) Password() string { return c.password }

// Address returns the free-text postal address.
func (c CreateClientCommand) Address() string { return c.address }

func (c *CreateClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateClientCommand) setName(name string) error {
	if name == "" {
		return ErrClientNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateClientCommand) setSurname(surname string) error {
	if surname == "" {
		return ErrClientSurnameIsRequired
	}

	c.surname = surname
	return nil
}

func (c *CreateClientCommand) setEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrClientEmailIsInvalid
	}

	c.email = email
	return nil
}

func (c *CreateClientCommand) setPassword(password string) error {
	if password == "" {
		return ErrClientPasswordIsRequired
	}

	c.password = password
	return nil
}
