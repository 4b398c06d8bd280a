package client

import (
	"errors"
	"strings"
	"time"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/errs"
	"relais/internal/pkg/guard"
)

// Domain errors for client operations.
var (
	// ErrClientIsNotConstructed is returned when using an improperly initialized Client.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")
	// ErrEmailIsInvalid is returned when the email has no local or domain part.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
)

// Client is the aggregate root for a registered customer account.
// Clients appear in parcels as sender and recipient identifiers only.
type Client struct {
	id      kernel.UUID
	name    string
	surname string
	email   string
	phone   string

	// password is an opaque credential hash, never inspected here
	password string

	address      string
	registeredAt time.Time

	guard guard.ConstructorGuard
}

// NewClient creates a Client with validated fields and a registration
// timestamp of now.
func NewClient(
	id kernel.UUID,
	name string,
	surname string,
	email string,
	phone string,
	password string,
	address string,
) (*Client, error) {
	c := &Client{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setSurname(surname),
		c.setEmail(email),
		c.setPassword(password),
	); err != nil {
		return nil, err
	}

	c.phone = phone
	c.address = address
	c.registeredAt = time.Now().UTC()
	return c, nil
}

// RestoreClient reconstructs a Client from persistent storage.
func RestoreClient(
	id kernel.UUID,
	name string,
	surname string,
	email string,
	phone string,
	password string,
	address string,
	registeredAt time.Time,
) (*Client, error) {
	c, err := NewClient(id, name, surname, email, phone, password, address)
	if err != nil {
		return nil, err
	}

	c.registeredAt = registeredAt
	return c, nil
}

// Validate ensures the Client was built through a constructor.
func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// IsEqual compares two clients by identifier.
func (c *Client) IsEqual(other *Client) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID { return c.id }

// Name returns the first name.
func (c *Client) Name() string { return c.name }

// Surname returns the family name.
func (c *Client) Surname() string { return c.surname }

// Email returns the contact email address.
func (c *Client) Email() string { return c.email }

// Phone returns the contact phone number, possibly empty.
func (c *Client) Phone() string { return c.phone }

// Password returns the opaque credential hash.
func (c *Client) Password() string { return c.password }

// Address returns the free-text postal address, possibly empty.
func (c *Client) Address() string { return c.address }

// RegisteredAt returns the registration timestamp.
func (c *Client) RegisteredAt() time.Time { return c.registeredAt }

// Update replaces the mutable profile fields in one validated step.
// The registration timestamp is immutable.
func (c *Client) Update(
	name string,
	surname string,
	email string,
	phone string,
	password string,
	address string,
) error {
	if err := errors.Join(
		c.setName(name),
		c.setSurname(surname),
		c.setEmail(email),
		c.setPassword(password),
	); err != nil {
		return err
	}

	c.phone = phone
	c.address = address
	return nil
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Client) setSurname(surname string) error {
	if surname == "" {
		return errs.NewValueIsRequiredError("surname")
	}
	c.surname = surname
	return nil
}

func (c *Client) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrEmailIsInvalid
	}

	c.email = email
	return nil
}

func (c *Client) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}
