package commands

import (
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/errs"
	"relais/internal/pkg/guard"
)

var (
	ErrCreateRelayPointCommandIsNotConstructed = errors.New(
		"CreateRelayPointCommand must be created via NewCreateRelayPointCommand constructor",
	)
	ErrRelayPointNameIsRequired    = errors.New("name is required")
	ErrRelayPointHoursAreRequired  = errors.New("opening hours are required")
	ErrRelayPointCapacityIsInvalid = errs.NewValueIsInvalidError("capacity")
)

// CreateRelayPointCommand represents a request to open a new relay point
// under an existing owner.
type CreateRelayPointCommand struct { //nolint:recvcheck //using for validation
	relayPointID kernel.UUID
	ownerID      kernel.UUID
	name         string
	latitude     float64
	longitude    float64
	street       string
	city         string
	postalCode   string
	maxCapacity  int
	openingHours string
	description  string

	guard guard.ConstructorGuard
}

// NewCreateRelayPointCommand creates a command to open a relay point.
// Coordinate and address validation is completed by the domain constructors
// in the handler; the command checks identifiers, name, hours and capacity.
func NewCreateRelayPointCommand(
	relayPointID kernel.UUID,
	ownerID kernel.UUID,
	name string,
	latitude float64,
	longitude float64,
	street string,
	city string,
	postalCode string,
	maxCapacity int,
	openingHours string,
	description string,
) (CreateRelayPointCommand, error) {
	relayCommand := CreateRelayPointCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		relayCommand.setRelayPointID(relayPointID),
		relayCommand.setOwnerID(ownerID),
		relayCommand.setName(name),
		relayCommand.setMaxCapacity(maxCapacity),
		relayCommand.setOpeningHours(openingHours),
	); err != nil {
		return CreateRelayPointCommand{}, err
	}

	relayCommand.latitude = latitude
	relayCommand.longitude = longitude
	relayCommand.street = street
	relayCommand.city = city
	relayCommand.postalCode = postalCode
	relayCommand.description = description
	return relayCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRelayPointCommand) Validate() error {
	return c.guard.Validate(ErrCreateRelayPointCommandIsNotConstructed)
}

// RelayPointID returns the identifier for the new relay point.
func (c CreateRelayPointCommand) RelayPointID() kernel.UUID { return c.relayPointID }

// OwnerID returns the owning Proprietaire's identifier.
func (c CreateRelayPointCommand) OwnerID() kernel.UUID { return c.ownerID }

// Name returns the display name.
func (c CreateRelayPointCommand) Name() string { return c.name }

// Latitude returns the geographic latitude.
func (c CreateRelayPointCommand) Latitude() float64 { return c.latitude }

// Longitude returns the geographic longitude.
func (c CreateRelayPointCommand) Longitude() float64 { return c.longitude }

// Street returns the street line of the postal address.
func (c CreateRelayPointCommand) Street() string { return c.street }

// City returns the city of the postal address.
func (c CreateRelayPointCommand) City() string { return c.city }

// PostalCode returns the postal code of the postal address.
func (c CreateRelayPointCommand) PostalCode() string { return c.postalCode }

// MaxCapacity returns the maximum parcel capacity.
func (c CreateRelayPointCommand) MaxCapacity() int { return c.maxCapacity }

// OpeningHours returns the free-text opening hours.
func (c CreateRelayPointCommand) OpeningHours() string { return c.openingHours }

// Description returns the free-text description.
func (c CreateRelayPointCommand) Description() string { return c.description }

func (c *CreateRelayPointCommand) setRelayPointID(relayPointID kernel.UUID) error {
	if err := relayPointID.Validate(); err != nil {
		return err
	}

	c.relayPointID = relayPointID
	return nil
}

func (c *CreateRelayPointCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateRelayPointCommand) setName(name string) error {
	if name == "" {
		return ErrRelayPointNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateRelayPointCommand) setMaxCapacity(maxCapacity int) error {
	if maxCapacity <= 0 {
		return ErrRelayPointCapacityIsInvalid
	}

	c.maxCapacity = maxCapacity
	return nil
}

func (c *CreateRelayPointCommand) setOpeningHours(openingHours string) error {
	if openingHours == "" {
		return ErrRelayPointHoursAreRequired
	}

	c.openingHours = openingHours
	return nil
}
