package commands

import (
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/guard"
)

var ErrUpdateRelayPointCommandIsNotConstructed = errors.New(
	"UpdateRelayPointCommand must be created via NewUpdateRelayPointCommand constructor",
)

// UpdateRelayPointCommand represents a full administrative update of a
// relay point's details. Ownership and stock are untouched.
type UpdateRelayPointCommand struct { //nolint:recvcheck //using for validation
	relayPointID kernel.UUID
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

// NewUpdateRelayPointCommand creates a command to update relay-point details.
func NewUpdateRelayPointCommand(
	relayPointID kernel.UUID,
	name string,
	latitude float64,
	longitude float64,
	street string,
	city string,
	postalCode string,
	maxCapacity int,
	openingHours string,
	description string,
) (UpdateRelayPointCommand, error) {
	relayCommand := UpdateRelayPointCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		relayCommand.setRelayPointID(relayPointID),
		relayCommand.setName(name),
		relayCommand.setMaxCapacity(maxCapacity),
		relayCommand.setOpeningHours(openingHours),
	); err != nil {
		return UpdateRelayPointCommand{}, err
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
func (c UpdateRelayPointCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRelayPointCommandIsNotConstructed)
}

// RelayPointID returns the identifier of the relay point to update.
func (c UpdateRelayPointCommand) RelayPointID() kernel.UUID { return c.relayPointID }

// Name returns the new display name.
func (c UpdateRelayPointCommand) Name() string { return c.name }

// Latitude returns the new geographic latitude.
func (c UpdateRelayPointCommand) Latitude() float64 { return c.latitude }

// Longitude returns the new geographic longitude.
func (c UpdateRelayPointCommand) Longitude() float64 { return c.longitude }

// Street returns the new street line.
func (c UpdateRelayPointCommand) Street() string { return c.street }

// City returns the new city.
func (c UpdateRelayPointCommand) City() string { return c.city }

// PostalCode returns the new postal code.
func (c UpdateRelayPointCommand) PostalCode() string { return c.postalCode }

// MaxCapacity returns the new maximum parcel capacity.
func (c UpdateRelayPointCommand) MaxCapacity() int { return c.maxCapacity }

// OpeningHours returns the new free-text opening hours.
func (c UpdateRelayPointCommand) OpeningHours() string { return c.openingHours }

// Description returns the new free-text description.
func (c UpdateRelayPointCommand) Description() string { return c.description }

func (c *UpdateRelayPointCommand) setRelayPointID(relayPointID kernel.UUID) error {
	if err := relayPointID.Validate(); err != nil {
		return err
	}

	c.relayPointID = relayPointID
	return nil
}

func (c *UpdateRelayPointCommand) setName(name string) error {
	if name == "" {
		return ErrRelayPointNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateRelayPointCommand) setMaxCapacity(maxCapacity int) error {
	if maxCapacity <= 0 {
		return ErrRelayPointCapacityIsInvalid
	}

	c.maxCapacity = maxCapacity
	return nil
}

func (c *UpdateRelayPointCommand) setOpeningHours(openingHours string) error {
	if openingHours == "" {
		return ErrRelayPointHoursAreRequired
	}

	c.openingHours = openingHours
	return nil
}
