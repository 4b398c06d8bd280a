package commands

import (
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/errs"
	"relais/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrParcelWeightIsInvalid = errs.NewValueIsInvalidError("weight")
)

// CreateParcelCommand represents a request to register a new parcel.
// The relay point is optional at creation; when given, the parcel is
// pre-assigned to it for the deposit step.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID     kernel.UUID
	senderID     kernel.UUID
	recipientID  kernel.UUID
	relayPointID *kernel.UUID
	description  string
	weight       float64
	dimensions   float64

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a parcel.
// Sender and recipient must be valid distinct identifiers and the weight
// must be positive.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	senderID kernel.UUID,
	recipientID kernel.UUID,
	relayPointID *kernel.UUID,
	description string,
	weight float64,
	dimensions float64,
) (CreateParcelCommand, error) {
	parcelCommand := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcelCommand.setParcelID(parcelID),
		parcelCommand.setParties(senderID, recipientID),
		parcelCommand.setRelayPointID(relayPointID),
		parcelCommand.setWeight(weight),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	parcelCommand.description = description
	parcelCommand.dimensions = dimensions
	return parcelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier for the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID { return c.parcelID }

// SenderID returns the sending client's identifier.
func (c CreateParcelCommand) SenderID() kernel.UUID { return c.senderID }

// RecipientID returns the receiving client's identifier.
func (c CreateParcelCommand) RecipientID() kernel.UUID { return c.recipientID }

// RelayPointID returns the optional target relay point.
func (c CreateParcelCommand) RelayPointID() *kernel.UUID { return c.relayPointID }

// Description returns the free-text contents description.
func (c CreateParcelCommand) Description() string { return c.description }

// Weight returns the parcel weight in kilograms.
func (c CreateParcelCommand) Weight() float64 { return c.weight }

// Dimensions returns the parcel dimensions figure.
func (c CreateParcelCommand) Dimensions() float64 { return c.dimensions }

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setParties(senderID kernel.UUID, recipientID kernel.UUID) error {
	if err := errors.Join(senderID.Validate(), recipientID.Validate()); err != nil {
		return err
	}

	c.senderID = senderID
	c.recipientID = recipientID
	return nil
}

func (c *CreateParcelCommand) setRelayPointID(relayPointID *kernel.UUID) error {
	if relayPointID == nil {
		return nil
	}

	if err := relayPointID.Validate(); err != nil {
		return err
	}

	id := *relayPointID
	c.relayPointID = &id
	return nil
}

func (c *CreateParcelCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return ErrParcelWeightIsInvalid
	}

	c.weight = weight
	return nil
}
