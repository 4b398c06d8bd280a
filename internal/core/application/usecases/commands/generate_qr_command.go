package commands

import (
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/guard"
)

var ErrGenerateQRCommandIsNotConstructed = errors.New(
	"GenerateQRCommand must be created via NewGenerateQRCommand constructor",
)

// GenerateQRCommand represents a request to (re)issue a parcel's pickup
// credential.
type GenerateQRCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGenerateQRCommand creates a command to generate a QR credential.
func NewGenerateQRCommand(parcelID kernel.UUID) (GenerateQRCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return GenerateQRCommand{}, err
	}

	return GenerateQRCommand{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateQRCommand) Validate() error {
	return c.guard.Validate(ErrGenerateQRCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel needing a credential.
func (c GenerateQRCommand) ParcelID() kernel.UUID { return c.parcelID }
