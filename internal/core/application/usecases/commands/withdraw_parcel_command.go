package commands

import (
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/errs"
	"relais/internal/pkg/guard"
)

var (
	ErrWithdrawParcelCommandIsNotConstructed = errors.New(
		"WithdrawParcelCommand must be created via NewWithdrawParcelCommand constructor",
	)
	ErrQRCodeIsRequired = errs.NewValueIsRequiredError("qr code")
)

// WithdrawParcelCommand represents a client picking up a parcel at a relay
// point, presenting the QR credential.
type WithdrawParcelCommand struct { //nolint:recvcheck //using for validation
	relayPointID kernel.UUID
	parcelID     kernel.UUID
	qrCode       string

	guard guard.ConstructorGuard
}

// NewWithdrawParcelCommand creates a command recording a parcel pickup.
func NewWithdrawParcelCommand(
	relayPointID kernel.UUID,
	parcelID kernel.UUID,
	qrCode string,
) (WithdrawParcelCommand, error) {
	if err := errors.Join(relayPointID.Validate(), parcelID.Validate()); err != nil {
		return WithdrawParcelCommand{}, err
	}

	if qrCode == "" {
		return WithdrawParcelCommand{}, ErrQRCodeIsRequired
	}

	return WithdrawParcelCommand{
		relayPointID: relayPointID,
		parcelID:     parcelID,
		qrCode:       qrCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c WithdrawParcelCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawParcelCommandIsNotConstructed)
}

// RelayPointID returns the relay point the pickup happens at.
func (c WithdrawParcelCommand) RelayPointID() kernel.UUID { return c.relayPointID }

// ParcelID returns the parcel being picked up.
func (c WithdrawParcelCommand) ParcelID() kernel.UUID { return c.parcelID }

// QRCode returns the presented pickup credential.
func (c WithdrawParcelCommand) QRCode() string { return c.qrCode }
