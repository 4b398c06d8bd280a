package commands

import (
	"context"

	"relais/internal/core/ports"
)

// GenerateQRCommandHandler renders a parcel's pickup credential and stores
// its serving path on the aggregate. Re-running the command replaces the
// previous credential.
type GenerateQRCommandHandler struct {
	uowFactory  ParcelUoWFactory
	qrGenerator ports.QRGenerator
}

// NewGenerateQRCommandHandler creates a handler for credential generation.
func NewGenerateQRCommandHandler(
	uowFactory ParcelUoWFactory,
	qrGenerator ports.QRGenerator,
) GenerateQRCommandHandler {
	return GenerateQRCommandHandler{
		uowFactory:  uowFactory,
		qrGenerator: qrGenerator,
	}
}

// Handle loads the parcel, renders the QR image and persists the new path.
// The stored path is returned so callers do not need a follow-up read.
func (h *GenerateQRCommandHandler) Handle(ctx context.Context, cmd GenerateQRCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return "", err
	}

	qrCodePath, err := h.qrGenerator.Generate(ctx, aggregate.ID())
	if err != nil {
		return "", err
	}

	if err = aggregate.AssignQRCodePath(qrCodePath); err != nil {
		return "", err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return qrCodePath, nil
}
