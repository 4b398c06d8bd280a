package queries

import (
	"context"
	"database/sql"
	"errors"

	"relais/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelByQRQueryHandler resolves a scanned QR credential to its parcel.
type GetParcelByQRQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelByQRQueryHandler creates a handler for credential lookups.
func NewGetParcelByQRQueryHandler(db *gorm.DB) GetParcelByQRQueryHandler {
	return GetParcelByQRQueryHandler{db: db}
}

// Handle executes the lookup; returns errs.ErrObjectNotFound when no parcel
// carries the credential.
func (h GetParcelByQRQueryHandler) Handle(
	ctx context.Context,
	query GetParcelByQRQuery,
) (ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(
		parcelSelectSQL+` WHERE qr_code_path = ?`, query.QRCodePath()).Row()

	parcelResp, err := scanParcelRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return ParcelResponse{}, errs.NewObjectNotFoundError("qrCodePath", query.QRCodePath())
	}
	if err != nil {
		return ParcelResponse{}, err
	}

	return parcelResp, nil
}
