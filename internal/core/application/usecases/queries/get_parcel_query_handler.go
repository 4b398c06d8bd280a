package queries

import (
	"context"
	"database/sql"
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelQueryHandler retrieves a single parcel from the database.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for single-parcel queries.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the query; returns errs.ErrObjectNotFound when the parcel
// does not exist.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(
		parcelSelectSQL+` WHERE id = ?`, query.ParcelID().Bytes()).Row()

	parcelResp, err := scanParcelRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return ParcelResponse{}, errs.NewObjectNotFoundError("parcelID", query.ParcelID())
	}
	if err != nil {
		return ParcelResponse{}, err
	}

	return parcelResp, nil
}

const parcelSelectSQL = `
	SELECT
		id,
		sender_id,
		recipient_id,
		relay_point_id,
		description,
		weight,
		dimensions,
		status,
		deposited_at,
		withdrawn_at,
		updated_at,
		qr_code_path
	FROM parcels`

// scanParcelRow maps one parcels row into the read model. Shared by every
// parcel query so the column order stays in one place.
func scanParcelRow(scan func(dest ...any) error) (ParcelResponse, error) {
	var parcelResp ParcelResponse
	var id, senderID, recipientID uuid.UUID
	var relayPointID uuid.NullUUID

	err := scan(
		&id,
		&senderID,
		&recipientID,
		&relayPointID,
		&parcelResp.Description,
		&parcelResp.Weight,
		&parcelResp.Dimensions,
		&parcelResp.Status,
		&parcelResp.DepositedAt,
		&parcelResp.WithdrawnAt,
		&parcelResp.UpdatedAt,
		&parcelResp.QRCodePath,
	)
	if err != nil {
		return ParcelResponse{}, err
	}

	if parcelResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ParcelResponse{}, err
	}
	if parcelResp.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
		return ParcelResponse{}, err
	}
	if parcelResp.RecipientID, err = kernel.UUIDFromBytes(recipientID[:]); err != nil {
		return ParcelResponse{}, err
	}
	if relayPointID.Valid {
		relayID, idErr := kernel.UUIDFromBytes(relayPointID.UUID[:])
		if idErr != nil {
			return ParcelResponse{}, idErr
		}
		parcelResp.RelayPointID = &relayID
	}

	return parcelResp, nil
}
