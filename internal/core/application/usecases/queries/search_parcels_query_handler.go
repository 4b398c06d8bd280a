package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// SearchParcelsQueryHandler retrieves parcels matching the query's filters.
type SearchParcelsQueryHandler struct {
	db *gorm.DB
}

// NewSearchParcelsQueryHandler creates a handler for parcel searches.
func NewSearchParcelsQueryHandler(db *gorm.DB) SearchParcelsQueryHandler {
	return SearchParcelsQueryHandler{db: db}
}

// Handle executes the filtered search, sorted by last update, newest first.
// The deposit-day filter matches the whole UTC calendar day.
func (h SearchParcelsQueryHandler) Handle(
	ctx context.Context,
	query SearchParcelsQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := parcelSelectSQL + ` WHERE 1=1`
	args := make([]any, 0, 6)

	if status := query.Status(); status != nil {
		sql += ` AND status = ?`
		args = append(args, status.String())
	}
	if senderID := query.SenderID(); senderID != nil {
		sql += ` AND sender_id = ?`
		args = append(args, senderID.Bytes())
	}
	if recipientID := query.RecipientID(); recipientID != nil {
		sql += ` AND recipient_id = ?`
		args = append(args, recipientID.Bytes())
	}
	if relayPointID := query.RelayPointID(); relayPointID != nil {
		sql += ` AND relay_point_id = ?`
		args = append(args, relayPointID.Bytes())
	}
	if depositedOn := query.DepositedOn(); depositedOn != nil {
		dayStart := time.Date(
			depositedOn.Year(), depositedOn.Month(), depositedOn.Day(),
			0, 0, 0, 0, time.UTC)
		sql += ` AND deposited_at >= ? AND deposited_at < ?`
		args = append(args, dayStart, dayStart.AddDate(0, 0, 1))
	}

	sql += ` ORDER BY updated_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]ParcelResponse, 0)
	for rows.Next() {
		parcelResp, scanErr := scanParcelRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		parcels = append(parcels, parcelResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
