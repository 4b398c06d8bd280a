package queries

import (
	"context"

	"relais/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchRelayPointsQueryHandler retrieves relay points matching the query's
// filters.
type SearchRelayPointsQueryHandler struct {
	db *gorm.DB
}

// NewSearchRelayPointsQueryHandler creates a handler for relay-point searches.
func NewSearchRelayPointsQueryHandler(db *gorm.DB) SearchRelayPointsQueryHandler {
	return SearchRelayPointsQueryHandler{db: db}
}

// Handle executes the filtered search sorted by name.
func (h SearchRelayPointsQueryHandler) Handle(
	ctx context.Context,
	query SearchRelayPointsQuery,
) ([]RelayPointResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := relayPointSelectSQL + ` WHERE 1=1`
	args := make([]any, 0, 2)

	if city := query.City(); city != "" {
		sql += ` AND city = ?`
		args = append(args, city)
	}
	if postalCode := query.PostalCode(); postalCode != "" {
		sql += ` AND postal_code = ?`
		args = append(args, postalCode)
	}
	if query.AvailableOnly() {
		sql += ` AND current_stock < max_capacity`
	}

	sql += ` ORDER BY name`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	relayPoints := make([]RelayPointResponse, 0)
	for rows.Next() {
		relayResp, scanErr := scanRelayPointRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		relayPoints = append(relayPoints, relayResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return relayPoints, nil
}

const relayPointSelectSQL = `
	SELECT
		id,
		name,
		latitude,
		longitude,
		street,
		city,
		postal_code,
		owner_id,
		max_capacity,
		current_stock,
		opening_hours,
		description,
		rating
	FROM relay_points`

// scanRelayPointRow maps one relay_points row into the read model. Shared by
// every relay-point query so the column order stays in one place.
func scanRelayPointRow(scan func(dest ...any) error) (RelayPointResponse, error) {
	var relayResp RelayPointResponse
	var id, ownerID uuid.UUID

	err := scan(
		&id,
		&relayResp.Name,
		&relayResp.Latitude,
		&relayResp.Longitude,
		&relayResp.Street,
		&relayResp.City,
		&relayResp.PostalCode,
		&ownerID,
		&relayResp.MaxCapacity,
		&relayResp.CurrentStock,
		&relayResp.OpeningHours,
		&relayResp.Description,
		&relayResp.Rating,
	)
	if err != nil {
		return RelayPointResponse{}, err
	}

	if relayResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return RelayPointResponse{}, err
	}
	if relayResp.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
		return RelayPointResponse{}, err
	}

	return relayResp, nil
}
