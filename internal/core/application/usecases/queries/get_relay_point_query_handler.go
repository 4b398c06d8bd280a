package queries

import (
	"context"
	"database/sql"
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/parcel"
	"relais/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRelayPointQueryHandler retrieves a relay point with its held parcels.
type GetRelayPointQueryHandler struct {
	db *gorm.DB
}

// NewGetRelayPointQueryHandler creates a handler for relay-point detail queries.
func NewGetRelayPointQueryHandler(db *gorm.DB) GetRelayPointQueryHandler {
	return GetRelayPointQueryHandler{db: db}
}

// Handle executes the query; returns errs.ErrObjectNotFound when the relay
// point does not exist. Held parcels are those deposited and not yet
// withdrawn.
func (h GetRelayPointQueryHandler) Handle(
	ctx context.Context,
	query GetRelayPointQuery,
) (GetRelayPointQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRelayPointQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(
		relayPointSelectSQL+` WHERE id = ?`, query.RelayPointID().Bytes()).Row()

	relayResp, err := scanRelayPointRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return GetRelayPointQueryResponse{}, errs.NewObjectNotFoundError(
			"relayPointID", query.RelayPointID())
	}
	if err != nil {
		return GetRelayPointQueryResponse{}, err
	}

	response := GetRelayPointQueryResponse{
		RelayPointResponse: relayResp,
		HeldParcelIDs:      make([]kernel.UUID, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM parcels
		WHERE relay_point_id = ? AND status IN (?, ?)
		ORDER BY deposited_at
	`, query.RelayPointID().Bytes(),
		parcel.StatusReceived.String(), parcel.StatusDelivered.String()).Rows()
	if err != nil {
		return GetRelayPointQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return GetRelayPointQueryResponse{}, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetRelayPointQueryResponse{}, idErr
		}
		response.HeldParcelIDs = append(response.HeldParcelIDs, parcelID)
	}

	if err = rows.Err(); err != nil {
		return GetRelayPointQueryResponse{}, err
	}

	return response, nil
}
