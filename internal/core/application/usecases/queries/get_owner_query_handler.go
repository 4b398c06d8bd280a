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

// GetOwnerQueryHandler retrieves a single owner with their relay points.
type GetOwnerQueryHandler struct {
	db *gorm.DB
}

// NewGetOwnerQueryHandler creates a handler for single-owner queries.
func NewGetOwnerQueryHandler(db *gorm.DB) GetOwnerQueryHandler {
	return GetOwnerQueryHandler{db: db}
}

// Handle executes the query; returns errs.ErrObjectNotFound when the owner
// does not exist.
func (h GetOwnerQueryHandler) Handle(
	ctx context.Context,
	query GetOwnerQuery,
) (OwnerResponse, error) {
	if err := query.Validate(); err != nil {
		return OwnerResponse{}, err
	}

	var ownerResp OwnerResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email
		FROM owners
		WHERE id = ?
	`, query.OwnerID().Bytes()).Row()

	err := row.Scan(&id, &ownerResp.Name, &ownerResp.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return OwnerResponse{}, errs.NewObjectNotFoundError("ownerID", query.OwnerID())
	}
	if err != nil {
		return OwnerResponse{}, err
	}

	if ownerResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OwnerResponse{}, err
	}

	ownerResp.RelayPointIDs = make([]kernel.UUID, 0)
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM relay_points
		WHERE owner_id = ?
		ORDER BY name
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return OwnerResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var relayID uuid.UUID
		if err = rows.Scan(&relayID); err != nil {
			return OwnerResponse{}, err
		}

		relayPointID, idErr := kernel.UUIDFromBytes(relayID[:])
		if idErr != nil {
			return OwnerResponse{}, idErr
		}
		ownerResp.RelayPointIDs = append(ownerResp.RelayPointIDs, relayPointID)
	}

	if err = rows.Err(); err != nil {
		return OwnerResponse{}, err
	}

	return ownerResp, nil
}
