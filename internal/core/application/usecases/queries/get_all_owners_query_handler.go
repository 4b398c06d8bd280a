package queries

import (
	"context"

	"relais/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOwnersQueryHandler retrieves all owners with their relay points.
type GetAllOwnersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOwnersQueryHandler creates a handler for owner list queries.
func NewGetAllOwnersQueryHandler(db *gorm.DB) GetAllOwnersQueryHandler {
	return GetAllOwnersQueryHandler{db: db}
}

// Handle executes the query to retrieve all owners sorted by name.
func (h GetAllOwnersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOwnersQuery,
) ([]OwnerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.name,
			o.email,
			rp.id AS relay_point_id
		FROM owners o
		LEFT JOIN relay_points rp ON rp.owner_id = o.id
		ORDER BY o.name, rp.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	owners := make([]OwnerResponse, 0)
	index := make(map[kernel.UUID]int)

	for rows.Next() {
		var id uuid.UUID
		var name, email string
		var relayPointID uuid.NullUUID

		if err = rows.Scan(&id, &name, &email, &relayPointID); err != nil {
			return nil, err
		}

		ownerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		pos, seen := index[ownerID]
		if !seen {
			owners = append(owners, OwnerResponse{
				ID:            ownerID,
				Name:          name,
				Email:         email,
				RelayPointIDs: make([]kernel.UUID, 0),
			})
			pos = len(owners) - 1
			index[ownerID] = pos
		}

		if relayPointID.Valid {
			relayID, idErr := kernel.UUIDFromBytes(relayPointID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			owners[pos].RelayPointIDs = append(owners[pos].RelayPointIDs, relayID)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return owners, nil
}
