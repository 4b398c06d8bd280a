package queries

import (
	"context"
	"sort"

	"relais/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetNearbyRelayPointsQueryHandler retrieves relay points within a radius of
// a position. The haversine distance is computed in Go over a full scan; the
// relay-point population is small enough that a geo index is not worth the
// operational cost.
type GetNearbyRelayPointsQueryHandler struct {
	db *gorm.DB
}

// NewGetNearbyRelayPointsQueryHandler creates a handler for proximity searches.
func NewGetNearbyRelayPointsQueryHandler(db *gorm.DB) GetNearbyRelayPointsQueryHandler {
	return GetNearbyRelayPointsQueryHandler{db: db}
}

// Handle executes the proximity search, sorted by distance, nearest first.
func (h GetNearbyRelayPointsQueryHandler) Handle(
	ctx context.Context,
	query GetNearbyRelayPointsQuery,
) ([]NearbyRelayPointResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(relayPointSelectSQL).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	nearby := make([]NearbyRelayPointResponse, 0)
	for rows.Next() {
		relayResp, scanErr := scanRelayPointRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}

		coordinates, coordErr := kernel.NewCoordinates(relayResp.Latitude, relayResp.Longitude)
		if coordErr != nil {
			return nil, coordErr
		}

		distance, distErr := query.Center().DistanceKm(coordinates)
		if distErr != nil {
			return nil, distErr
		}
		if distance > query.RadiusKm() {
			continue
		}

		nearby = append(nearby, NearbyRelayPointResponse{
			RelayPointResponse: relayResp,
			DistanceKm:         distance,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	return nearby, nil
}
