package queries

import (
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/errs"
	"relais/internal/pkg/guard"
)

// DefaultSearchRadiusKm is used when a proximity search gives no radius.
const DefaultSearchRadiusKm = 5.0

var ErrGetNearbyRelayPointsQueryIsNotConstructed = errors.New(
	"GetNearbyRelayPointsQuery must be created via NewGetNearbyRelayPointsQuery constructor",
)

// GetNearbyRelayPointsQuery retrieves relay points within a great-circle
// radius of a position.
type GetNearbyRelayPointsQuery struct { //nolint:recvcheck //using for validation
	center   kernel.Coordinates
	radiusKm float64

	guard guard.ConstructorGuard
}

// NewGetNearbyRelayPointsQuery creates a proximity search query.
// The radius must be positive; pass DefaultSearchRadiusKm for the default.
func NewGetNearbyRelayPointsQuery(latitude float64, longitude float64, radiusKm float64) (GetNearbyRelayPointsQuery, error) {
	center, err := kernel.NewCoordinates(latitude, longitude)
	if err != nil {
		return GetNearbyRelayPointsQuery{}, err
	}

	if radiusKm <= 0 {
		return GetNearbyRelayPointsQuery{}, errs.NewValueIsInvalidError("radiusKm")
	}

	return GetNearbyRelayPointsQuery{
		center:   center,
		radiusKm: radiusKm,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNearbyRelayPointsQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyRelayPointsQueryIsNotConstructed)
}

// Center returns the search position.
func (q GetNearbyRelayPointsQuery) Center() kernel.Coordinates { return q.center }

// RadiusKm returns the search radius in kilometers.
func (q GetNearbyRelayPointsQuery) RadiusKm() float64 { return q.radiusKm }

// NearbyRelayPointResponse pairs a relay point with its distance from the
// search position.
type NearbyRelayPointResponse struct {
	RelayPointResponse

	DistanceKm float64
}
