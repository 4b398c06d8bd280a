package queries

import (
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/guard"
)

var ErrSearchRelayPointsQueryIsNotConstructed = errors.New(
	"SearchRelayPointsQuery must be created via NewSearchRelayPointsQuery constructor",
)

// SearchRelayPointsQuery retrieves relay points matching optional filters:
// exact city, exact postal code, and remaining-capacity availability.
// A zero filter set returns every relay point.
type SearchRelayPointsQuery struct { //nolint:recvcheck //using for validation
	city          string
	postalCode    string
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewSearchRelayPointsQuery creates a filtered relay-point search query.
func NewSearchRelayPointsQuery(city string, postalCode string, availableOnly bool) SearchRelayPointsQuery {
	return SearchRelayPointsQuery{
		city:          city,
		postalCode:    postalCode,
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q SearchRelayPointsQuery) Validate() error {
	return q.guard.Validate(ErrSearchRelayPointsQueryIsNotConstructed)
}

// City returns the optional city filter ("" means no filter).
func (q SearchRelayPointsQuery) City() string { return q.city }

// PostalCode returns the optional postal-code filter ("" means no filter).
func (q SearchRelayPointsQuery) PostalCode() string { return q.postalCode }

// AvailableOnly reports whether full relay points are excluded.
func (q SearchRelayPointsQuery) AvailableOnly() bool { return q.availableOnly }

// RelayPointResponse represents relay-point information in the read model.
type RelayPointResponse struct {
	ID           kernel.UUID
	Name         string
	Latitude     float64
	Longitude    float64
	Street       string
	City         string
	PostalCode   string
	OwnerID      kernel.UUID
	MaxCapacity  int
	CurrentStock int
	OpeningHours string
	Description  string
	Rating       *float64
}
