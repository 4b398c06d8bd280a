package queries

import (
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/guard"
)

var ErrGetRelayPointQueryIsNotConstructed = errors.New(
	"GetRelayPointQuery must be created via NewGetRelayPointQuery constructor",
)

// GetRelayPointQuery retrieves a single relay point by identifier,
// including its stock readout and the identifiers of held parcels.
type GetRelayPointQuery struct { //nolint:recvcheck //using for validation
	relayPointID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRelayPointQuery creates a query to retrieve one relay point.
func NewGetRelayPointQuery(relayPointID kernel.UUID) (GetRelayPointQuery, error) {
	if err := relayPointID.Validate(); err != nil {
		return GetRelayPointQuery{}, err
	}

	return GetRelayPointQuery{
		relayPointID: relayPointID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRelayPointQuery) Validate() error {
	return q.guard.Validate(ErrGetRelayPointQueryIsNotConstructed)
}

// RelayPointID returns the requested relay-point identifier.
func (q GetRelayPointQuery) RelayPointID() kernel.UUID { return q.relayPointID }

// GetRelayPointQueryResponse is the detail read model: the relay point plus
// the parcels currently waiting there.
type GetRelayPointQueryResponse struct {
	RelayPointResponse

	HeldParcelIDs []kernel.UUID
}
