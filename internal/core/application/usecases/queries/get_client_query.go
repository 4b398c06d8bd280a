package queries

import (
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/guard"
)

var ErrGetClientQueryIsNotConstructed = errors.New(
	"GetClientQuery must be created via NewGetClientQuery constructor",
)

// GetClientQuery retrieves a single client account by identifier.
type GetClientQuery struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClientQuery creates a query to retrieve one client.
func NewGetClientQuery(clientID kernel.UUID) (GetClientQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetClientQuery{}, err
	}

	return GetClientQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientQuery) Validate() error {
	return q.guard.Validate(ErrGetClientQueryIsNotConstructed)
}

// ClientID returns the requested client identifier.
func (q GetClientQuery) ClientID() kernel.UUID { return q.clientID }
