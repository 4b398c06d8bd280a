package queries

import (
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/guard"
)

var ErrGetOwnerQueryIsNotConstructed = errors.New(
	"GetOwnerQuery must be created via NewGetOwnerQuery constructor",
)

// GetOwnerQuery retrieves a single owner by identifier.
type GetOwnerQuery struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOwnerQuery creates a query to retrieve one owner.
func NewGetOwnerQuery(ownerID kernel.UUID) (GetOwnerQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetOwnerQuery{}, err
	}

	return GetOwnerQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnerQueryIsNotConstructed)
}

// OwnerID returns the requested owner identifier.
func (q GetOwnerQuery) OwnerID() kernel.UUID { return q.ownerID }
