package queries

import (
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/guard"
)

var ErrGetAllOwnersQueryIsNotConstructed = errors.New(
	"GetAllOwnersQuery must be created via NewGetAllOwnersQuery constructor",
)

// GetAllOwnersQuery retrieves every registered relay-point owner.
type GetAllOwnersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOwnersQuery creates a query to retrieve all owners.
func NewGetAllOwnersQuery() GetAllOwnersQuery {
	return GetAllOwnersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOwnersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOwnersQueryIsNotConstructed)
}

// OwnerResponse represents owner information in the read model.
type OwnerResponse struct {
	ID            kernel.UUID
	Name          string
	Email         string
	RelayPointIDs []kernel.UUID
}
