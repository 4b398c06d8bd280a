// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/guard"
)

var ErrGetAllClientsQueryIsNotConstructed = errors.New(
	"GetAllClientsQuery must be created via NewGetAllClientsQuery constructor",
)

// GetAllClientsQuery retrieves every registered client account.
type GetAllClientsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllClientsQuery creates a query to retrieve all clients.
func NewGetAllClientsQuery() GetAllClientsQuery {
	return GetAllClientsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllClientsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllClientsQueryIsNotConstructed)
}

// ClientResponse represents client information in the read model.
// The credential hash is never exposed through queries.
type ClientResponse struct {
	ID           kernel.UUID
	Name         string
	Surname      string
	Email        string
	Phone        string
	Address      string
	RegisteredAt time.Time
}
