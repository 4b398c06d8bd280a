package queries

import (
	"context"

	"relais/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllClientsQueryHandler retrieves all client accounts from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllClientsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllClientsQueryHandler creates a handler for client list queries.
func NewGetAllClientsQueryHandler(db *gorm.DB) GetAllClientsQueryHandler {
	return GetAllClientsQueryHandler{db: db}
}

// Handle executes the query to retrieve all clients sorted by surname.
func (h GetAllClientsQueryHandler) Handle(
	ctx context.Context,
	query GetAllClientsQuery,
) ([]ClientResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	clients := make([]ClientResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			surname,
			email,
			phone,
			address,
			registered_at
		FROM clients
		ORDER BY surname, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var clientResp ClientResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&clientResp.Name,
			&clientResp.Surname,
			&clientResp.Email,
			&clientResp.Phone,
			&clientResp.Address,
			&clientResp.RegisteredAt,
		)
		if err != nil {
			return nil, err
		}

		clientID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		clientResp.ID = clientID
		clients = append(clients, clientResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}
