package queries

import (
	"context"
	"database/sql"
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetClientQueryHandler retrieves a single client account from the database.
type GetClientQueryHandler struct {
	db *gorm.DB
}

// NewGetClientQueryHandler creates a handler for single-client queries.
func NewGetClientQueryHandler(db *gorm.DB) GetClientQueryHandler {
	return GetClientQueryHandler{db: db}
}

// Handle executes the query; returns errs.ErrObjectNotFound when the client
// does not exist.
func (h GetClientQueryHandler) Handle(
	ctx context.Context,
	query GetClientQuery,
) (ClientResponse, error) {
	if err := query.Validate(); err != nil {
		return ClientResponse{}, err
	}

	var clientResp ClientResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			surname,
			email,
			phone,
			address,
			registered_at
		FROM clients
		WHERE id = ?
	`, query.ClientID().Bytes()).Row()

	err := row.Scan(
		&id,
		&clientResp.Name,
		&clientResp.Surname,
		&clientResp.Email,
		&clientResp.Phone,
		&clientResp.Address,
		&clientResp.RegisteredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ClientResponse{}, errs.NewObjectNotFoundError("clientID", query.ClientID())
	}
	if err != nil {
		return ClientResponse{}, err
	}

	clientID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ClientResponse{}, err
	}
	clientResp.ID = clientID

	return clientResp, nil
}
