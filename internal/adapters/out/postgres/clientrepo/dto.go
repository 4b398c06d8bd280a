// Package clientrepo provides data transfer objects and mapping functions for client persistence.
// This package implements the repository pattern for the client domain aggregate, handling
// the conversion between domain entities and database representations.
package clientrepo

import (
	"time"

	"relais/internal/core/domain/model/client"
	"relais/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClientDTO represents the database structure for persisting client aggregates.
type ClientDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Surname      string
	Email        string `gorm:"index"`
	Phone        string
	Password     string
	Address      string
	RegisteredAt time.Time
}

// TableName specifies the database table name for client entities.
func (ClientDTO) TableName() string {
	return "clients"
}

// fromDomain converts a client domain aggregate to its database representation.
func fromDomain(aggregate *client.Client) ClientDTO {
	return ClientDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Surname:      aggregate.Surname(),
		Email:        aggregate.Email(),
		Phone:        aggregate.Phone(),
		Password:     aggregate.Password(),
		Address:      aggregate.Address(),
		RegisteredAt: aggregate.RegisteredAt(),
	}
}

// toDomain converts a database DTO to a client domain aggregate using RestoreClient.
func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(
		id,
		dto.Name,
		dto.Surname,
		dto.Email,
		dto.Phone,
		dto.Password,
		dto.Address,
		dto.RegisteredAt,
	)
}
