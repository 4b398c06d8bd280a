// Package ownerrepo provides data transfer objects and mapping functions for owner persistence.
// The owned relay-point identifiers are not stored here: ownership is derived
// from the owner_id back-reference on the relay_points table, so relay-point
// writes are the single path that changes membership.
package ownerrepo

import (
	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/owner"

	"github.com/google/uuid"
)

// OwnerDTO represents the database structure for persisting owner aggregates.
type OwnerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Email string
}

// TableName specifies the database table name for owner entities.
func (OwnerDTO) TableName() string {
	return "owners"
}

// fromDomain converts an owner domain aggregate to its database representation.
func fromDomain(aggregate *owner.Owner) OwnerDTO {
	return OwnerDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Email: aggregate.Email(),
	}
}

// toDomain converts a database DTO plus the derived relay-point identifiers
// to an owner domain aggregate using RestoreOwner.
func toDomain(dto OwnerDTO, relayPointIDs []kernel.UUID) (*owner.Owner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return owner.RestoreOwner(id, dto.Name, dto.Email, relayPointIDs)
}
