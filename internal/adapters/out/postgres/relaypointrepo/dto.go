// Package relaypointrepo provides data transfer objects and mapping functions
// for relay-point persistence.
//
// The held parcel-id set is not stored in a join table: membership is derived
// from the parcels table (rows assigned here in Received or Delivered status),
// so parcel writes are the single path that changes it. Only the stock counter
// is persisted on the relay point itself.
package relaypointrepo

import (
	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/relaypoint"

	"github.com/google/uuid"
)

// RelayPointDTO represents the database structure for persisting relay-point aggregates.
type RelayPointDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Latitude     float64
	Longitude    float64
	Street       string
	City         string    `gorm:"index"`
	PostalCode   string    `gorm:"index"`
	OwnerID      uuid.UUID `gorm:"type:uuid;index"`
	MaxCapacity  int
	CurrentStock int
	OpeningHours string
	Description  string
	Rating       *float64
}

// TableName specifies the database table name for relay-point entities.
func (RelayPointDTO) TableName() string {
	return "relay_points"
}

// fromDomain converts a relay-point domain aggregate to its database representation.
// The held parcel-id set is intentionally absent; it lives on the parcels table.
func fromDomain(aggregate *relaypoint.RelayPoint) RelayPointDTO {
	return RelayPointDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Latitude:     aggregate.Coordinates().Latitude(),
		Longitude:    aggregate.Coordinates().Longitude(),
		Street:       aggregate.Address().Street(),
		City:         aggregate.Address().City(),
		PostalCode:   aggregate.Address().PostalCode(),
		OwnerID:      aggregate.OwnerID().Bytes(),
		MaxCapacity:  aggregate.MaxCapacity(),
		CurrentStock: aggregate.CurrentStock(),
		OpeningHours: aggregate.OpeningHours(),
		Description:  aggregate.Description(),
		Rating:       aggregate.Rating(),
	}
}

// toDomain converts a database DTO plus the derived held parcel identifiers
// to a relay-point domain aggregate using RestoreRelayPoint.
func toDomain(dto RelayPointDTO, parcelIDs []kernel.UUID) (*relaypoint.RelayPoint, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	coordinates, err := kernel.NewCoordinates(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	address, err := relaypoint.NewAddress(dto.Street, dto.City, dto.PostalCode)
	if err != nil {
		return nil, err
	}

	return relaypoint.RestoreRelayPoint(
		id,
		dto.Name,
		coordinates,
		address,
		ownerID,
		dto.MaxCapacity,
		dto.CurrentStock,
		dto.OpeningHours,
		dto.Description,
		dto.Rating,
		parcelIDs,
	)
}
