// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
// This package implements the repository pattern for the parcel domain aggregate, handling
// the conversion between domain entities and database representations.
package parcelrepo

import (
	"time"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// Status is stored under its canonical wire name so rows stay readable and the
// reminder query can filter without decoding enum ordinals.
type ParcelDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SenderID     uuid.UUID  `gorm:"type:uuid;index"`
	RecipientID  uuid.UUID  `gorm:"type:uuid;index"`
	RelayPointID *uuid.UUID `gorm:"type:uuid;index"`
	Description  string
	Weight       float64
	Dimensions   float64
	Status       string `gorm:"index"`
	DepositedAt  *time.Time
	WithdrawnAt  *time.Time
	UpdatedAt    time.Time
	QRCodePath   string `gorm:"column:qr_code_path;index"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var relayPointID *uuid.UUID
	if id := aggregate.RelayPointID(); id != nil {
		raw := id.Bytes()
		relayPointID = &raw
	}

	return ParcelDTO{
		ID:           aggregate.ID().Bytes(),
		SenderID:     aggregate.SenderID().Bytes(),
		RecipientID:  aggregate.RecipientID().Bytes(),
		RelayPointID: relayPointID,
		Description:  aggregate.Description(),
		Weight:       aggregate.Weight(),
		Dimensions:   aggregate.Dimensions(),
		Status:       aggregate.Status().String(),
		DepositedAt:  aggregate.DepositedAt(),
		WithdrawnAt:  aggregate.WithdrawnAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
		QRCodePath:   aggregate.QRCodePath(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	var relayPointID *kernel.UUID
	if dto.RelayPointID != nil {
		rpID, rpErr := kernel.UUIDFromBytes((*dto.RelayPointID)[:])
		if rpErr != nil {
			return nil, rpErr
		}
		relayPointID = &rpID
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		senderID,
		recipientID,
		relayPointID,
		dto.Description,
		dto.Weight,
		dto.Dimensions,
		status,
		dto.DepositedAt,
		dto.WithdrawnAt,
		dto.UpdatedAt,
		dto.QRCodePath,
	)
}
