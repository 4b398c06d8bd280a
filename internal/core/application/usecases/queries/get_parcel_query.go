package queries

import (
	"errors"
	"time"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery retrieves a single parcel by identifier.
type GetParcelQuery struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a query to retrieve one parcel.
func NewGetParcelQuery(parcelID kernel.UUID) (GetParcelQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelQuery{}, err
	}

	return GetParcelQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// ParcelID returns the requested parcel identifier.
func (q GetParcelQuery) ParcelID() kernel.UUID { return q.parcelID }

// ParcelResponse represents parcel information in the read model.
type ParcelResponse struct {
	ID           kernel.UUID
	SenderID     kernel.UUID
	RecipientID  kernel.UUID
	RelayPointID *kernel.UUID
	Description  string
	Weight       float64
	Dimensions   float64
	Status       string
	DepositedAt  *time.Time
	WithdrawnAt  *time.Time
	UpdatedAt    time.Time
	QRCodePath   string
}
