package queries

import (
	"errors"
	"time"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/parcel"
	"relais/internal/pkg/guard"
)

var ErrSearchParcelsQueryIsNotConstructed = errors.New(
	"SearchParcelsQuery must be created via NewSearchParcelsQuery constructor",
)

// SearchParcelsQuery retrieves parcels matching a combination of optional
// filters. A zero filter set returns every parcel.
type SearchParcelsQuery struct { //nolint:recvcheck //using for validation
	status       *parcel.Status
	senderID     *kernel.UUID
	recipientID  *kernel.UUID
	relayPointID *kernel.UUID

	// depositedOn filters to parcels deposited within that calendar day (UTC)
	depositedOn *time.Time

	guard guard.ConstructorGuard
}

// SearchParcelsFilter carries the optional search criteria.
type SearchParcelsFilter struct {
	Status       *parcel.Status
	SenderID     *kernel.UUID
	RecipientID  *kernel.UUID
	RelayPointID *kernel.UUID
	DepositedOn  *time.Time
}

// NewSearchParcelsQuery creates a filtered parcel search query.
func NewSearchParcelsQuery(filter SearchParcelsFilter) (SearchParcelsQuery, error) {
	query := SearchParcelsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return SearchParcelsQuery{}, err
		}
		status := *filter.Status
		query.status = &status
	}

	for _, optional := range []struct {
		src **kernel.UUID
		val *kernel.UUID
	}{
		{&query.senderID, filter.SenderID},
		{&query.recipientID, filter.RecipientID},
		{&query.relayPointID, filter.RelayPointID},
	} {
		if optional.val == nil {
			continue
		}
		if err := optional.val.Validate(); err != nil {
			return SearchParcelsQuery{}, err
		}
		id := *optional.val
		*optional.src = &id
	}

	if filter.DepositedOn != nil {
		day := filter.DepositedOn.UTC()
		query.depositedOn = &day
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchParcelsQuery) Validate() error {
	return q.guard.Validate(ErrSearchParcelsQueryIsNotConstructed)
}

// Status returns the optional lifecycle status filter.
func (q SearchParcelsQuery) Status() *parcel.Status { return q.status }

// SenderID returns the optional sender filter.
func (q SearchParcelsQuery) SenderID() *kernel.UUID { return q.senderID }

// RecipientID returns the optional recipient filter.
func (q SearchParcelsQuery) RecipientID() *kernel.UUID { return q.recipientID }

// RelayPointID returns the optional relay-point filter.
func (q SearchParcelsQuery) RelayPointID() *kernel.UUID { return q.relayPointID }

// DepositedOn returns the optional deposit-day filter.
func (q SearchParcelsQuery) DepositedOn() *time.Time { return q.depositedOn }
