package relaypoint

import (
	"errors"
	"fmt"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/parcel"
	"relais/internal/pkg/errs"
	"relais/internal/pkg/guard"
)

const (
	// RatingMin is the lowest acceptable relay-point rating.
	RatingMin = 0.0
	// RatingMax is the highest acceptable relay-point rating.
	RatingMax = 5.0
)

// Domain errors for relay-point operations.
var (
	// ErrRelayPointIsNotConstructed is returned when using an improperly initialized RelayPoint.
	ErrRelayPointIsNotConstructed = errors.New("RelayPoint must be created via NewRelayPoint constructor")
	// ErrCapacityExceeded is returned when receiving a parcel at a full relay point.
	ErrCapacityExceeded = errors.New("relay point is at maximum capacity")
	// ErrParcelNotHeld is returned when withdrawing a parcel the relay point does not hold.
	ErrParcelNotHeld = errors.New("parcel is not held at this relay point")
	// ErrParcelAlreadyHeld is returned when receiving a parcel already in the held set.
	ErrParcelAlreadyHeld = errors.New("parcel is already held at this relay point")
	// ErrNameIsRequired is returned when creating a relay point without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrHoursAreRequired is returned when setting empty opening hours.
	ErrHoursAreRequired = errs.NewValueIsRequiredError("opening hours")
)

// RelayPoint is the aggregate root for a physical pickup/drop-off location.
// It owns a bounded-capacity stock of parcels, tracked redundantly as a
// counter (for O(1) accept/reject checks) and as the held parcel-id set.
//
// The counter is only ever mutated by ReceiveParcel, WithdrawParcel and
// RecomputeStock, so the two representations cannot drift through this type;
// RecomputeStock remains as the reconciliation escape hatch for stock rows
// touched outside the aggregate.
//
// Invariants:
//   - currentStock <= maxCapacity at all times
//   - currentStock equals len(parcelIDs) after every bookkeeping operation
type RelayPoint struct {
	id          kernel.UUID
	name        string
	coordinates kernel.Coordinates
	address     Address

	// ownerID is the back-reference to the owning Proprietaire
	ownerID kernel.UUID

	maxCapacity  int
	currentStock int

	openingHours string
	description  string

	// rating is the average customer rating (nil until first rated)
	rating *float64

	// parcelIDs is the held parcel collection, stored as identifiers
	parcelIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewRelayPoint creates an empty RelayPoint with validated fields.
func NewRelayPoint(
	id kernel.UUID,
	name string,
	coordinates kernel.Coordinates,
	address Address,
	ownerID kernel.UUID,
	maxCapacity int,
	openingHours string,
	description string,
) (*RelayPoint, error) {
	rp := &RelayPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rp.setID(id),
		rp.setName(name),
		rp.setCoordinates(coordinates),
		rp.setAddress(address),
		rp.setOwnerID(ownerID),
		rp.setMaxCapacity(maxCapacity),
		rp.setOpeningHours(openingHours),
	); err != nil {
		return nil, err
	}

	rp.description = description
	return rp, nil
}

// RestoreRelayPoint reconstructs a RelayPoint from persistent storage,
// including its stock counter, rating and held parcel identifiers.
func RestoreRelayPoint(
	id kernel.UUID,
	name string,
	coordinates kernel.Coordinates,
	address Address,
	ownerID kernel.UUID,
	maxCapacity int,
	currentStock int,
	openingHours string,
	description string,
	rating *float64,
	parcelIDs []kernel.UUID,
) (*RelayPoint, error) {
	rp, err := NewRelayPoint(id, name, coordinates, address, ownerID, maxCapacity, openingHours, description)
	if err != nil {
		return nil, err
	}

	if currentStock < 0 || currentStock > maxCapacity {
		return nil, errs.NewValueIsOutOfRangeError("current stock", currentStock, 0, maxCapacity)
	}

	if rating != nil {
		if err = rp.ChangeRating(*rating); err != nil {
			return nil, err
		}
	}

	for _, parcelID := range parcelIDs {
		if err = parcelID.Validate(); err != nil {
			return nil, err
		}
	}

	rp.currentStock = currentStock
	rp.parcelIDs = append([]kernel.UUID(nil), parcelIDs...)
	return rp, nil
}

// Validate ensures the RelayPoint was built through a constructor.
func (rp *RelayPoint) Validate() error {
	if rp == nil {
		return ErrRelayPointIsNotConstructed
	}
	return rp.guard.Validate(ErrRelayPointIsNotConstructed)
}

// IsEqual compares two relay points by identifier.
func (rp *RelayPoint) IsEqual(other *RelayPoint) bool {
	return other != nil && rp.id.IsEqual(other.id)
}

// ID returns the relay point's unique identifier.
func (rp *RelayPoint) ID() kernel.UUID { return rp.id }

// Name returns the display name.
func (rp *RelayPoint) Name() string { return rp.name }

// Coordinates returns the geographic position.
func (rp *RelayPoint) Coordinates() kernel.Coordinates { return rp.coordinates }

// Address returns the postal address.
func (rp *RelayPoint) Address() Address { return rp.address }

// OwnerID returns the owning Proprietaire's identifier.
func (rp *RelayPoint) OwnerID() kernel.UUID { return rp.ownerID }

// MaxCapacity returns the maximum number of parcels the point can hold.
func (rp *RelayPoint) MaxCapacity() int { return rp.maxCapacity }

// CurrentStock returns the cached held-parcel counter.
func (rp *RelayPoint) CurrentStock() int { return rp.currentStock }

// OpeningHours returns the free-text opening hours.
func (rp *RelayPoint) OpeningHours() string { return rp.openingHours }

// Description returns the free-text description.
func (rp *RelayPoint) Description() string { return rp.description }

// Rating returns the customer rating, or nil when never rated.
func (rp *RelayPoint) Rating() *float64 { return rp.rating }

// ParcelIDs returns a copy of the held parcel identifiers.
func (rp *RelayPoint) ParcelIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(rp.parcelIDs))
	copy(out, rp.parcelIDs)
	return out
}

// Holds reports whether the given parcel is in the held set.
func (rp *RelayPoint) Holds(parcelID kernel.UUID) bool {
	for _, held := range rp.parcelIDs {
		if held.IsEqual(parcelID) {
			return true
		}
	}
	return false
}

// CanAcceptParcel reports whether there is remaining capacity.
func (rp *RelayPoint) CanAcceptParcel() bool {
	return rp.currentStock < rp.maxCapacity
}

// ReceiveParcel records a parcel arriving at the relay point.
// Fails with ErrCapacityExceeded when the point is full and leaves state
// unchanged. This is pure bookkeeping: the parcel's own lifecycle transition
// is the calling service's responsibility.
func (rp *RelayPoint) ReceiveParcel(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	if !rp.CanAcceptParcel() {
		return ErrCapacityExceeded
	}

	if rp.Holds(parcelID) {
		return ErrParcelAlreadyHeld
	}

	rp.parcelIDs = append(rp.parcelIDs, parcelID)
	rp.currentStock++
	return nil
}

// WithdrawParcel removes a parcel from the held set after verifying the
// pickup credential against the parcel's stored QR path.
// Fails with parcel.ErrInvalidQRCode on mismatch and ErrParcelNotHeld when
// the parcel is not at this relay point; state is unchanged on failure.
func (rp *RelayPoint) WithdrawParcel(p *parcel.Parcel, code string) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if !p.VerifyQRCode(code) {
		return parcel.ErrInvalidQRCode
	}

	for i, held := range rp.parcelIDs {
		if held.IsEqual(p.ID()) {
			rp.parcelIDs = append(rp.parcelIDs[:i], rp.parcelIDs[i+1:]...)
			rp.currentStock--
			return nil
		}
	}

	return ErrParcelNotHeld
}

// RecomputeStock resets the counter to the size of the held set.
// Reconciliation escape hatch for drift introduced outside the aggregate.
func (rp *RelayPoint) RecomputeStock() {
	rp.currentStock = len(rp.parcelIDs)
}

// ChangeHours replaces the opening-hours text.
// Notifying clients holding parcels here is the calling service's job.
func (rp *RelayPoint) ChangeHours(newHours string) error {
	return rp.setOpeningHours(newHours)
}

// ChangeRating replaces the customer rating; must lie in [RatingMin, RatingMax].
func (rp *RelayPoint) ChangeRating(rating float64) error {
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	rp.rating = &rating
	return nil
}

// UpdateDetails replaces the administrative fields in one validated step.
// Capacity may not shrink below the current stock.
func (rp *RelayPoint) UpdateDetails(
	name string,
	coordinates kernel.Coordinates,
	address Address,
	maxCapacity int,
	openingHours string,
	description string,
) error {
	if maxCapacity < rp.currentStock {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity is invalid",
			fmt.Errorf("capacity %d is below current stock %d", maxCapacity, rp.currentStock),
		)
	}

	if err := errors.Join(
		rp.setName(name),
		rp.setCoordinates(coordinates),
		rp.setAddress(address),
		rp.setMaxCapacity(maxCapacity),
		rp.setOpeningHours(openingHours),
	); err != nil {
		return err
	}

	rp.description = description
	return nil
}

func (rp *RelayPoint) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	rp.id = id
	return nil
}

func (rp *RelayPoint) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	rp.name = name
	return nil
}

func (rp *RelayPoint) setCoordinates(coordinates kernel.Coordinates) error {
	if err := coordinates.Validate(); err != nil {
		return err
	}
	rp.coordinates = coordinates
	return nil
}

func (rp *RelayPoint) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	rp.address = address
	return nil
}

func (rp *RelayPoint) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	rp.ownerID = ownerID
	return nil
}

func (rp *RelayPoint) setMaxCapacity(maxCapacity int) error {
	if maxCapacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity is invalid", fmt.Errorf("%d is not greater than 0", maxCapacity))
	}
	rp.maxCapacity = maxCapacity
	return nil
}

func (rp *RelayPoint) setOpeningHours(openingHours string) error {
	if openingHours == "" {
		return ErrHoursAreRequired
	}
	rp.openingHours = openingHours
	return nil
}
