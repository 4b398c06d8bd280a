package owner

import (
	"errors"
	"strings"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/errs"
	"relais/internal/pkg/guard"
)

// Domain errors for owner operations.
var (
	// ErrOwnerIsNotConstructed is returned when using an improperly initialized Owner.
	ErrOwnerIsNotConstructed = errors.New("Owner must be created via NewOwner constructor")
	// ErrRelayPointAlreadyOwned is returned when adding a relay point twice.
	ErrRelayPointAlreadyOwned = errors.New("relay point already belongs to this owner")
	// ErrRelayPointNotOwned is returned when removing a relay point the owner does not have.
	ErrRelayPointNotOwned = errors.New("relay point does not belong to this owner")
	// ErrEmailIsInvalid is returned when the email has no local or domain part.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
)

// Owner is the aggregate root for a Proprietaire running one or more relay
// points. Containment is one-directional: the owner holds relay-point
// identifiers, relay points carry the owner id back-reference.
type Owner struct {
	id    kernel.UUID
	name  string
	email string

	relayPointIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewOwner creates an Owner with no relay points.
func NewOwner(id kernel.UUID, name string, email string) (*Owner, error) {
	o := &Owner{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setName(name),
		o.setEmail(email),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOwner reconstructs an Owner from persistent storage.
func RestoreOwner(id kernel.UUID, name string, email string, relayPointIDs []kernel.UUID) (*Owner, error) {
	o, err := NewOwner(id, name, email)
	if err != nil {
		return nil, err
	}

	for _, relayPointID := range relayPointIDs {
		if err = relayPointID.Validate(); err != nil {
			return nil, err
		}
	}

	o.relayPointIDs = append([]kernel.UUID(nil), relayPointIDs...)
	return o, nil
}

// Validate ensures the Owner was built through a constructor.
func (o *Owner) Validate() error {
	if o == nil {
		return ErrOwnerIsNotConstructed
	}
	return o.guard.Validate(ErrOwnerIsNotConstructed)
}

// IsEqual compares two owners by identifier.
func (o *Owner) IsEqual(other *Owner) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the owner's unique identifier.
func (o *Owner) ID() kernel.UUID { return o.id }

// Name returns the owner's display name.
func (o *Owner) Name() string { return o.name }

// Email returns the contact email address.
func (o *Owner) Email() string { return o.email }

// RelayPointIDs returns a copy of the owned relay-point identifiers.
func (o *Owner) RelayPointIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(o.relayPointIDs))
	copy(out, o.relayPointIDs)
	return out
}

// Owns reports whether the given relay point belongs to this owner.
func (o *Owner) Owns(relayPointID kernel.UUID) bool {
	for _, owned := range o.relayPointIDs {
		if owned.IsEqual(relayPointID) {
			return true
		}
	}
	return false
}

// Update replaces the owner's profile fields. The relay-point list is not
// touched; membership only changes through AddRelayPoint/RemoveRelayPoint.
func (o *Owner) Update(name string, email string) error {
	if err := errors.Join(
		o.setName(name),
		o.setEmail(email),
	); err != nil {
		return err
	}

	return nil
}

// AddRelayPoint records a new relay point under this owner.
func (o *Owner) AddRelayPoint(relayPointID kernel.UUID) error {
	if err := relayPointID.Validate(); err != nil {
		return err
	}

	if o.Owns(relayPointID) {
		return ErrRelayPointAlreadyOwned
	}

	o.relayPointIDs = append(o.relayPointIDs, relayPointID)
	return nil
}

// RemoveRelayPoint detaches a relay point from this owner.
func (o *Owner) RemoveRelayPoint(relayPointID kernel.UUID) error {
	for i, owned := range o.relayPointIDs {
		if owned.IsEqual(relayPointID) {
			o.relayPointIDs = append(o.relayPointIDs[:i], o.relayPointIDs[i+1:]...)
			return nil
		}
	}
	return ErrRelayPointNotOwned
}

func (o *Owner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Owner) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	o.name = name
	return nil
}

func (o *Owner) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrEmailIsInvalid
	}

	o.email = email
	return nil
}
