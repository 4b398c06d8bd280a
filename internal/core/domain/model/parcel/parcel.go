package parcel

import (
	"errors"
	"fmt"
	"time"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/pkg/errs"
	"relais/internal/pkg/guard"
)

// Domain errors for parcel operations.
var (
	// ErrParcelIsNotConstructed is returned when using an improperly initialized Parcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
	// ErrInvalidQRCode is returned when a pickup credential does not match the stored QR path.
	ErrInvalidQRCode = errors.New("QR code is invalid")
	// ErrSenderAndRecipientAreSame is returned when both parties reference the same client.
	ErrSenderAndRecipientAreSame = errors.New("sender and recipient must be distinct clients")
	// ErrQRCodePathIsRequired is returned when assigning an empty QR path.
	ErrQRCodePathIsRequired = errs.NewValueIsRequiredError("qr code path")
)

// Parcel is the aggregate root for a package routed through a relay point.
// It carries lifecycle state (see Status), sender/recipient identity, the
// optional relay-point assignment and the QR pickup credential.
//
// Invariants:
//   - sender and recipient are valid, distinct client identifiers
//   - weight is strictly positive
//   - status only changes through the transition table
//   - the QR path is set through AssignQRCodePath only
type Parcel struct {
	id          kernel.UUID
	senderID    kernel.UUID
	recipientID kernel.UUID

	// relayPointID is the assigned relay point (nil until assignment)
	relayPointID *kernel.UUID

	description string
	weight      float64
	dimensions  float64

	status Status

	depositedAt *time.Time
	withdrawnAt *time.Time
	updatedAt   time.Time

	// qrCodePath is the opaque pickup credential ("/qr-codes/QRCode_{id}.png")
	qrCodePath string

	guard guard.ConstructorGuard
}

// NewParcel creates a Parcel in Pending status with validated fields.
// Sender and recipient must be valid and distinct; weight must be > 0.
func NewParcel(
	id kernel.UUID,
	senderID kernel.UUID,
	recipientID kernel.UUID,
	description string,
	weight float64,
	dimensions float64,
) (*Parcel, error) {
	p := &Parcel{
		status:    StatusPending,
		updatedAt: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setParties(senderID, recipientID),
		p.setWeight(weight),
	); err != nil {
		return nil, err
	}

	p.description = description
	p.dimensions = dimensions
	return p, nil
}

// RestoreParcel reconstructs a Parcel from persistent storage, preserving its
// lifecycle state, timestamps and credential exactly as persisted.
func RestoreParcel(
	id kernel.UUID,
	senderID kernel.UUID,
	recipientID kernel.UUID,
	relayPointID *kernel.UUID,
	description string,
	weight float64,
	dimensions float64,
	status Status,
	depositedAt *time.Time,
	withdrawnAt *time.Time,
	updatedAt time.Time,
	qrCodePath string,
) (*Parcel, error) {
	p := &Parcel{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setParties(senderID, recipientID),
		p.setWeight(weight),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if relayPointID != nil {
		if err := relayPointID.Validate(); err != nil {
			return nil, err
		}
		id := *relayPointID
		p.relayPointID = &id
	}

	p.description = description
	p.dimensions = dimensions
	p.status = status
	p.depositedAt = depositedAt
	p.withdrawnAt = withdrawnAt
	p.updatedAt = updatedAt
	p.qrCodePath = qrCodePath
	return p, nil
}

// Validate ensures the Parcel was built through a constructor.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by identifier.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID { return p.id }

// SenderID returns the sending client's identifier.
func (p *Parcel) SenderID() kernel.UUID { return p.senderID }

// RecipientID returns the receiving client's identifier.
func (p *Parcel) RecipientID() kernel.UUID { return p.recipientID }

// RelayPointID returns the assigned relay point, or nil before assignment.
func (p *Parcel) RelayPointID() *kernel.UUID { return p.relayPointID }

// Description returns the free-text content description.
func (p *Parcel) Description() string { return p.description }

// Weight returns the parcel weight in kilograms.
func (p *Parcel) Weight() float64 { return p.weight }

// Dimensions returns the declared parcel dimensions.
func (p *Parcel) Dimensions() float64 { return p.dimensions }

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status { return p.status }

// DepositedAt returns the deposit timestamp, or nil before reception.
func (p *Parcel) DepositedAt() *time.Time { return p.depositedAt }

// WithdrawnAt returns the withdrawal timestamp, or nil before pickup.
func (p *Parcel) WithdrawnAt() *time.Time { return p.withdrawnAt }

// UpdatedAt returns the last mutation timestamp.
func (p *Parcel) UpdatedAt() time.Time { return p.updatedAt }

// QRCodePath returns the stored pickup credential, empty until generated.
func (p *Parcel) QRCodePath() string { return p.qrCodePath }

// AssignRelayPoint records the relay point the parcel is routed to.
// Reassignment is allowed while the parcel has not been received.
func (p *Parcel) AssignRelayPoint(relayPointID kernel.UUID) error {
	if err := relayPointID.Validate(); err != nil {
		return err
	}

	if p.status != StatusPending && p.status != StatusInTransit {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot reassign a parcel in %s status", p.status.String()),
		)
	}

	p.relayPointID = &relayPointID
	p.touch()
	return nil
}

// AssignQRCodePath stores the generated pickup credential.
// Regeneration replaces the previous credential.
func (p *Parcel) AssignQRCodePath(path string) error {
	if path == "" {
		return ErrQRCodePathIsRequired
	}

	p.qrCodePath = path
	p.touch()
	return nil
}

// VerifyQRCode reports whether the provided credential matches the stored QR
// path. An empty stored path never matches.
func (p *Parcel) VerifyQRCode(code string) bool {
	return p.qrCodePath != "" && p.qrCodePath == code
}

// MarkReceived transitions the parcel to Received and stamps the deposit time.
func (p *Parcel) MarkReceived() error {
	newStatus, err := p.status.TransitionTo(StatusReceived)
	if err != nil {
		return err
	}

	now := time.Now()
	p.status = newStatus
	p.depositedAt = &now
	p.updatedAt = now
	return nil
}

// MarkDelivered transitions the parcel to Delivered.
func (p *Parcel) MarkDelivered() error {
	newStatus, err := p.status.TransitionTo(StatusDelivered)
	if err != nil {
		return err
	}

	p.status = newStatus
	p.touch()
	return nil
}

// MarkWithdrawn transitions the parcel to Withdrawn after verifying the
// pickup credential. Returns ErrInvalidQRCode on mismatch; the transition
// table rejects a second withdrawal since Withdrawn is terminal.
func (p *Parcel) MarkWithdrawn(code string) error {
	if !p.VerifyQRCode(code) {
		return ErrInvalidQRCode
	}

	newStatus, err := p.status.TransitionTo(StatusWithdrawn)
	if err != nil {
		return err
	}

	now := time.Now()
	p.status = newStatus
	p.withdrawnAt = &now
	p.updatedAt = now
	return nil
}

// ChangeStatus performs a guarded transition to an arbitrary status.
// Used by the administrative status endpoint; timestamps follow the target
// state the same way the dedicated Mark* methods do.
func (p *Parcel) ChangeStatus(next Status) error {
	newStatus, err := p.status.TransitionTo(next)
	if err != nil {
		return err
	}

	now := time.Now()
	p.status = newStatus
	switch newStatus {
	case StatusReceived:
		if p.depositedAt == nil {
			p.depositedAt = &now
		}
	case StatusWithdrawn:
		if p.withdrawnAt == nil {
			p.withdrawnAt = &now
		}
	case StatusUnknown, StatusPending, StatusInTransit, StatusDelivered:
	}
	p.updatedAt = now
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setParties(senderID kernel.UUID, recipientID kernel.UUID) error {
	if err := errors.Join(senderID.Validate(), recipientID.Validate()); err != nil {
		return err
	}
	if senderID.IsEqual(recipientID) {
		return ErrSenderAndRecipientAreSame
	}

	p.senderID = senderID
	p.recipientID = recipientID
	return nil
}

func (p *Parcel) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight is invalid", fmt.Errorf("%f is not greater than 0", weight))
	}
	p.weight = weight
	return nil
}

func (p *Parcel) touch() {
	p.updatedAt = time.Now()
}
