package parcel

import (
	"fmt"

	"relais/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
// It implements a state machine with a fixed transition table; every status
// mutation in the system funnels through TransitionTo so illegal jumps are
// rejected in one place.
//
// State transitions:
//
//	Pending ──┬──> InTransit ──> Received ──┬──> Delivered ──> Withdrawn
//	          │                     ▲       │                      ▲
//	          └─────────────────────┘       └──────────────────────┘
//
// Withdrawn is terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending (EN_ATTENTE) is the initial status: the parcel is
	// registered but not yet dropped at a relay point.
	StatusPending

	// StatusInTransit (EN_TRANSIT) marks a parcel on its way to the relay
	// point. The step is optional; Pending may move straight to Received.
	StatusInTransit

	// StatusReceived (RECU) marks a parcel held at its relay point,
	// available for pickup.
	StatusReceived

	// StatusDelivered (LIVRE) marks a parcel handed over outside the QR
	// pickup flow. The step is optional on the way to Withdrawn.
	StatusDelivered

	// StatusWithdrawn (RETIRE) marks a parcel collected by its recipient.
	// This is the terminal state.
	StatusWithdrawn
)

// statusStrings maps each status to its canonical wire name.
// The wire names match the REST API's statut values.
func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusPending:   "EN_ATTENTE",
		StatusInTransit: "EN_TRANSIT",
		StatusReceived:  "RECU",
		StatusDelivered: "LIVRE",
		StatusWithdrawn: "RETIRE",
	}
}

// validStatusStrings excludes StatusUnknown to support validation.
func validStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "EN_ATTENTE",
		StatusInTransit: "EN_TRANSIT",
		StatusReceived:  "RECU",
		StatusDelivered: "LIVRE",
		StatusWithdrawn: "RETIRE",
	}
}

// StatusFromString parses a canonical wire name into a Status.
// Returns an error for unknown names.
func StatusFromString(s string) (Status, error) {
	for status, name := range validStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks the Status is one of the five valid lifecycle states.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical wire name of the status.
// Implements fmt.Stringer; safe on any Status value.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusWithdrawn
}

// CanTransitionTo reports whether moving from s to next is legal.
//
// The table:
//   - Pending   -> InTransit, Received
//   - InTransit -> Received
//   - Received  -> Delivered, Withdrawn
//   - Delivered -> Withdrawn
//   - Withdrawn -> (none)
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusInTransit || next == StatusReceived
	case StatusInTransit:
		return next == StatusReceived
	case StatusReceived:
		return next == StatusDelivered || next == StatusWithdrawn
	case StatusDelivered:
		return next == StatusWithdrawn
	case StatusWithdrawn, StatusUnknown:
		return false
	default:
		return false
	}
}

// TransitionTo returns next when the transition is legal, otherwise an error.
// This is the single entry point for status mutation.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}

	if !s.CanTransitionTo(next) {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot transition from %s to %s", s.String(), next.String()),
		)
	}

	return next, nil
}
