package commands

import (
	"errors"

	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/relaypoint"
	"relais/internal/pkg/errs"
	"relais/internal/pkg/guard"
)

var ErrChangeRelayPointRatingCommandIsNotConstructed = errors.New(
	"ChangeRelayPointRatingCommand must be created via NewChangeRelayPointRatingCommand constructor",
)

// ChangeRelayPointRatingCommand represents a customer rating update.
type ChangeRelayPointRatingCommand struct { //nolint:recvcheck //using for validation
	relayPointID kernel.UUID
	rating       float64

	guard guard.ConstructorGuard
}

// NewChangeRelayPointRatingCommand creates a command to update the rating.
func NewChangeRelayPointRatingCommand(relayPointID kernel.UUID, rating float64) (ChangeRelayPointRatingCommand, error) {
	if err := relayPointID.Validate(); err != nil {
		return ChangeRelayPointRatingCommand{}, err
	}

	if rating < relaypoint.RatingMin || rating > relaypoint.RatingMax {
		return ChangeRelayPointRatingCommand{}, errs.NewValueIsOutOfRangeError(
			"rating", rating, relaypoint.RatingMin, relaypoint.RatingMax)
	}

	return ChangeRelayPointRatingCommand{
		relayPointID: relayPointID,
		rating:       rating,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeRelayPointRatingCommand) Validate() error {
	return c.guard.Validate(ErrChangeRelayPointRatingCommandIsNotConstructed)
}

// RelayPointID returns the identifier of the relay point to rate.
func (c ChangeRelayPointRatingCommand) RelayPointID() kernel.UUID { return c.relayPointID }

// Rating returns the new rating value.
func (c ChangeRelayPointRatingCommand) Rating() float64 { return c.rating }
