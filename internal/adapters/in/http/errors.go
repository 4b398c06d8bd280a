package http

import (
	"errors"
	"net/http"

	"relais/internal/core/application/usecases/commands"
	"relais/internal/core/domain/model/parcel"
	"relais/internal/core/domain/model/relaypoint"
	"relais/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps a use-case error to an HTTP status and writes the JSON
// error body.
func writeError(ctx echo.Context, err error) error {
	status := statusForError(err)
	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

// statusForError classifies use-case errors:
// missing objects map to 404, rejected input and QR mismatches to 400, and
// state conflicts (capacity, assignment, ownership) to 409.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound

	case errors.Is(err, relaypoint.ErrCapacityExceeded),
		errors.Is(err, relaypoint.ErrParcelAlreadyHeld),
		errors.Is(err, relaypoint.ErrParcelNotHeld),
		errors.Is(err, commands.ErrParcelAssignedElsewhere),
		errors.Is(err, commands.ErrOwnerStillHasRelayPoints):
		return http.StatusConflict

	case errors.Is(err, parcel.ErrInvalidQRCode),
		errors.Is(err, parcel.ErrSenderAndRecipientAreSame),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// writeBadRequest reports a malformed request body or parameter.
func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeConflict reports a state conflict the generic mapping cannot see.
func writeConflict(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusConflict, Error{
		Code:    http.StatusConflict,
		Message: err.Error(),
	})
}
