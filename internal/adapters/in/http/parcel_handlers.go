package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"relais/internal/core/application/usecases/commands"
	"relais/internal/core/application/usecases/queries"
	"relais/internal/core/domain/model/kernel"
	"relais/internal/core/domain/model/parcel"
	"relais/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const depositDateLayout = "2006-01-02"

// PostParcel handles POST /api/colis - registers a new parcel.
func (s *Server) PostParcel(ctx echo.Context) error {
	var req ParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	senderID, err := kernel.UUIDFromString(req.ExpediteurID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid sender id")
	}

	recipientID, err := kernel.UUIDFromString(req.DestinataireID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid recipient id")
	}

	var relayPointID *kernel.UUID
	if req.PointRelaisID != "" {
		id, idErr := kernel.UUIDFromString(req.PointRelaisID)
		if idErr != nil {
			return writeBadRequest(ctx, "Invalid relay point id")
		}
		relayPointID = &id
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(
		parcelID, senderID, recipientID, relayPointID, req.Description, req.Poids, req.Dimensions)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreateParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": parcelID.String()})
}

// GetParcelList handles GET /api/colis - retrieves all parcels.
func (s *Server) GetParcelList(ctx echo.Context) error {
	return s.runParcelSearch(ctx, queries.SearchParcelsFilter{})
}

// SearchParcelList handles GET /api/colis/search - filtered parcel search.
// Supported query parameters: statut, senderId, recipientId, pointRelaisId,
// dateDepot (YYYY-MM-DD). All filters combine with AND.
func (s *Server) SearchParcelList(ctx echo.Context) error {
	filter, err := parcelFilterFromQuery(ctx)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	return s.runParcelSearch(ctx, filter)
}

// SearchParcelsByStatus handles GET /api/colis/search/by-status?statut=RECU.
func (s *Server) SearchParcelsByStatus(ctx echo.Context) error {
	statusValue := ctx.QueryParam("statut")
	if statusValue == "" {
		return writeBadRequest(ctx, "statut query parameter is required")
	}

	status, err := parcel.StatusFromString(statusValue)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.runParcelSearch(ctx, queries.SearchParcelsFilter{Status: &status})
}

// SearchParcelsByDepositDate handles GET /api/colis/search/by-date-depot?date=2026-08-14.
func (s *Server) SearchParcelsByDepositDate(ctx echo.Context) error {
	dateValue := ctx.QueryParam("date")
	if dateValue == "" {
		return writeBadRequest(ctx, "date query parameter is required")
	}

	day, err := time.Parse(depositDateLayout, dateValue)
	if err != nil {
		return writeBadRequest(ctx, "date must be formatted as YYYY-MM-DD")
	}

	return s.runParcelSearch(ctx, queries.SearchParcelsFilter{DepositedOn: &day})
}

// GetParcelByQRPath handles GET /api/colis/qr/{qrCodePath} - looks up the
// parcel holding a pickup credential. The credential may be passed as the
// bare image file name; the serving prefix is added back before lookup.
func (s *Server) GetParcelByQRPath(ctx echo.Context) error {
	qrCodePath := ctx.Param("qrCodePath")
	if !strings.HasPrefix(qrCodePath, "/") {
		qrCodePath = "/qr-codes/" + qrCodePath
	}

	query, err := queries.NewGetParcelByQRQuery(qrCodePath)
	if err != nil {
		return writeError(ctx, err)
	}

	parcelResp, err := s.handlers.GetParcelByQR.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelJSON(parcelResp))
}

// GetParcelByID handles GET /api/colis/{id} - retrieves one parcel.
func (s *Server) GetParcelByID(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid parcel id")
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return writeError(ctx, err)
	}

	parcelResp, err := s.handlers.GetParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelJSON(parcelResp))
}

// PutParcelStatus handles PUT /api/colis/{id}?colisStatus=EN_TRANSIT -
// transitions a parcel to the requested lifecycle status.
func (s *Server) PutParcelStatus(ctx echo.Context) error {
	return s.changeParcelStatus(ctx, ctx.QueryParam("colisStatus"))
}

// PostParcelStatus handles POST /api/colis/{id}/update-status/{newStatus}.
func (s *Server) PostParcelStatus(ctx echo.Context) error {
	return s.changeParcelStatus(ctx, ctx.Param("newStatus"))
}

// DeleteParcelByID handles DELETE /api/colis/{id} - removes a parcel.
func (s *Server) DeleteParcelByID(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid parcel id")
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PostGenerateQR handles POST /api/colis/{id}/generate-qr - renders the
// pickup credential and stores its path on the parcel.
func (s *Server) PostGenerateQR(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid parcel id")
	}

	cmd, err := commands.NewGenerateQRCommand(parcelID)
	if err != nil {
		return writeError(ctx, err)
	}

	qrCodePath, err := s.handlers.GenerateQR.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"qrCodePath": qrCodePath})
}

func (s *Server) changeParcelStatus(ctx echo.Context, statusValue string) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid parcel id")
	}

	if statusValue == "" {
		return writeBadRequest(ctx, "Target status is required")
	}

	status, err := parcel.StatusFromString(statusValue)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeParcelStatusCommand(parcelID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.ChangeParcelStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		// The target status itself validated above, so an invalid-value
		// error from the handler means an illegal lifecycle transition.
		if errors.Is(err, errs.ErrValueIsInvalid) {
			return writeConflict(ctx, err)
		}
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) runParcelSearch(ctx echo.Context, filter queries.SearchParcelsFilter) error {
	query, err := queries.NewSearchParcelsQuery(filter)
	if err != nil {
		return writeError(ctx, err)
	}

	parcels, err := s.handlers.SearchParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ParcelJSON, len(parcels))
	for i, p := range parcels {
		response[i] = toParcelJSON(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

func parcelFilterFromQuery(ctx echo.Context) (queries.SearchParcelsFilter, error) {
	var filter queries.SearchParcelsFilter

	if statusValue := ctx.QueryParam("statut"); statusValue != "" {
		status, err := parcel.StatusFromString(statusValue)
		if err != nil {
			return queries.SearchParcelsFilter{}, err
		}
		filter.Status = &status
	}

	for param, target := range map[string]**kernel.UUID{
		"senderId":      &filter.SenderID,
		"recipientId":   &filter.RecipientID,
		"pointRelaisId": &filter.RelayPointID,
	} {
		value := ctx.QueryParam(param)
		if value == "" {
			continue
		}

		id, err := kernel.UUIDFromString(value)
		if err != nil {
			return queries.SearchParcelsFilter{}, errors.New(param + " is not a valid id")
		}
		*target = &id
	}

	if dateValue := ctx.QueryParam("dateDepot"); dateValue != "" {
		day, err := time.Parse(depositDateLayout, dateValue)
		if err != nil {
			return queries.SearchParcelsFilter{}, errors.New("dateDepot must be formatted as YYYY-MM-DD")
		}
		filter.DepositedOn = &day
	}

	return filter, nil
}
