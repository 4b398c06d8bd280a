package http

import (
	"net/http"
	"strconv"

	"relais/internal/core/application/usecases/commands"
	"relais/internal/core/application/usecases/queries"
	"relais/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetRelayPoints handles GET /api/points-relais - retrieves all relay points.
func (s *Server) GetRelayPoints(ctx echo.Context) error {
	return s.runRelayPointSearch(ctx, queries.NewSearchRelayPointsQuery("", "", false))
}

// PostRelayPoint handles POST /api/points-relais - registers a relay point
// under an existing owner.
func (s *Server) PostRelayPoint(ctx echo.Context) error {
	var req RelayPointRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(req.ProprietaireID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid owner id")
	}

	relayPointID := kernel.NewUUID()
	cmd, err := commands.NewCreateRelayPointCommand(
		relayPointID, ownerID, req.Nom, req.Latitude, req.Longitude,
		req.Rue, req.Ville, req.CodePostal, req.CapaciteMax, req.Horaires, req.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreateRelayPoint.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": relayPointID.String()})
}

// GetRelayPointsByCity handles GET /api/points-relais/recherche/ville/{ville}.
func (s *Server) GetRelayPointsByCity(ctx echo.Context) error {
	return s.runRelayPointSearch(ctx,
		queries.NewSearchRelayPointsQuery(ctx.Param("ville"), "", false))
}

// GetRelayPointsByPostalCode handles GET /api/points-relais/recherche/code-postal/{codePostal}.
func (s *Server) GetRelayPointsByPostalCode(ctx echo.Context) error {
	return s.runRelayPointSearch(ctx,
		queries.NewSearchRelayPointsQuery("", ctx.Param("codePostal"), false))
}

// GetAvailableRelayPoints handles GET /api/points-relais/recherche/disponibles -
// relay points with remaining capacity.
func (s *Server) GetAvailableRelayPoints(ctx echo.Context) error {
	return s.runRelayPointSearch(ctx, queries.NewSearchRelayPointsQuery("", "", true))
}

// GetNearbyRelayPointList handles GET /api/points-relais/recherche/proches -
// relay points within a radius of a position, closest first. Query parameters:
// latitude, longitude, rayonKm (optional, defaults to 5 km).
func (s *Server) GetNearbyRelayPointList(ctx echo.Context) error {
	latitude, err := strconv.ParseFloat(ctx.QueryParam("latitude"), 64)
	if err != nil {
		return writeBadRequest(ctx, "latitude query parameter is required and must be a number")
	}

	longitude, err := strconv.ParseFloat(ctx.QueryParam("longitude"), 64)
	if err != nil {
		return writeBadRequest(ctx, "longitude query parameter is required and must be a number")
	}

	radiusKm := queries.DefaultSearchRadiusKm
	if radiusValue := ctx.QueryParam("rayonKm"); radiusValue != "" {
		radiusKm, err = strconv.ParseFloat(radiusValue, 64)
		if err != nil {
			return writeBadRequest(ctx, "rayonKm must be a number")
		}
	}

	query, err := queries.NewGetNearbyRelayPointsQuery(latitude, longitude, radiusKm)
	if err != nil {
		return writeError(ctx, err)
	}

	nearby, err := s.handlers.GetNearbyRelayPoints.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]RelayPointJSON, len(nearby))
	for i, rp := range nearby {
		item := toRelayPointJSON(rp.RelayPointResponse)
		distance := rp.DistanceKm
		item.DistanceKm = &distance
		response[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRelayPointByID handles GET /api/points-relais/{id} - retrieves one relay
// point along with the ids of the parcels it currently holds.
func (s *Server) GetRelayPointByID(ctx echo.Context) error {
	relayPointID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid relay point id")
	}

	query, err := queries.NewGetRelayPointQuery(relayPointID)
	if err != nil {
		return writeError(ctx, err)
	}

	relayResp, err := s.handlers.GetRelayPoint.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := toRelayPointJSON(relayResp.RelayPointResponse)
	response.ColisIDs = make([]string, 0, len(relayResp.HeldParcelIDs))
	for _, id := range relayResp.HeldParcelIDs {
		response.ColisIDs = append(response.ColisIDs, id.String())
	}

	return ctx.JSON(http.StatusOK, response)
}

// PutRelayPoint handles PUT /api/points-relais/{id} - replaces the relay
// point's profile. Ownership does not change on update.
func (s *Server) PutRelayPoint(ctx echo.Context) error {
	relayPointID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid relay point id")
	}

	var req RelayPointRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateRelayPointCommand(
		relayPointID, req.Nom, req.Latitude, req.Longitude,
		req.Rue, req.Ville, req.CodePostal, req.CapaciteMax, req.Horaires, req.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.UpdateRelayPoint.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteRelayPointByID handles DELETE /api/points-relais/{id} - removes a
// relay point, detaching any parcels it still holds.
func (s *Server) DeleteRelayPointByID(ctx echo.Context) error {
	relayPointID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid relay point id")
	}

	cmd, err := commands.NewDeleteRelayPointCommand(relayPointID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteRelayPoint.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PutRelayPointHours handles PUT /api/points-relais/{id}/horaires - changes
// the opening hours and notifies clients expecting a parcel there.
func (s *Server) PutRelayPointHours(ctx echo.Context) error {
	relayPointID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid relay point id")
	}

	var req HoursRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeRelayPointHoursCommand(relayPointID, req.Horaires)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.ChangeRelayPointHours.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PutRelayPointRating handles PUT /api/points-relais/{id}/note - records a
// service rating between 0 and 5.
func (s *Server) PutRelayPointRating(ctx echo.Context) error {
	relayPointID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid relay point id")
	}

	var req RatingRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeRelayPointRatingCommand(relayPointID, req.Note)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.ChangeRelayPointNote.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PutRelayPointStock handles PUT /api/points-relais/{id}/stock - recomputes
// the stock counter from the parcels actually held.
func (s *Server) PutRelayPointStock(ctx echo.Context) error {
	relayPointID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid relay point id")
	}

	cmd, err := commands.NewRecomputeRelayPointStockCommand(relayPointID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.RecomputeStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRelayPointParcels handles GET /api/points-relais/{id}/colis - lists the
// parcels assigned to a relay point.
func (s *Server) GetRelayPointParcels(ctx echo.Context) error {
	relayPointID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid relay point id")
	}

	return s.runParcelSearch(ctx, queries.SearchParcelsFilter{RelayPointID: &relayPointID})
}

// PostParcelReception handles POST /api/points-relais/{id}/colis/{colisId}/reception -
// records a parcel arriving at the relay point.
func (s *Server) PostParcelReception(ctx echo.Context) error {
	relayPointID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid relay point id")
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("colisId"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid parcel id")
	}

	cmd, err := commands.NewReceiveParcelCommand(relayPointID, parcelID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.ReceiveParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PostParcelWithdrawal handles POST /api/points-relais/{id}/colis/{colisId}/retrait -
// hands a parcel to its recipient after checking the QR credential passed in
// the codeQR query parameter.
func (s *Server) PostParcelWithdrawal(ctx echo.Context) error {
	relayPointID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid relay point id")
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("colisId"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid parcel id")
	}

	cmd, err := commands.NewWithdrawParcelCommand(relayPointID, parcelID, ctx.QueryParam("codeQR"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.WithdrawParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) runRelayPointSearch(ctx echo.Context, query queries.SearchRelayPointsQuery) error {
	relayPoints, err := s.handlers.SearchRelayPoints.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]RelayPointJSON, len(relayPoints))
	for i, rp := range relayPoints {
		response[i] = toRelayPointJSON(rp)
	}

	return ctx.JSON(http.StatusOK, response)
}
