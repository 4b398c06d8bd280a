package http

import (
	"net/http"

	"relais/internal/core/application/usecases/commands"
	"relais/internal/core/application/usecases/queries"
	"relais/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetOwners handles GET /api/proprietaires - retrieves all owners.
func (s *Server) GetOwners(ctx echo.Context) error {
	query := queries.NewGetAllOwnersQuery()

	owners, err := s.handlers.GetAllOwners.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OwnerJSON, len(owners))
	for i, o := range owners {
		response[i] = toOwnerJSON(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// PostOwner handles POST /api/proprietaires - registers a relay-point owner.
func (s *Server) PostOwner(ctx echo.Context) error {
	var req OwnerRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	ownerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOwnerCommand(ownerID, req.Nom, req.Email)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreateOwner.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": ownerID.String()})
}

// GetOwnerByID handles GET /api/proprietaires/{id} - retrieves one owner.
func (s *Server) GetOwnerByID(ctx echo.Context) error {
	ownerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid owner id")
	}

	query, err := queries.NewGetOwnerQuery(ownerID)
	if err != nil {
		return writeError(ctx, err)
	}

	ownerResp, err := s.handlers.GetOwner.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOwnerJSON(ownerResp))
}

// PutOwner handles PUT /api/proprietaires/{id} - replaces an owner's profile.
func (s *Server) PutOwner(ctx echo.Context) error {
	ownerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid owner id")
	}

	var req OwnerRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOwnerCommand(ownerID, req.Nom, req.Email)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.UpdateOwner.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOwnerByID handles DELETE /api/proprietaires/{id} - removes an owner.
// Owners still holding relay points cannot be deleted.
func (s *Server) DeleteOwnerByID(ctx echo.Context) error {
	ownerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid owner id")
	}

	cmd, err := commands.NewDeleteOwnerCommand(ownerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteOwner.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
