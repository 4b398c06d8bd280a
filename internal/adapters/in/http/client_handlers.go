package http

import (
	"net/http"

	"relais/internal/core/application/usecases/commands"
	"relais/internal/core/application/usecases/queries"
	"relais/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetClients handles GET /api/clients - retrieves all clients.
func (s *Server) GetClients(ctx echo.Context) error {
	query := queries.NewGetAllClientsQuery()

	clients, err := s.handlers.GetAllClients.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ClientJSON, len(clients))
	for i, c := range clients {
		response[i] = toClientJSON(c)
	}

	return ctx.JSON(http.StatusOK, response)
}

// PostClient handles POST /api/clients - registers a new client.
func (s *Server) PostClient(ctx echo.Context) error {
	var req ClientRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	clientID := kernel.NewUUID()
	cmd, err := commands.NewCreateClientCommand(
		clientID, req.Nom, req.Prenom, req.Email, req.Telephone, req.MotDePasse, req.Adresse)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreateClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": clientID.String()})
}

// GetClientByID handles GET /api/clients/{id} - retrieves one client.
func (s *Server) GetClientByID(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid client id")
	}

	query, err := queries.NewGetClientQuery(clientID)
	if err != nil {
		return writeError(ctx, err)
	}

	clientResp, err := s.handlers.GetClient.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toClientJSON(clientResp))
}

// PutClient handles PUT /api/clients/{id} - replaces a client's profile.
func (s *Server) PutClient(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid client id")
	}

	var req ClientRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateClientCommand(
		clientID, req.Nom, req.Prenom, req.Email, req.Telephone, req.MotDePasse, req.Adresse)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.UpdateClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteClientByID handles DELETE /api/clients/{id} - removes a client.
func (s *Server) DeleteClientByID(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid client id")
	}

	cmd, err := commands.NewDeleteClientCommand(clientID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
