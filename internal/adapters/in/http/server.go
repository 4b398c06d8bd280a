// Package http exposes the relay-point parcel service over a REST API.
// It coordinates between HTTP handlers and application use cases; route
// handlers translate wire payloads into commands and queries and map
// use-case errors onto HTTP statuses.
package http

import (
	"net/http"

	"relais/internal/core/application/usecases/commands"
	"relais/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every command and query handler the server dispatches to.
type Handlers struct {
	// Command handlers
	CreateClient          commands.CreateClientCommandHandler
	UpdateClient          commands.UpdateClientCommandHandler
	DeleteClient          commands.DeleteClientCommandHandler
	CreateParcel          commands.CreateParcelCommandHandler
	ChangeParcelStatus    commands.ChangeParcelStatusCommandHandler
	DeleteParcel          commands.DeleteParcelCommandHandler
	GenerateQR            commands.GenerateQRCommandHandler
	CreateRelayPoint      commands.CreateRelayPointCommandHandler
	UpdateRelayPoint      commands.UpdateRelayPointCommandHandler
	DeleteRelayPoint      commands.DeleteRelayPointCommandHandler
	ChangeRelayPointHours commands.ChangeRelayPointHoursCommandHandler
	ChangeRelayPointNote  commands.ChangeRelayPointRatingCommandHandler
	RecomputeStock        commands.RecomputeRelayPointStockCommandHandler
	ReceiveParcel         commands.ReceiveParcelCommandHandler
	WithdrawParcel        commands.WithdrawParcelCommandHandler
	CreateOwner           commands.CreateOwnerCommandHandler
	UpdateOwner           commands.UpdateOwnerCommandHandler
	DeleteOwner           commands.DeleteOwnerCommandHandler

	// Query handlers
	GetAllClients        queries.GetAllClientsQueryHandler
	GetClient            queries.GetClientQueryHandler
	GetParcel            queries.GetParcelQueryHandler
	GetParcelByQR        queries.GetParcelByQRQueryHandler
	SearchParcels        queries.SearchParcelsQueryHandler
	GetRelayPoint        queries.GetRelayPointQueryHandler
	SearchRelayPoints    queries.SearchRelayPointsQueryHandler
	GetNearbyRelayPoints queries.GetNearbyRelayPointsQueryHandler
	GetAllOwners         queries.GetAllOwnersQueryHandler
	GetOwner             queries.GetOwnerQueryHandler
}

// Server wires route handlers to the application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")

	clients := api.Group("/clients")
	clients.GET("", s.GetClients)
	clients.POST("", s.PostClient)
	clients.GET("/:id", s.GetClientByID)
	clients.PUT("/:id", s.PutClient)
	clients.DELETE("/:id", s.DeleteClientByID)

	colis := api.Group("/colis")
	colis.GET("", s.GetParcelList)
	colis.POST("", s.PostParcel)
	colis.GET("/search", s.SearchParcelList)
	colis.GET("/search/by-status", s.SearchParcelsByStatus)
	colis.GET("/search/by-date-depot", s.SearchParcelsByDepositDate)
	colis.GET("/qr/:qrCodePath", s.GetParcelByQRPath)
	colis.GET("/:id", s.GetParcelByID)
	colis.PUT("/:id", s.PutParcelStatus)
	colis.DELETE("/:id", s.DeleteParcelByID)
	colis.POST("/:id/generate-qr", s.PostGenerateQR)
	colis.POST("/:id/update-status/:newStatus", s.PostParcelStatus)

	relais := api.Group("/points-relais")
	relais.GET("", s.GetRelayPoints)
	relais.POST("", s.PostRelayPoint)
	relais.GET("/recherche/ville/:ville", s.GetRelayPointsByCity)
	relais.GET("/recherche/code-postal/:codePostal", s.GetRelayPointsByPostalCode)
	relais.GET("/recherche/disponibles", s.GetAvailableRelayPoints)
	relais.GET("/recherche/proches", s.GetNearbyRelayPointList)
	relais.GET("/:id", s.GetRelayPointByID)
	relais.PUT("/:id", s.PutRelayPoint)
	relais.DELETE("/:id", s.DeleteRelayPointByID)
	relais.PUT("/:id/horaires", s.PutRelayPointHours)
	relais.PUT("/:id/note", s.PutRelayPointRating)
	relais.PUT("/:id/stock", s.PutRelayPointStock)
	relais.GET("/:id/colis", s.GetRelayPointParcels)
	relais.POST("/:id/colis/:colisId/reception", s.PostParcelReception)
	relais.POST("/:id/colis/:colisId/retrait", s.PostParcelWithdrawal)

	proprietaires := api.Group("/proprietaires")
	proprietaires.GET("", s.GetOwners)
	proprietaires.POST("", s.PostOwner)
	proprietaires.GET("/:id", s.GetOwnerByID)
	proprietaires.PUT("/:id", s.PutOwner)
	proprietaires.DELETE("/:id", s.DeleteOwnerByID)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
