package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"relais/cmd"
	internalhttp "relais/internal/adapters/in/http"
	"relais/internal/adapters/out/postgres"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config, err := cmd.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := postgres.Migrate(gormDB); err != nil {
		logger.Error("failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(config, gormDB, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := buildEcho(&root, config)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil {
			logger.Info("http server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
}

func buildEcho(root *cmd.CompositionRoot, config cmd.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	// QR code images are served from the directory the generator writes to.
	e.Static("/qr-codes", config.QRCodeDir)

	server := internalhttp.NewServer(internalhttp.Handlers{
		CreateClient:          root.CreateCreateClientCommandHandler(),
		UpdateClient:          root.CreateUpdateClientCommandHandler(),
		DeleteClient:          root.CreateDeleteClientCommandHandler(),
		CreateParcel:          root.CreateCreateParcelCommandHandler(),
		ChangeParcelStatus:    root.CreateChangeParcelStatusCommandHandler(),
		DeleteParcel:          root.CreateDeleteParcelCommandHandler(),
		GenerateQR:            root.CreateGenerateQRCommandHandler(),
		CreateRelayPoint:      root.CreateCreateRelayPointCommandHandler(),
		UpdateRelayPoint:      root.CreateUpdateRelayPointCommandHandler(),
		DeleteRelayPoint:      root.CreateDeleteRelayPointCommandHandler(),
		ChangeRelayPointHours: root.CreateChangeRelayPointHoursCommandHandler(),
		ChangeRelayPointNote:  root.CreateChangeRelayPointRatingCommandHandler(),
		RecomputeStock:        root.CreateRecomputeRelayPointStockCommandHandler(),
		ReceiveParcel:         root.CreateReceiveParcelCommandHandler(),
		WithdrawParcel:        root.CreateWithdrawParcelCommandHandler(),
		CreateOwner:           root.CreateCreateOwnerCommandHandler(),
		UpdateOwner:           root.CreateUpdateOwnerCommandHandler(),
		DeleteOwner:           root.CreateDeleteOwnerCommandHandler(),

		GetAllClients:        root.CreateGetAllClientsQueryHandler(),
		GetClient:            root.CreateGetClientQueryHandler(),
		GetParcel:            root.CreateGetParcelQueryHandler(),
		GetParcelByQR:        root.CreateGetParcelByQRQueryHandler(),
		SearchParcels:        root.CreateSearchParcelsQueryHandler(),
		GetRelayPoint:        root.CreateGetRelayPointQueryHandler(),
		SearchRelayPoints:    root.CreateSearchRelayPointsQueryHandler(),
		GetNearbyRelayPoints: root.CreateGetNearbyRelayPointsQueryHandler(),
		GetAllOwners:         root.CreateGetAllOwnersQueryHandler(),
		GetOwner:             root.CreateGetOwnerQueryHandler(),
	})
	server.RegisterRoutes(e)

	return e
}
