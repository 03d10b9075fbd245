package main

// @title Campus Parking API
// @version 1.0.0
// @description Parking availability service for a university campus. Exposes zone occupancy metrics, crowdsourced condition reports, access-point traffic and a best-zone route recommendation.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/Santiago062004/parking-azureWeb/docs"
	"github.com/Santiago062004/parking-azureWeb/internal/config"
	httpDelivery "github.com/Santiago062004/parking-azureWeb/internal/delivery/http"
	"github.com/Santiago062004/parking-azureWeb/internal/delivery/http/handler"
	"github.com/Santiago062004/parking-azureWeb/internal/infrastructure/tomtom"
	"github.com/Santiago062004/parking-azureWeb/internal/pkg/logger"
	"github.com/Santiago062004/parking-azureWeb/internal/repository/cache"
	"github.com/Santiago062004/parking-azureWeb/internal/repository/postgres"
	"github.com/Santiago062004/parking-azureWeb/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "parking-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Campus Parking API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("synthetic_traffic", cfg.SyntheticOnly()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	log.Info("All connections healthy")

	// 6. Initialize repositories
	zoneRepo := postgres.NewZoneRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	trafficStore := cache.NewTrafficStore(redisClient)
	trafficProvider := tomtom.NewClient(&cfg.Traffic, log)
	log.Info("Repositories initialized")

	// 7. Initialize use cases
	trafficUC := usecase.NewTrafficUseCase(trafficStore, trafficProvider, log, cfg.Traffic.CacheTTL)
	zoneUC := usecase.NewZoneUseCase(zoneRepo, reportRepo, log)
	reportUC := usecase.NewReportUseCase(reportRepo, zoneRepo, log)
	routeUC := usecase.NewRouteUseCase(zoneRepo, trafficUC, log)
	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	zoneHandler := handler.NewZoneHandler(zoneUC, log)
	reportHandler := handler.NewReportHandler(reportUC, log)
	trafficHandler := handler.NewTrafficHandler(trafficUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, log)
	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	healthCheck := func(ctx context.Context) error {
		if err := db.Health(ctx); err != nil {
			return err
		}
		return redisClient.Health(ctx)
	}

	server := httpDelivery.NewServer(
		cfg,
		log,
		zoneHandler,
		reportHandler,
		trafficHandler,
		routeHandler,
		healthCheck,
	)
	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
