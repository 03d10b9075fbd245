package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Santiago062004/parking-azureWeb/internal/config"
	"github.com/Santiago062004/parking-azureWeb/internal/infrastructure/parkingapi"
	"github.com/Santiago062004/parking-azureWeb/internal/pkg/logger"
	"github.com/Santiago062004/parking-azureWeb/internal/repository/cache"
	"github.com/Santiago062004/parking-azureWeb/internal/repository/postgres"
	redisRepo "github.com/Santiago062004/parking-azureWeb/internal/repository/redis"
	"github.com/Santiago062004/parking-azureWeb/internal/worker"
	"github.com/Santiago062004/parking-azureWeb/internal/worker/tracking"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if the tracker is enabled
	if !cfg.Tracker.Enabled {
		fmt.Println("Tracker is disabled in configuration. Set TRACKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "parking-tracker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Geofence Tracking Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Tracker.ConsumerGroup),
		zap.Duration("session_ttl", cfg.Tracker.SessionTTL),
		zap.String("api_base_url", cfg.Tracker.APIBaseURL))

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

	// 5. Initialize repositories and clients
	zoneRepo := postgres.NewZoneRepository(db)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	occupancyClient := parkingapi.NewClient(cfg.Tracker.APIBaseURL, cfg.Tracker.APITimeout, log)

	// 6. Initialize workers
	geofenceWorker := tracking.NewGeofenceWorker(
		streamRepo,
		zoneRepo,
		occupancyClient,
		cfg.Tracker.ConsumerGroup,
		cfg.Tracker.SessionTTL,
		log,
	)

	// 7. Create worker manager and register workers
	workerManager := worker.NewManager(log)
	workerManager.Register(geofenceWorker)

	// 8. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker stopped")
}
