package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/Santiago062004/parking-azureWeb/internal/config"
	"github.com/Santiago062004/parking-azureWeb/internal/delivery/http/handler"
	"github.com/Santiago062004/parking-azureWeb/internal/delivery/http/middleware"
)

// Server is the Fiber HTTP server for the parking API.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	zoneHandler    *handler.ZoneHandler
	reportHandler  *handler.ReportHandler
	trafficHandler *handler.TrafficHandler
	routeHandler   *handler.RouteHandler

	healthCheck func(ctx context.Context) error
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	zoneHandler *handler.ZoneHandler,
	reportHandler *handler.ReportHandler,
	trafficHandler *handler.TrafficHandler,
	routeHandler *handler.RouteHandler,
	healthCheck func(ctx context.Context) error,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Campus Parking API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		zoneHandler:    zoneHandler,
		reportHandler:  reportHandler,
		trafficHandler: trafficHandler,
		routeHandler:   routeHandler,
		healthCheck:    healthCheck,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		status := "healthy"
		code := fiber.StatusOK
		if s.healthCheck != nil {
			if err := s.healthCheck(c.Context()); err != nil {
				status = "degraded"
				code = fiber.StatusServiceUnavailable
			}
		}
		return c.Status(code).JSON(fiber.Map{
			"status": status,
			"time":   time.Now(),
		})
	})

	// Zone routes
	api.Get("/zones", s.zoneHandler.List)
	api.Get("/zones/:id", s.zoneHandler.Get)
	api.Patch("/zones/:id", s.zoneHandler.SetOccupancy)
	api.Post("/zones/:id/occupancy/adjust", s.zoneHandler.AdjustOccupancy)

	// Report routes
	api.Get("/reports", s.reportHandler.ListActive)
	api.Get("/reports/feed", s.reportHandler.Feed)
	api.Post("/reports", s.reportHandler.Submit)
	api.Delete("/reports/:id", s.reportHandler.Deactivate)

	// Traffic routes
	api.Get("/traffic", s.trafficHandler.GetAll)
	api.Post("/traffic/refresh", s.trafficHandler.Refresh)

	// Route recommendation
	api.Get("/route/best", s.routeHandler.Best)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
