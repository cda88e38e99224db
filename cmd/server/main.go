package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bobby-s-dev/swimspot/internal/api"
	"github.com/bobby-s-dev/swimspot/internal/catalog"
	"github.com/bobby-s-dev/swimspot/internal/config"
	"github.com/bobby-s-dev/swimspot/internal/forecast"
	"github.com/bobby-s-dev/swimspot/internal/models"
	"github.com/bobby-s-dev/swimspot/internal/scheduler"
	"github.com/bobby-s-dev/swimspot/internal/services"
	"github.com/bobby-s-dev/swimspot/pkg/client"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	if os.Getenv("LOG_LEVEL") == "debug" {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	logger.Info("Starting bathing location service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	clientConfig := client.ClientConfig{
		Timeout:        cfg.MetAPI.Timeout,
		MaxRetries:     cfg.Retry.MaxRetries,
		RetryDelay:     cfg.Retry.Delay,
		Multiplier:     cfg.Retry.Multiplier,
		Threshold:      cfg.CircuitBreaker.Threshold,
		BreakerTimeout: cfg.CircuitBreaker.Timeout,
		RateLimit:      cfg.MetAPI.RateLimit,
		RateBurst:      cfg.MetAPI.RateBurst,
		UserAgent:      cfg.MetAPI.UserAgent,
		APIKey:         cfg.MetAPI.APIKey,
	}

	weatherClient := client.NewLocationForecastClient(cfg.MetAPI.LocationForecastURL, clientConfig, logger)
	oceanClient := client.NewOceanForecastClient(cfg.MetAPI.OceanForecastURL, clientConfig, logger)
	alertsClient := client.NewMetAlertsClient(cfg.MetAPI.AlertsURL, clientConfig, logger)
	kartverketClient := client.NewKartverketClient(cfg.MetAPI.KartverketURL, clientConfig, logger)

	clock := forecast.SystemClock{}
	cat := catalog.Default()
	logger.Info("Catalog loaded", zap.Int("locations", cat.Len()))

	defaults := models.Criteria{
		MaxDistanceKm: cfg.Filter.DefaultMaxDistanceKm,
		TempMin:       cfg.Filter.DefaultTempMin,
		TempMax:       cfg.Filter.DefaultTempMax,
	}

	orchestrator := services.NewOrchestrator(cat, oceanClient, weatherClient, clock, cfg.Filter.FetchConcurrency, logger)
	alertService := services.NewAlertService(kartverketClient, alertsClient, logger)
	details := services.NewDetailService(orchestrator, alertService, clock, logger)
	sessions := services.NewSessionStore(cat, defaults, cfg.Session.TTL, cfg.Session.MaxSessions, clock, logger)

	// Initialize scheduler
	sweepScheduler, err := scheduler.NewScheduler(sessions, cfg.Scheduler.SweepSchedule, logger)
	if err != nil {
		logger.Fatal("Failed to initialize scheduler", zap.Error(err))
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		JSONEncoder:  json.Marshal,
		ErrorHandler: errorHandler,
	})

	// Setup handlers and routes
	handler := api.NewHandler(api.Dependencies{
		Catalog:      cat,
		Sessions:     sessions,
		Orchestrator: orchestrator,
		Details:      details,
		Scheduler:    sweepScheduler,
		Breakers: map[string]api.BreakerReporter{
			"locationforecast": weatherClient,
			"oceanforecast":    oceanClient,
			"metalerts":        alertsClient,
			"kartverket":       kartverketClient,
		},
		PrefetchTimeout: cfg.Session.PrefetchTimeout,
	}, logger)
	api.SetupRoutes(app, handler, logger)

	// Start scheduler
	sweepScheduler.Start()

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("Starting server", zap.String("address", addr))

		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sweepScheduler.Stop()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func errorHandler(c *fiber.Ctx, err error) error {
	zap.L().Error("HTTP error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))

	// Default to 500 status code
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   err.Error(),
		"success": false,
	})
}
