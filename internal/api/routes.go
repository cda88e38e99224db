package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

func SetupRoutes(app *fiber.App, handler *Handler, log *zap.Logger) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))

	// Request log, skipped for health probes
	app.Use(logger.New(logger.Config{
		Format:     "${time} ${pid} ${locals:requestid} ${status} - ${method} ${path} ${latency}\n",
		TimeFormat: time.RFC3339,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/api/v1/health"
		},
	}))

	log.Debug("Registering routes", zap.String("prefix", "/api/v1"))

	api := app.Group("/api/v1")

	api.Get("/health", handler.GetHealth)
	api.Get("/metrics", handler.GetMetrics)
	api.Get("/facilities", handler.GetFacilities)

	// Catalog
	locations := api.Group("/locations")
	locations.Get("/", handler.GetLocations)
	locations.Get("/:name", handler.GetLocation)
	locations.Get("/:name/forecast", handler.GetLocationForecast)
	locations.Get("/:name/alerts", handler.GetLocationAlerts)

	api.Get("/map/markers", handler.GetMarkers)

	// Sessions
	sessions := api.Group("/sessions")
	sessions.Post("/", handler.CreateSession)
	sessions.Get("/:id", handler.GetSession)
	sessions.Delete("/:id", handler.DeleteSession)
	sessions.Put("/:id/position", handler.SetPosition)
	sessions.Put("/:id/connectivity", handler.SetConnectivity)
	sessions.Put("/:id/hour", handler.SetHour)
	sessions.Post("/:id/filter", handler.FilterLocations)
	sessions.Get("/:id/locations", handler.GetSessionLocations)
	sessions.Get("/:id/previews", handler.GetPreviews)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
			"path":  c.Path(),
		})
	})
}
