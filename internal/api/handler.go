package api

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/bobby-s-dev/swimspot/internal/catalog"
	"github.com/bobby-s-dev/swimspot/internal/models"
	"github.com/bobby-s-dev/swimspot/internal/services"
	"github.com/bobby-s-dev/swimspot/pkg/client"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type StatusReporter interface {
	GetStatus() map[string]interface{}
}

type BreakerReporter interface {
	BreakerState() string
}

// Dependencies wires the handler to the service layer
type Dependencies struct {
	Catalog         *catalog.Catalog
	Sessions        *services.SessionStore
	Orchestrator    *services.Orchestrator
	Details         *services.DetailService
	Scheduler       StatusReporter
	Breakers        map[string]BreakerReporter
	PrefetchTimeout time.Duration
}

type Handler struct {
	deps   Dependencies
	logger *zap.Logger
}

func NewHandler(deps Dependencies, logger *zap.Logger) *Handler {
	return &Handler{
		deps:   deps,
		logger: logger,
	}
}

type positionRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type createSessionRequest struct {
	Position  *positionRequest `json:"position"`
	Connected bool             `json:"connected"`
	Hour      *int             `json:"hour"`
}

type connectivityRequest struct {
	Connected bool `json:"connected"`
}

type hourRequest struct {
	Hour *int `json:"hour"`
}

// filterRequest fields left out keep the session's current value
type filterRequest struct {
	MaxDistanceKm *float64 `json:"max_distance_km"`
	Facilities    []string `json:"facilities"`
	TempMin       *int     `json:"temp_min"`
	TempMax       *int     `json:"temp_max"`
}

func errorStatus(err error, fallback int) int {
	switch {
	case errors.Is(err, services.ErrLocationNotFound), errors.Is(err, services.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrInvalidCriteria),
		errors.Is(err, services.ErrInvalidPosition),
		errors.Is(err, services.ErrInvalidHour):
		return fiber.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout
	case errors.Is(err, client.ErrUpstream):
		return fiber.StatusBadGateway
	default:
		return fallback
	}
}

func (h *Handler) fail(c *fiber.Ctx, err error, message string, fallback int) error {
	code := errorStatus(err, fallback)
	if code >= fiber.StatusInternalServerError {
		h.logger.Error(message,
			zap.String("path", c.Path()),
			zap.Error(err))
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   message,
		"details": err.Error(),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

func pathParam(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func (h *Handler) session(c *fiber.Ctx) (*services.Session, error) {
	return h.deps.Sessions.Get(pathParam(c, "id"))
}

// prefetch warms a session's forecasts in the background.
func (h *Handler) prefetch(sess *services.Session) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.deps.PrefetchTimeout)
		defer cancel()

		if err := h.deps.Orchestrator.Prefetch(ctx, sess); err != nil {
			h.logger.Warn("Prefetch did not finish",
				zap.String("session", sess.ID),
				zap.Error(err))
		}
	}()
}

// GetHealth handles GET /api/v1/health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	breakers := make(map[string]string, len(h.deps.Breakers))
	for name, b := range h.deps.Breakers {
		breakers[name] = b.BreakerState()
	}

	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    time.Since(startTime).String(),
		"sessions":  h.deps.Sessions.Len(),
		"locations": h.deps.Catalog.Len(),
		"breakers":  breakers,
	})
}

// GetMetrics handles GET /api/v1/metrics
func (h *Handler) GetMetrics(c *fiber.Ctx) error {
	metrics := fiber.Map{
		"filter":   h.deps.Orchestrator.GetStats(),
		"sessions": h.deps.Sessions.GetStats(),
	}
	if h.deps.Scheduler != nil {
		metrics["scheduler"] = h.deps.Scheduler.GetStatus()
	}

	return c.JSON(fiber.Map{
		"metrics":   metrics,
		"timestamp": time.Now(),
	})
}

// GetFacilities handles GET /api/v1/facilities
func (h *Handler) GetFacilities(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"facilities": models.AllFacilities,
	})
}

func parseFacilities(values []string) ([]models.Facility, error) {
	out := make([]models.Facility, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		f, err := models.ParseFacility(v)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// GetLocations handles GET /api/v1/locations
func (h *Handler) GetLocations(c *fiber.Ctx) error {
	locations := h.deps.Catalog.All()

	if q := c.Query("facilities"); q != "" {
		required, err := parseFacilities(strings.Split(q, ","))
		if err != nil {
			return badRequest(c, err.Error())
		}
		locations = h.deps.Catalog.ByFacilities(required)
	}

	return c.JSON(fiber.Map{
		"locations": locations,
		"count":     len(locations),
	})
}

// GetLocation handles GET /api/v1/locations/:name
func (h *Handler) GetLocation(c *fiber.Ctx) error {
	loc, err := h.deps.Details.Location(pathParam(c, "name"))
	if err != nil {
		return h.fail(c, err, "Location not found", fiber.StatusNotFound)
	}
	return c.JSON(loc)
}

// GetLocationForecast handles GET /api/v1/locations/:name/forecast
func (h *Handler) GetLocationForecast(c *fiber.Ctx) error {
	id := c.Query("session")
	if id == "" {
		return badRequest(c, "Session parameter is required")
	}
	sess, err := h.deps.Sessions.Get(id)
	if err != nil {
		return h.fail(c, err, "Session not found", fiber.StatusNotFound)
	}

	name := pathParam(c, "name")
	h.logger.Debug("Rendering location forecast",
		zap.String("session", sess.ID),
		zap.String("location", name))

	fc, err := h.deps.Details.LocationForecast(c.UserContext(), sess, name)
	if err != nil {
		return h.fail(c, err, "Failed to build forecast", fiber.StatusInternalServerError)
	}
	return c.JSON(fc)
}

// GetLocationAlerts handles GET /api/v1/locations/:name/alerts
func (h *Handler) GetLocationAlerts(c *fiber.Ctx) error {
	data, err := h.deps.Details.Alerts(c.UserContext(), pathParam(c, "name"))
	if err != nil {
		return h.fail(c, err, "Failed to fetch alerts", fiber.StatusBadGateway)
	}
	return c.JSON(data)
}

// GetMarkers handles GET /api/v1/map/markers
func (h *Handler) GetMarkers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"markers": h.deps.Catalog.Markers(),
	})
}

// CreateSession handles POST /api/v1/sessions
func (h *Handler) CreateSession(c *fiber.Ctx) error {
	var req createSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
	}

	sess := h.deps.Sessions.Create()

	if req.Position != nil {
		if _, err := sess.SetPosition(models.Coordinate{Latitude: req.Position.Latitude, Longitude: req.Position.Longitude}); err != nil {
			_ = h.deps.Sessions.Delete(sess.ID)
			return h.fail(c, err, "Invalid position", fiber.StatusBadRequest)
		}
	}
	if req.Hour != nil {
		if err := sess.SetHour(*req.Hour); err != nil {
			_ = h.deps.Sessions.Delete(sess.ID)
			return h.fail(c, err, "Invalid hour", fiber.StatusBadRequest)
		}
	}
	if req.Connected {
		sess.SetConnected(true)
		h.prefetch(sess)
	}

	h.logger.Info("Session started",
		zap.String("session", sess.ID),
		zap.Bool("connected", req.Connected),
		zap.Bool("position", req.Position != nil))

	return c.Status(fiber.StatusCreated).JSON(sess.View())
}

// GetSession handles GET /api/v1/sessions/:id
func (h *Handler) GetSession(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return h.fail(c, err, "Session not found", fiber.StatusNotFound)
	}
	return c.JSON(sess.View())
}

// DeleteSession handles DELETE /api/v1/sessions/:id
func (h *Handler) DeleteSession(c *fiber.Ctx) error {
	if err := h.deps.Sessions.Delete(pathParam(c, "id")); err != nil {
		return h.fail(c, err, "Session not found", fiber.StatusNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetPosition handles PUT /api/v1/sessions/:id/position
func (h *Handler) SetPosition(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return h.fail(c, err, "Session not found", fiber.StatusNotFound)
	}

	var req positionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	accepted, err := sess.SetPosition(models.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude})
	if err != nil {
		return h.fail(c, err, "Invalid position", fiber.StatusBadRequest)
	}
	pos, _ := sess.Position()

	return c.JSON(fiber.Map{
		"accepted": accepted,
		"position": pos,
	})
}

// SetConnectivity handles PUT /api/v1/sessions/:id/connectivity
func (h *Handler) SetConnectivity(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return h.fail(c, err, "Session not found", fiber.StatusNotFound)
	}

	var req connectivityRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if was := sess.SetConnected(req.Connected); !was && req.Connected {
		h.prefetch(sess)
	}

	return c.JSON(fiber.Map{
		"connected": req.Connected,
	})
}

// SetHour handles PUT /api/v1/sessions/:id/hour
func (h *Handler) SetHour(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return h.fail(c, err, "Session not found", fiber.StatusNotFound)
	}

	var req hourRequest
	if err := c.BodyParser(&req); err != nil || req.Hour == nil {
		return badRequest(c, "Hour is required")
	}
	if err := sess.SetHour(*req.Hour); err != nil {
		return h.fail(c, err, "Invalid hour", fiber.StatusBadRequest)
	}

	return c.JSON(fiber.Map{
		"hour": sess.Hour(),
	})
}

// FilterLocations handles POST /api/v1/sessions/:id/filter
func (h *Handler) FilterLocations(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return h.fail(c, err, "Session not found", fiber.StatusNotFound)
	}

	var req filterRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
	}

	criteria := sess.Criteria()
	if req.MaxDistanceKm != nil {
		criteria.MaxDistanceKm = *req.MaxDistanceKm
	}
	if req.Facilities != nil {
		facilities, err := parseFacilities(req.Facilities)
		if err != nil {
			return badRequest(c, err.Error())
		}
		criteria.Facilities = facilities
	}
	if req.TempMin != nil {
		criteria.TempMin = *req.TempMin
	}
	if req.TempMax != nil {
		criteria.TempMax = *req.TempMax
	}

	result, err := h.deps.Orchestrator.Filter(c.UserContext(), sess, criteria)
	if err != nil {
		return h.fail(c, err, "Failed to filter locations", fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{
		"criteria": criteria,
		"result":   result,
	})
}

// GetSessionLocations handles GET /api/v1/sessions/:id/locations
func (h *Handler) GetSessionLocations(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return h.fail(c, err, "Session not found", fiber.StatusNotFound)
	}

	// Query strings point into fiber's reusable buffers; the session keeps this one.
	locations := sess.Search(strings.Clone(c.Query("search")))
	return c.JSON(fiber.Map{
		"locations": locations,
		"count":     len(locations),
	})
}

// GetPreviews handles GET /api/v1/sessions/:id/previews
func (h *Handler) GetPreviews(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return h.fail(c, err, "Session not found", fiber.StatusNotFound)
	}

	previews, err := h.deps.Details.Previews(c.UserContext(), sess)
	if err != nil {
		return h.fail(c, err, "Failed to build previews", fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{
		"previews": previews,
	})
}

var startTime = time.Now()
