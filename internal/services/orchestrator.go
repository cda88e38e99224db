package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bobby-s-dev/swimspot/internal/catalog"
	"github.com/bobby-s-dev/swimspot/internal/forecast"
	"github.com/bobby-s-dev/swimspot/internal/models"
	"github.com/bobby-s-dev/swimspot/pkg/client"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	SubsetDistance    = "distance"
	SubsetFacilities  = "facilities"
	SubsetTemperature = "temperature"
)

// Orchestrator computes a session's displayed list from the catalog and the
// user's criteria, and owns the session's forecast fetches.
type Orchestrator struct {
	catalog     *catalog.Catalog
	ocean       OceanGateway
	weather     WeatherGateway
	clock       forecast.Clock
	logger      *zap.Logger
	concurrency int

	mu           sync.RWMutex
	runs         int
	lastRun      time.Time
	lastDuration time.Duration
	fetchSuccess int
	fetchFailure int
}

func NewOrchestrator(cat *catalog.Catalog, ocean OceanGateway, weather WeatherGateway, clock forecast.Clock, concurrency int, logger *zap.Logger) *Orchestrator {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Orchestrator{
		catalog:     cat,
		ocean:       ocean,
		weather:     weather,
		clock:       clock,
		logger:      logger,
		concurrency: concurrency,
	}
}

func (o *Orchestrator) Catalog() *catalog.Catalog {
	return o.catalog
}

func ValidateCriteria(c models.Criteria) error {
	if c.MaxDistanceKm < 0 {
		return fmt.Errorf("%w: max distance must not be negative", ErrInvalidCriteria)
	}
	if c.TempMin > c.TempMax {
		return fmt.Errorf("%w: temperature range %d..%d is empty", ErrInvalidCriteria, c.TempMin, c.TempMax)
	}
	for _, f := range c.Facilities {
		if _, err := models.ParseFacility(string(f)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCriteria, err)
		}
	}
	return nil
}

type subset struct {
	name  string
	names map[string]struct{}
}

func newSubset(name string, locations []models.Location) *subset {
	s := &subset{name: name, names: make(map[string]struct{}, len(locations))}
	for _, loc := range locations {
		s.names[loc.Name] = struct{}{}
	}
	return s
}

// Filter runs the distance, facility and temperature filters concurrently and
// keeps the catalog locations present in every filter that applied. The
// distance filter is skipped without a position or with a max distance of
// zero, the temperature filter when the session is offline. The result
// replaces the session's displayed list.
func (o *Orchestrator) Filter(ctx context.Context, sess *Session, criteria models.Criteria) (*models.FilterResult, error) {
	if err := ValidateCriteria(criteria); err != nil {
		return nil, err
	}

	startTime := time.Now()

	var (
		distance    *subset
		distances   map[string]float64
		facilities  *subset
		temperature *subset
		failures    map[string]string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		origin, ok := sess.Position()
		if !ok || criteria.MaxDistanceKm == 0 {
			return nil
		}
		ranked := o.catalog.WithinDistance(origin, criteria.MaxDistanceKm)
		locs := make([]models.Location, 0, len(ranked))
		distances = make(map[string]float64, len(ranked))
		for _, r := range ranked {
			locs = append(locs, r.Location)
			distances[r.Location.Name] = r.DistanceKm
		}
		distance = newSubset(SubsetDistance, locs)
		return nil
	})

	g.Go(func() error {
		facilities = newSubset(SubsetFacilities, o.catalog.ByFacilities(criteria.Facilities))
		return nil
	})

	g.Go(func() error {
		if !sess.Connected() {
			return nil
		}
		locs, failed, available, err := o.temperatureSubset(gctx, sess, criteria.TempMin, criteria.TempMax)
		if err != nil {
			return err
		}
		failures = failed
		if !available {
			o.logger.Warn("Ocean forecasts refused by circuit breaker, skipping temperature filter",
				zap.String("session", sess.ID),
				zap.Int("failures", len(failed)))
			return nil
		}
		temperature = newSubset(SubsetTemperature, locs)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("filter aborted: %w", err)
	}

	var active []*subset
	for _, s := range []*subset{facilities, distance, temperature} {
		if s != nil {
			active = append(active, s)
		}
	}

	result := &models.FilterResult{
		Locations: intersect(o.catalog.All(), active),
		Distances: distances,
		Applied:   make([]string, 0, len(active)),
		Failures:  failures,
	}
	for _, s := range active {
		result.Applied = append(result.Applied, s.name)
	}
	result.Duration = time.Since(startTime)

	sess.replaceResult(criteria, result.Locations)

	o.mu.Lock()
	o.runs++
	o.lastRun = startTime
	o.lastDuration = result.Duration
	o.mu.Unlock()

	o.logger.Info("Filter completed",
		zap.String("session", sess.ID),
		zap.Strings("applied", result.Applied),
		zap.Int("matches", len(result.Locations)),
		zap.Int("failures", len(failures)),
		zap.Duration("duration", result.Duration))

	return result, nil
}

// intersect keeps the locations, in catalog order, whose name is in every
// active subset. With no active subset everything is kept.
func intersect(all []models.Location, active []*subset) []models.Location {
	out := make([]models.Location, 0, len(all))
	seen := make(map[string]struct{}, len(all))

	for _, loc := range all {
		if _, dup := seen[loc.Name]; dup {
			continue
		}
		keep := true
		for _, s := range active {
			if _, ok := s.names[loc.Name]; !ok {
				keep = false
				break
			}
		}
		if keep {
			seen[loc.Name] = struct{}{}
			out = append(out, loc)
		}
	}
	return out
}

// temperatureSubset keeps the catalog locations whose current water
// temperature, truncated to whole degrees, lies within [lo, hi]. A location
// with no data or a failed fetch is left out and reported in the failure map.
// The boolean is false when the ocean gateway's breaker refused a fetch; the
// subset is then incomplete and must not take part in the intersection.
func (o *Orchestrator) temperatureSubset(ctx context.Context, sess *Session, lo, hi int) ([]models.Location, map[string]string, bool, error) {
	all := o.catalog.All()
	target := forecast.Now(o.clock)

	keep := make([]bool, len(all))
	failures := make(map[string]string)
	refused := false
	var failMu sync.Mutex
	fail := func(name, reason string, transient bool) {
		failMu.Lock()
		failures[name] = reason
		refused = refused || transient
		failMu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, loc := range all {
		g.Go(func() error {
			entries, err := o.OceanTimeseries(gctx, sess, loc)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				o.logger.Warn("Ocean forecast unavailable, excluding location",
					zap.String("location", loc.Name),
					zap.Error(err))
				fail(loc.Name, err.Error(), client.IsTransient(err))
				return nil
			}

			details, ok := forecast.Select(entries, target)
			if !ok || details.WaterTemperature == nil {
				fail(loc.Name, fmt.Sprintf("no water temperature for %s %02d:00", target.Day, target.Hour), false)
				return nil
			}

			t := int(*details.WaterTemperature)
			keep[i] = t >= lo && t <= hi
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, false, err
	}

	out := make([]models.Location, 0, len(all))
	for i, loc := range all {
		if keep[i] {
			out = append(out, loc)
		}
	}
	return out, failures, !refused, nil
}

// OceanTimeseries returns the location's ocean forecast, fetched at most once
// per session.
func (o *Orchestrator) OceanTimeseries(ctx context.Context, sess *Session, loc models.Location) ([]models.OceanEntry, error) {
	entries, err := sess.Ocean.Get(ctx, loc.Name, func(ctx context.Context) ([]models.OceanEntry, error) {
		entries, err := o.ocean.GetOceanTimeseries(ctx, loc.Latitude, loc.Longitude)
		o.recordFetch(err)
		return entries, err
	})
	if err != nil {
		return nil, fmt.Errorf("ocean forecast for %s: %w", loc.Name, err)
	}
	return entries, nil
}

// WeatherTimeseries returns the location's weather forecast, fetched at most
// once per session.
func (o *Orchestrator) WeatherTimeseries(ctx context.Context, sess *Session, loc models.Location) ([]models.WeatherEntry, error) {
	entries, err := sess.Weather.Get(ctx, loc.Name, func(ctx context.Context) ([]models.WeatherEntry, error) {
		entries, err := o.weather.GetWeatherTimeseries(ctx, loc.Latitude, loc.Longitude)
		o.recordFetch(err)
		return entries, err
	})
	if err != nil {
		return nil, fmt.Errorf("weather forecast for %s: %w", loc.Name, err)
	}
	return entries, nil
}

func (o *Orchestrator) recordFetch(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.fetchFailure++
	} else {
		o.fetchSuccess++
	}
}

// Prefetch loads ocean and weather forecasts for every catalog location into
// the session. Individual failures are recorded in the session's fetch tables
// and do not stop the others.
func (o *Orchestrator) Prefetch(ctx context.Context, sess *Session) error {
	if !sess.Connected() {
		return nil
	}

	startTime := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for _, loc := range o.catalog.All() {
		g.Go(func() error {
			if _, err := o.OceanTimeseries(gctx, sess, loc); err != nil && gctx.Err() != nil {
				return gctx.Err()
			}
			return nil
		})
		g.Go(func() error {
			if _, err := o.WeatherTimeseries(gctx, sess, loc); err != nil && gctx.Err() != nil {
				return gctx.Err()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("prefetch aborted: %w", err)
	}

	o.logger.Info("Prefetch completed",
		zap.String("session", sess.ID),
		zap.Int("locations", o.catalog.Len()),
		zap.Duration("duration", time.Since(startTime)))

	return nil
}

func (o *Orchestrator) GetStats() map[string]interface{} {
	o.mu.RLock()
	defer o.mu.RUnlock()

	stats := map[string]interface{}{
		"catalog_size":      o.catalog.Len(),
		"filter_runs":       o.runs,
		"fetch_success":     o.fetchSuccess,
		"fetch_failure":     o.fetchFailure,
		"fetch_concurrency": o.concurrency,
	}
	if !o.lastRun.IsZero() {
		stats["last_filter"] = o.lastRun
		stats["last_filter_duration"] = o.lastDuration.String()
	}
	return stats
}
