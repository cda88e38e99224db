package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bobby-s-dev/swimspot/internal/forecast"
	"github.com/bobby-s-dev/swimspot/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DetailService renders per-location views from a session's forecasts
type DetailService struct {
	orchestrator *Orchestrator
	alerts       *AlertService
	clock        forecast.Clock
	logger       *zap.Logger
}

func NewDetailService(orchestrator *Orchestrator, alerts *AlertService, clock forecast.Clock, logger *zap.Logger) *DetailService {
	return &DetailService{
		orchestrator: orchestrator,
		alerts:       alerts,
		clock:        clock,
		logger:       logger,
	}
}

func (d *DetailService) lookup(name string) (models.Location, error) {
	loc, ok := d.orchestrator.Catalog().ByName(name)
	if !ok {
		return models.Location{}, fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}
	return loc, nil
}

// LocationForecast returns the weather and sea state at the session's chosen
// hour of today. Readings that are unavailable, including everything when
// the session is offline, are rendered as forecast.NoData.
func (d *DetailService) LocationForecast(ctx context.Context, sess *Session, name string) (*models.LocationForecast, error) {
	loc, err := d.lookup(name)
	if err != nil {
		return nil, err
	}

	target := forecast.At(d.clock, sess.Hour())
	out := &models.LocationForecast{
		Location:         loc.Name,
		Day:              target.Day,
		Hour:             target.Hour,
		AirTemperature:   forecast.NoData,
		WindSpeed:        forecast.NoData,
		SymbolCode:       forecast.NoData,
		Precipitation:    forecast.NoData,
		WaveHeight:       forecast.NoData,
		WaterSpeed:       forecast.NoData,
		WaterTemperature: forecast.NoData,
	}

	if !sess.Connected() {
		return out, nil
	}

	var (
		weather    []models.WeatherEntry
		ocean      []models.OceanEntry
		weatherErr error
		oceanErr   error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		weather, weatherErr = d.orchestrator.WeatherTimeseries(gctx, sess, loc)
		return nil
	})
	g.Go(func() error {
		ocean, oceanErr = d.orchestrator.OceanTimeseries(gctx, sess, loc)
		return nil
	})
	_ = g.Wait()

	if weatherErr != nil {
		d.logger.Warn("Weather forecast unavailable",
			zap.String("location", loc.Name),
			zap.Error(weatherErr))
	} else if w, ok := forecast.Select(weather, target); ok {
		out.AirTemperature = formatReading(w.AirTemperature)
		out.WindSpeed = formatReading(w.WindSpeed)
		if w.SymbolCode != "" {
			out.SymbolCode = w.SymbolCode
		}
		out.Precipitation = forecast.FormatFloat(w.PrecipitationAmount)
	}

	if oceanErr != nil {
		d.logger.Warn("Ocean forecast unavailable",
			zap.String("location", loc.Name),
			zap.Error(oceanErr))
	} else if o, ok := forecast.Select(ocean, target); ok {
		out.WaveHeight = forecast.FormatFloat(o.WaveHeight)
		out.WaterSpeed = forecast.FormatFloat(o.WaterSpeed)
		out.WaterTemperature = forecast.FormatFloat(o.WaterTemperature)
	}

	return out, nil
}

// Previews builds list cards for the session's displayed locations: sky and
// air temperature at the chosen hour, water temperature now.
func (d *DetailService) Previews(ctx context.Context, sess *Session) ([]models.Preview, error) {
	displayed := sess.Displayed()
	chosen := forecast.At(d.clock, sess.Hour())
	now := forecast.Now(d.clock)
	connected := sess.Connected()

	var distances map[string]float64
	if origin, ok := sess.Position(); ok {
		distances = d.orchestrator.Catalog().Distances(origin)
	}

	previews := make([]models.Preview, len(displayed))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.orchestrator.concurrency)

	for i, loc := range displayed {
		previews[i] = models.Preview{
			Location:         loc.Name,
			Image:            loc.Image,
			AirTemperature:   forecast.NoData,
			SymbolCode:       forecast.NoData,
			WaterTemperature: forecast.NoData,
		}
		if km, ok := distances[loc.Name]; ok {
			previews[i].DistanceKm = &km
		}
		if !connected {
			continue
		}

		g.Go(func() error {
			p := &previews[i]
			if weather, err := d.orchestrator.WeatherTimeseries(gctx, sess, loc); err == nil {
				if w, ok := forecast.Select(weather, chosen); ok {
					p.AirTemperature = formatReading(w.AirTemperature)
					if w.SymbolCode != "" {
						p.SymbolCode = w.SymbolCode
					}
				}
			} else if gctx.Err() != nil {
				return gctx.Err()
			}

			if ocean, err := d.orchestrator.OceanTimeseries(gctx, sess, loc); err == nil {
				if o, ok := forecast.Select(ocean, now); ok {
					p.WaterTemperature = forecast.FormatFloat(o.WaterTemperature)
				}
			} else if gctx.Err() != nil {
				return gctx.Err()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("previews aborted: %w", err)
	}
	return previews, nil
}

// Alerts resolves the location's county and returns its active alerts.
func (d *DetailService) Alerts(ctx context.Context, name string) (*models.AlertData, error) {
	loc, err := d.lookup(name)
	if err != nil {
		return nil, err
	}
	return d.alerts.GetActiveAlerts(ctx, loc.Latitude, loc.Longitude, d.clock.Now())
}

func formatReading(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Location is a catalog lookup that fails with ErrLocationNotFound.
func (d *DetailService) Location(name string) (models.Location, error) {
	return d.lookup(name)
}
