package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bobby-s-dev/swimspot/internal/models"
	"go.uber.org/zap"
)

// AlertService finds the hazard alerts that apply to a coordinate by first
// resolving its county.
type AlertService struct {
	counties CountyGateway
	alerts   AlertsGateway
	logger   *zap.Logger
}

func NewAlertService(counties CountyGateway, alerts AlertsGateway, logger *zap.Logger) *AlertService {
	return &AlertService{
		counties: counties,
		alerts:   alerts,
		logger:   logger,
	}
}

// GetActiveAlerts returns the county's alerts that end on or after now's day.
func (s *AlertService) GetActiveAlerts(ctx context.Context, lat, lon float64, now time.Time) (*models.AlertData, error) {
	county, err := s.counties.GetCounty(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("county lookup: %w", err)
	}

	all, err := s.alerts.GetAlerts(ctx, county.Number)
	if err != nil {
		return nil, fmt.Errorf("alerts for county %s: %w", county.Number, err)
	}

	active := make([]models.Alert, 0, len(all))
	for i := range all {
		if all[i].ActiveOn(now) {
			active = append(active, all[i])
		}
	}

	s.logger.Debug("Alerts resolved",
		zap.String("county", county.Name),
		zap.Int("total", len(all)),
		zap.Int("active", len(active)))

	return &models.AlertData{
		County:    *county,
		Alerts:    active,
		UpdatedAt: now,
	}, nil
}
