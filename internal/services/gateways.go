package services

import (
	"context"

	"github.com/bobby-s-dev/swimspot/internal/models"
)

type OceanGateway interface {
	GetOceanTimeseries(ctx context.Context, lat, lon float64) ([]models.OceanEntry, error)
}

type WeatherGateway interface {
	GetWeatherTimeseries(ctx context.Context, lat, lon float64) ([]models.WeatherEntry, error)
}

type CountyGateway interface {
	GetCounty(ctx context.Context, lat, lon float64) (*models.County, error)
}

type AlertsGateway interface {
	GetAlerts(ctx context.Context, countyNumber string) ([]models.Alert, error)
}
