package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bobby-s-dev/swimspot/internal/models"
	"go.uber.org/zap"
)

// OceanForecastClient reads MET Norway's Oceanforecast 2.0 complete product
type OceanForecastClient struct {
	*BaseClient
	baseURL string
}

type OceanForecastResponse struct {
	Properties struct {
		Timeseries []struct {
			Time string `json:"time"`
			Data struct {
				Instant struct {
					Details struct {
						SeaSurfaceWaveHeight *float64 `json:"sea_surface_wave_height"`
						SeaWaterSpeed        *float64 `json:"sea_water_speed"`
						SeaWaterTemperature  *float64 `json:"sea_water_temperature"`
					} `json:"details"`
				} `json:"instant"`
			} `json:"data"`
		} `json:"timeseries"`
	} `json:"properties"`
}

func NewOceanForecastClient(baseURL string, config ClientConfig, logger *zap.Logger) *OceanForecastClient {
	return &OceanForecastClient{
		BaseClient: NewBaseClient("oceanforecast", config, logger),
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// GetOceanTimeseries returns the hourly sea-state timeseries for a coordinate.
func (c *OceanForecastClient) GetOceanTimeseries(ctx context.Context, lat, lon float64) ([]models.OceanEntry, error) {
	url := fmt.Sprintf("%s/complete?lat=%s&lon=%s", c.baseURL, formatCoord(lat), formatCoord(lon))

	data, err := c.GetWithRetry(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ocean forecast: %w", err)
	}

	var response OceanForecastResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("failed to parse ocean forecast: %w", err)
	}

	entries := make([]models.OceanEntry, 0, len(response.Properties.Timeseries))
	for _, ts := range response.Properties.Timeseries {
		d := ts.Data.Instant.Details
		entries = append(entries, models.OceanEntry{
			Time: ts.Time,
			Data: models.OceanDetails{
				WaveHeight:       d.SeaSurfaceWaveHeight,
				WaterSpeed:       d.SeaWaterSpeed,
				WaterTemperature: d.SeaWaterTemperature,
			},
		})
	}

	return entries, nil
}
