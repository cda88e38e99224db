package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bobby-s-dev/swimspot/internal/models"
	"go.uber.org/zap"
)

// LocationForecastClient reads MET Norway's Locationforecast 2.0 compact product
type LocationForecastClient struct {
	*BaseClient
	baseURL string
}

type LocationForecastResponse struct {
	Properties struct {
		Timeseries []struct {
			Time string `json:"time"`
			Data struct {
				Instant struct {
					Details struct {
						AirTemperature float64 `json:"air_temperature"`
						WindSpeed      float64 `json:"wind_speed"`
					} `json:"details"`
				} `json:"instant"`
				Next1Hours *struct {
					Summary struct {
						SymbolCode string `json:"symbol_code"`
					} `json:"summary"`
					Details *struct {
						PrecipitationAmount *float64 `json:"precipitation_amount"`
					} `json:"details"`
				} `json:"next_1_hours"`
			} `json:"data"`
		} `json:"timeseries"`
	} `json:"properties"`
}

func NewLocationForecastClient(baseURL string, config ClientConfig, logger *zap.Logger) *LocationForecastClient {
	return &LocationForecastClient{
		BaseClient: NewBaseClient("locationforecast", config, logger),
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// GetWeatherTimeseries returns the hourly weather timeseries for a coordinate.
func (c *LocationForecastClient) GetWeatherTimeseries(ctx context.Context, lat, lon float64) ([]models.WeatherEntry, error) {
	url := fmt.Sprintf("%s/compact?lat=%s&lon=%s", c.baseURL, formatCoord(lat), formatCoord(lon))

	data, err := c.GetWithRetry(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather forecast: %w", err)
	}

	var response LocationForecastResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("failed to parse weather forecast: %w", err)
	}

	entries := make([]models.WeatherEntry, 0, len(response.Properties.Timeseries))
	for _, ts := range response.Properties.Timeseries {
		details := models.WeatherDetails{
			AirTemperature: ts.Data.Instant.Details.AirTemperature,
			WindSpeed:      ts.Data.Instant.Details.WindSpeed,
		}
		if next := ts.Data.Next1Hours; next != nil {
			details.SymbolCode = next.Summary.SymbolCode
			if next.Details != nil {
				details.PrecipitationAmount = next.Details.PrecipitationAmount
			}
		}
		entries = append(entries, models.WeatherEntry{Time: ts.Time, Data: details})
	}

	return entries, nil
}

// formatCoord rounds to four decimals; api.met.no answers 403 for more.
func formatCoord(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
