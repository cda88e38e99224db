package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bobby-s-dev/swimspot/internal/models"
	"go.uber.org/zap"
)

// KartverketClient resolves coordinates to a county with Kartverket's kommuneinfo API
type KartverketClient struct {
	*BaseClient
	baseURL string
}

type kommuneinfoResponse struct {
	Fylkesnavn    string `json:"fylkesnavn"`
	Fylkesnummer  string `json:"fylkesnummer"`
	Kommunenavn   string `json:"kommunenavn"`
	Kommunenummer string `json:"kommunenummer"`
}

func NewKartverketClient(baseURL string, config ClientConfig, logger *zap.Logger) *KartverketClient {
	return &KartverketClient{
		BaseClient: NewBaseClient("kartverket", config, logger),
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// GetCounty looks up the county containing the point. Coordinates are
// ETRS89 (EPSG:4258), which matches WGS84 at this precision.
func (c *KartverketClient) GetCounty(ctx context.Context, lat, lon float64) (*models.County, error) {
	url := fmt.Sprintf("%s/punkt?nord=%s&ost=%s&koordsys=4258", c.baseURL, formatCoord(lat), formatCoord(lon))

	data, err := c.GetWithRetry(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to look up county: %w", err)
	}

	var response kommuneinfoResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("failed to parse county: %w", err)
	}

	if response.Fylkesnummer == "" {
		return nil, fmt.Errorf("no county found at %s,%s", formatCoord(lat), formatCoord(lon))
	}

	return &models.County{
		Name:   response.Fylkesnavn,
		Number: response.Fylkesnummer,
	}, nil
}
