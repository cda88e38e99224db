package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bobby-s-dev/swimspot/internal/models"
	"go.uber.org/zap"
)

// MetAlertsClient reads MET Norway's MetAlerts 2.0 GeoJSON feed
type MetAlertsClient struct {
	*BaseClient
	baseURL string
}

type metAlertsResponse struct {
	Features []struct {
		Properties struct {
			Area               string `json:"area"`
			AwarenessType      string `json:"awarenessType"`
			Certainty          string `json:"certainty"`
			Consequences       string `json:"consequences"`
			Description        string `json:"description"`
			EventAwarenessName string `json:"eventAwarenessName"`
			Instruction        string `json:"instruction"`
			RiskMatrixColor    string `json:"riskMatrixColor"`
			Severity           string `json:"severity"`
			Title              string `json:"title"`
		} `json:"properties"`
		When struct {
			Interval []string `json:"interval"`
		} `json:"when"`
	} `json:"features"`
}

func NewMetAlertsClient(baseURL string, config ClientConfig, logger *zap.Logger) *MetAlertsClient {
	return &MetAlertsClient{
		BaseClient: NewBaseClient("metalerts", config, logger),
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// GetAlerts returns every current alert for a county number ("03" is Oslo).
func (c *MetAlertsClient) GetAlerts(ctx context.Context, countyNumber string) ([]models.Alert, error) {
	endpoint := fmt.Sprintf("%s/all.json?county=%s", c.baseURL, url.QueryEscape(countyNumber))

	data, err := c.GetWithRetry(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch alerts: %w", err)
	}

	var response metAlertsResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("failed to parse alerts: %w", err)
	}

	alerts := make([]models.Alert, 0, len(response.Features))
	for _, feature := range response.Features {
		props := feature.Properties

		alert := models.Alert{
			Title:              props.Title,
			Area:               props.Area,
			Description:        props.Description,
			Severity:           mapSeverity(props.Severity),
			AwarenessType:      props.AwarenessType,
			EventAwarenessName: props.EventAwarenessName,
			Certainty:          props.Certainty,
			Consequences:       props.Consequences,
			Instruction:        props.Instruction,
			RiskMatrixColor:    props.RiskMatrixColor,
		}

		if len(feature.When.Interval) != 2 {
			c.logger.Warn("Skipping alert without a validity interval", zap.String("title", props.Title))
			continue
		}
		start, err := time.Parse(time.RFC3339, feature.When.Interval[0])
		if err != nil {
			c.logger.Warn("Skipping alert with bad start time", zap.String("title", props.Title), zap.Error(err))
			continue
		}
		end, err := time.Parse(time.RFC3339, feature.When.Interval[1])
		if err != nil {
			c.logger.Warn("Skipping alert with bad end time", zap.String("title", props.Title), zap.Error(err))
			continue
		}
		alert.Start = start
		alert.End = end

		alerts = append(alerts, alert)
	}

	return alerts, nil
}

func mapSeverity(s string) models.AlertSeverity {
	switch s {
	case "Extreme":
		return models.SeverityExtreme
	case "Severe":
		return models.SeveritySevere
	case "Moderate":
		return models.SeverityModerate
	case "Minor":
		return models.SeverityMinor
	default:
		return models.SeverityUnknown
	}
}
