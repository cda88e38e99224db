package models

import "time"

// AlertSeverity mirrors the CAP severity carried by MetAlerts
type AlertSeverity string

const (
	SeverityExtreme  AlertSeverity = "Extreme"
	SeveritySevere   AlertSeverity = "Severe"
	SeverityModerate AlertSeverity = "Moderate"
	SeverityMinor    AlertSeverity = "Minor"
	SeverityUnknown  AlertSeverity = "Unknown"
)

// Alert is a hazard notice issued for a county
type Alert struct {
	Title              string        `json:"title"`
	Area               string        `json:"area"`
	Description        string        `json:"description"`
	Severity           AlertSeverity `json:"severity"`
	AwarenessType      string        `json:"awareness_type"`       // e.g. "1; Wind"
	EventAwarenessName string        `json:"event_awareness_name"` // e.g. "Kuling"
	Certainty          string        `json:"certainty"`
	Consequences       string        `json:"consequences"`
	Instruction        string        `json:"instruction"`
	RiskMatrixColor    string        `json:"risk_matrix_color"` // Yellow, Orange, Red
	Start              time.Time     `json:"start"`
	End                time.Time     `json:"end"`
}

// ActiveOn reports whether the alert ends on or after now's calendar day.
// The end instant is compared by its UTC date, now by its own location's date.
func (a *Alert) ActiveOn(now time.Time) bool {
	return a.End.UTC().Format(time.DateOnly) >= now.Format(time.DateOnly)
}

type County struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// AlertData is the active-alert view for one location
type AlertData struct {
	County    County    `json:"county"`
	Alerts    []Alert   `json:"alerts"`
	UpdatedAt time.Time `json:"updated_at"`
}
