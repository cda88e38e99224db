package models

import "time"

// Criteria is the user's filter selection. MaxDistanceKm of 0 disables the
// distance filter; the temperature bounds are inclusive.
type Criteria struct {
	MaxDistanceKm float64    `json:"max_distance_km"`
	Facilities    []Facility `json:"facilities"`
	TempMin       int        `json:"temp_min"`
	TempMax       int        `json:"temp_max"`
}

// FilterResult is the outcome of one orchestration run
type FilterResult struct {
	Locations []Location         `json:"locations"`
	Distances map[string]float64 `json:"distances,omitempty"`
	// Applied lists the sub-filters that took part in the intersection
	Applied  []string          `json:"applied"`
	Failures map[string]string `json:"failures,omitempty"`
	Duration time.Duration     `json:"duration"`
}
