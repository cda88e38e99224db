package models

import (
	"fmt"
	"strings"
)

// Facility is an amenity tag a bathing location may offer
type Facility string

const (
	FacilityToilet        Facility = "toilet"
	FacilityPier          Facility = "pier"
	FacilityKiosk         Facility = "kiosk"
	FacilityChildFriendly Facility = "child_friendly"
	FacilitySupervised    Facility = "supervised"
	FacilityGrill         Facility = "grill"
	FacilityAccessible    Facility = "accessible"
)

// AllFacilities lists the closed facility enumeration in display order
var AllFacilities = []Facility{
	FacilityToilet,
	FacilityPier,
	FacilityKiosk,
	FacilityChildFriendly,
	FacilitySupervised,
	FacilityGrill,
	FacilityAccessible,
}

// ParseFacility accepts a facility tag case-insensitively. Dashes and spaces are
// treated as underscores so "child-friendly" parses.
func ParseFacility(s string) (Facility, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	for _, f := range AllFacilities {
		if string(f) == norm {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown facility: %q", s)
}

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is one bathing spot. Name identifies it.
type Location struct {
	Name       string     `json:"name"`
	Facilities []Facility `json:"facilities"`
	Image      string     `json:"image"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
}

func (l Location) Coordinate() Coordinate {
	return Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

func (l Location) HasFacility(f Facility) bool {
	for _, have := range l.Facilities {
		if have == f {
			return true
		}
	}
	return false
}

// HasAll reports whether the location's facility set is a superset of required.
func (l Location) HasAll(required []Facility) bool {
	for _, f := range required {
		if !l.HasFacility(f) {
			return false
		}
	}
	return true
}

// Marker is the subset of a location a map needs to place a pin
type Marker struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
