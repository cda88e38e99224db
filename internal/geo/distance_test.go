package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name      string
		lat1      float64
		lon1      float64
		lat2      float64
		lon2      float64
		expected  float64
		tolerance float64
	}{
		{
			name:      "same location",
			lat1:      59.8988725,
			lon1:      10.6713689,
			lat2:      59.8988725,
			lon2:      10.6713689,
			expected:  0.0,
			tolerance: 1e-9,
		},
		{
			name:      "Oslo centre to Huk",
			lat1:      59.9375174,
			lon1:      10.7552997,
			lat2:      59.8988725,
			lon2:      10.6713689,
			expected:  6.35,
			tolerance: 0.05,
		},
		{
			name:      "Oslo centre to Sørenga sjøbad",
			lat1:      59.9375174,
			lon1:      10.7552997,
			lat2:      59.9011363,
			lon2:      10.751058,
			expected:  4.05,
			tolerance: 0.05,
		},
		{
			name:      "one degree of latitude",
			lat1:      60.0,
			lon1:      10.0,
			lat2:      61.0,
			lon2:      10.0,
			expected:  EarthRadiusKm * math.Pi / 180,
			tolerance: 1e-6,
		},
		{
			name:      "Oslo to Tromsø",
			lat1:      59.9375174,
			lon1:      10.7552997,
			lat2:      69.6298984,
			lon2:      18.8804589,
			expected:  1141.4,
			tolerance: 10.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.expected, got, tt.tolerance)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestHaversineKm_Symmetric(t *testing.T) {
	points := [][2]float64{
		{59.9375174, 10.7552997},
		{59.8988725, 10.6713689},
		{63.4501544, 10.4097456},
		{58.14071651665333, 8.00265393731935},
		{0, 0},
	}
	for _, a := range points {
		for _, b := range points {
			ab := HaversineKm(a[0], a[1], b[0], b[1])
			ba := HaversineKm(b[0], b[1], a[0], a[1])
			assert.InDelta(t, ab, ba, 1e-9)
		}
	}
}
