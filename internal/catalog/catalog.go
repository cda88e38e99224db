// Package catalog holds the fixed, in-memory list of known bathing locations
// and the pure filters that run over it.
package catalog

import (
	"sort"

	"github.com/bobby-s-dev/swimspot/internal/geo"
	"github.com/bobby-s-dev/swimspot/internal/models"
)

// Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	locations []models.Location
	byName    map[string]int // name -> index of the first location with that name
}

// Ranked is a location paired with its distance from an origin
type Ranked struct {
	Location   models.Location
	DistanceKm float64
}

// New builds a catalog from locs. Duplicate names are tolerated: lookups
// resolve to the first entry carrying the name.
func New(locs []models.Location) *Catalog {
	c := &Catalog{
		locations: make([]models.Location, len(locs)),
		byName:    make(map[string]int, len(locs)),
	}
	for i, loc := range locs {
		loc.Facilities = append([]models.Facility(nil), loc.Facilities...)
		c.locations[i] = loc
		if _, exists := c.byName[loc.Name]; !exists {
			c.byName[loc.Name] = i
		}
	}
	return c
}

// Default returns the catalog seeded with the built-in locations.
func Default() *Catalog {
	return New(seed)
}

func (c *Catalog) Len() int {
	return len(c.locations)
}

// All returns every location in catalog order.
func (c *Catalog) All() []models.Location {
	out := make([]models.Location, len(c.locations))
	copy(out, c.locations)
	return out
}

// ByName returns the first location with the given name.
func (c *Catalog) ByName(name string) (models.Location, bool) {
	i, ok := c.byName[name]
	if !ok {
		return models.Location{}, false
	}
	return c.locations[i], true
}

// Index returns the catalog position of the location a name resolves to, or -1.
func (c *Catalog) Index(name string) int {
	if i, ok := c.byName[name]; ok {
		return i
	}
	return -1
}

func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.locations))
	for _, loc := range c.locations {
		names = append(names, loc.Name)
	}
	return names
}

func (c *Catalog) Markers() []models.Marker {
	markers := make([]models.Marker, 0, len(c.locations))
	for _, loc := range c.locations {
		markers = append(markers, models.Marker{
			Name:      loc.Name,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
		})
	}
	return markers
}

// ByFacilities returns every location offering all required facilities.
func (c *Catalog) ByFacilities(required []models.Facility) []models.Location {
	return FilterByFacilities(c.locations, required)
}

// FilterByFacilities keeps the locations whose facility set is a superset of
// required. An empty required set keeps everything.
func FilterByFacilities(locations []models.Location, required []models.Facility) []models.Location {
	filtered := make([]models.Location, 0, len(locations))
	for _, loc := range locations {
		if loc.HasAll(required) {
			filtered = append(filtered, loc)
		}
	}
	return filtered
}

// Distances computes the distance from origin to every location, keyed by name.
func (c *Catalog) Distances(origin models.Coordinate) map[string]float64 {
	distances := make(map[string]float64, len(c.locations))
	for _, loc := range c.locations {
		if _, seen := distances[loc.Name]; seen {
			continue
		}
		distances[loc.Name] = geo.HaversineKm(origin.Latitude, origin.Longitude, loc.Latitude, loc.Longitude)
	}
	return distances
}

// WithinDistance returns the locations at most maxKm from origin, nearest first.
// Ties keep catalog order.
func (c *Catalog) WithinDistance(origin models.Coordinate, maxKm float64) []Ranked {
	var ranked []Ranked
	for _, loc := range c.locations {
		d := geo.HaversineKm(origin.Latitude, origin.Longitude, loc.Latitude, loc.Longitude)
		if d <= maxKm {
			ranked = append(ranked, Ranked{Location: loc, DistanceKm: d})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return ranked
}
