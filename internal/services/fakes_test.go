package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bobby-s-dev/swimspot/internal/catalog"
	"github.com/bobby-s-dev/swimspot/internal/forecast"
	"github.com/bobby-s-dev/swimspot/internal/models"
)

var (
	osloCentre = models.Coordinate{Latitude: 59.9375174, Longitude: 10.7552997}

	// 2024-03-15 16:30 UTC
	testNow   = time.Date(2024, 3, 15, 16, 30, 0, 0, time.UTC)
	testClock = forecast.FixedClock(testNow)

	huk = models.Location{
		Name: "Huk",
		Facilities: []models.Facility{
			models.FacilitySupervised, models.FacilityGrill, models.FacilityKiosk, models.FacilityToilet,
		},
		Image:     "https://example.com/huk.jpg",
		Latitude:  59.8988725,
		Longitude: 10.6713689,
	}
	sorenga = models.Location{
		Name: "Sørenga sjøbad",
		Facilities: []models.Facility{
			models.FacilitySupervised, models.FacilityChildFriendly, models.FacilityKiosk,
			models.FacilityAccessible, models.FacilityToilet, models.FacilityPier,
		},
		Image:     "https://example.com/sorenga.jpg",
		Latitude:  59.9011363,
		Longitude: 10.751058,
	}
	operastranda = models.Location{
		Name:       "Operastranda",
		Facilities: []models.Facility{models.FacilityToilet},
		Image:      "https://example.com/opera.jpg",
		Latitude:   59.9065786,
		Longitude:  10.7526328,
	}
	korsvika = models.Location{
		Name:       "Korsvika",
		Facilities: []models.Facility{models.FacilityAccessible, models.FacilityGrill},
		Image:      "https://example.com/korsvika.jpg",
		Latitude:   63.4501544,
		Longitude:  10.4097456,
	}
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]models.Location{huk, sorenga, operastranda, korsvika})
}

func names(locs []models.Location) []string {
	out := make([]string, 0, len(locs))
	for _, loc := range locs {
		out = append(out, loc.Name)
	}
	return out
}

func ptr(v float64) *float64 { return &v }

func oceanAt(ts string, waterTemp float64) []models.OceanEntry {
	return []models.OceanEntry{{
		Time: ts,
		Data: models.OceanDetails{
			WaveHeight:       ptr(0.4),
			WaterSpeed:       ptr(0.1),
			WaterTemperature: ptr(waterTemp),
		},
	}}
}

func weatherAt(ts string, air float64, symbol string) []models.WeatherEntry {
	return []models.WeatherEntry{{
		Time: ts,
		Data: models.WeatherDetails{
			AirTemperature:      air,
			WindSpeed:           3.2,
			SymbolCode:          symbol,
			PrecipitationAmount: ptr(0),
		},
	}}
}

type reply[T any] struct {
	entries []T
	err     error
}

// fakeSeries answers timeseries requests per coordinate and counts calls.
// With block set it waits for the caller's context to end.
type fakeSeries[T any] struct {
	mu      sync.Mutex
	replies map[models.Coordinate]reply[T]
	calls   map[models.Coordinate]int
	block   bool
	delay   time.Duration
}

func newFakeSeries[T any]() *fakeSeries[T] {
	return &fakeSeries[T]{
		replies: make(map[models.Coordinate]reply[T]),
		calls:   make(map[models.Coordinate]int),
	}
}

func (f *fakeSeries[T]) set(loc models.Location, entries []T, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[loc.Coordinate()] = reply[T]{entries: entries, err: err}
}

func (f *fakeSeries[T]) callsFor(loc models.Location) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[loc.Coordinate()]
}

func (f *fakeSeries[T]) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeSeries[T]) get(ctx context.Context, lat, lon float64) ([]T, error) {
	key := models.Coordinate{Latitude: lat, Longitude: lon}

	f.mu.Lock()
	f.calls[key]++
	r, ok := f.replies[key]
	block, delay := f.block, f.delay
	f.mu.Unlock()

	if block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if !ok {
		return nil, errors.New("HTTP 422 from fake")
	}
	return r.entries, r.err
}

type fakeOcean struct{ *fakeSeries[models.OceanEntry] }

func (f fakeOcean) GetOceanTimeseries(ctx context.Context, lat, lon float64) ([]models.OceanEntry, error) {
	return f.get(ctx, lat, lon)
}

type fakeWeather struct{ *fakeSeries[models.WeatherEntry] }

func (f fakeWeather) GetWeatherTimeseries(ctx context.Context, lat, lon float64) ([]models.WeatherEntry, error) {
	return f.get(ctx, lat, lon)
}

type fakeCounties struct {
	county *models.County
	err    error
}

func (f fakeCounties) GetCounty(ctx context.Context, lat, lon float64) (*models.County, error) {
	if f.err != nil {
		return nil, f.err
	}
	c := *f.county
	return &c, nil
}

type fakeAlerts struct {
	byCounty map[string][]models.Alert
	err      error
	asked    []string
}

func (f *fakeAlerts) GetAlerts(ctx context.Context, countyNumber string) ([]models.Alert, error) {
	f.asked = append(f.asked, countyNumber)
	if f.err != nil {
		return nil, f.err
	}
	return f.byCounty[countyNumber], nil
}

// manualClock is a clock tests can move forward
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
