package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bobby-s-dev/swimspot/internal/catalog"
	"github.com/bobby-s-dev/swimspot/internal/geo"
	"github.com/bobby-s-dev/swimspot/internal/models"
	"github.com/bobby-s-dev/swimspot/pkg/client"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type orchestratorFixture struct {
	orch    *Orchestrator
	ocean   *fakeSeries[models.OceanEntry]
	weather *fakeSeries[models.WeatherEntry]
}

func newOrchestratorFixture(t *testing.T, cat *catalog.Catalog) orchestratorFixture {
	t.Helper()
	ocean := newFakeSeries[models.OceanEntry]()
	weather := newFakeSeries[models.WeatherEntry]()
	return orchestratorFixture{
		orch:    NewOrchestrator(cat, fakeOcean{ocean}, fakeWeather{weather}, testClock, 4, zaptest.NewLogger(t)),
		ocean:   ocean,
		weather: weather,
	}
}

func newTestSession(cat *catalog.Catalog) *Session {
	return NewSession(testNow, models.Criteria{}, cat.All())
}

func TestFilter_NoPositionOfflineReturnsWholeCatalog(t *testing.T) {
	cat := testCatalog()
	f := newOrchestratorFixture(t, cat)
	sess := newTestSession(cat)

	result, err := f.orch.Filter(context.Background(), sess, models.Criteria{MaxDistanceKm: 5, TempMin: 0, TempMax: 30})
	require.NoError(t, err)

	assert.Equal(t, []string{"Huk", "Sørenga sjøbad", "Operastranda", "Korsvika"}, names(result.Locations))
	assert.Equal(t, []string{SubsetFacilities}, result.Applied)
	assert.Nil(t, result.Distances)
	assert.Zero(t, f.ocean.totalCalls(), "offline sessions must not fetch")
}

func TestFilter_Facilities(t *testing.T) {
	cat := testCatalog()
	f := newOrchestratorFixture(t, cat)

	tests := []struct {
		name     string
		required []models.Facility
		want     []string
	}{
		{"kiosk keeps Huk", []models.Facility{models.FacilityKiosk}, []string{"Huk", "Sørenga sjøbad"}},
		{"pier drops Huk", []models.Facility{models.FacilityPier}, []string{"Sørenga sjøbad"}},
		{"grill and accessible", []models.Facility{models.FacilityAccessible, models.FacilityGrill}, []string{"Korsvika"}},
		{"duplicates are harmless", []models.Facility{models.FacilityToilet, models.FacilityToilet}, []string{"Huk", "Sørenga sjøbad", "Operastranda"}},
		{"nothing offers everything", models.AllFacilities, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := newTestSession(cat)
			result, err := f.orch.Filter(context.Background(), sess, models.Criteria{Facilities: tt.required, TempMax: 30})
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(result.Locations))
			assert.Equal(t, tt.want, names(sess.Displayed()))
		})
	}
}

func TestFilter_Distance(t *testing.T) {
	cat := testCatalog()
	f := newOrchestratorFixture(t, cat)
	sess := newTestSession(cat)
	_, err := sess.SetPosition(osloCentre)
	require.NoError(t, err)

	result, err := f.orch.Filter(context.Background(), sess, models.Criteria{MaxDistanceKm: 5, TempMax: 30})
	require.NoError(t, err)

	assert.Equal(t, []string{"Sørenga sjøbad", "Operastranda"}, names(result.Locations))
	assert.Equal(t, []string{SubsetFacilities, SubsetDistance}, result.Applied)

	want := geo.HaversineKm(osloCentre.Latitude, osloCentre.Longitude, sorenga.Latitude, sorenga.Longitude)
	assert.InDelta(t, 4.05, want, 0.01)
	assert.InDelta(t, want, result.Distances["Sørenga sjøbad"], 1e-9)
	assert.NotContains(t, result.Distances, "Huk")

	for _, km := range result.Distances {
		assert.LessOrEqual(t, km, 5.0)
	}
}

func TestFilter_ZeroDistanceExcludesNothing(t *testing.T) {
	cat := testCatalog()
	f := newOrchestratorFixture(t, cat)
	sess := newTestSession(cat)
	_, _ = sess.SetPosition(osloCentre)

	result, err := f.orch.Filter(context.Background(), sess, models.Criteria{MaxDistanceKm: 0, TempMax: 30})
	require.NoError(t, err)

	assert.Len(t, result.Locations, cat.Len())
	assert.NotContains(t, result.Applied, SubsetDistance)
}

func TestFilter_Temperature(t *testing.T) {
	cat := testCatalog()

	setup := func(t *testing.T) orchestratorFixture {
		f := newOrchestratorFixture(t, cat)
		f.ocean.set(huk, oceanAt("2024-03-15T16:00:00Z", 18.0), nil)
		f.ocean.set(sorenga, oceanAt("2024-03-15T16:00:00Z", 12.9), nil)
		f.ocean.set(operastranda, nil, errors.New("HTTP 503"))
		f.ocean.set(korsvika, oceanAt("2024-03-15T15:00:00Z", 14.0), nil)
		return f
	}

	t.Run("inclusive range", func(t *testing.T) {
		f := setup(t)
		sess := newTestSession(cat)
		sess.SetConnected(true)

		result, err := f.orch.Filter(context.Background(), sess, models.Criteria{TempMin: 12, TempMax: 18})
		require.NoError(t, err)

		assert.Equal(t, []string{"Huk", "Sørenga sjøbad"}, names(result.Locations))
		assert.Equal(t, []string{SubsetFacilities, SubsetTemperature}, result.Applied)
		assert.Contains(t, result.Failures, "Operastranda")
		assert.Contains(t, result.Failures, "Korsvika")
		assert.Len(t, result.Failures, 2)
	})

	t.Run("readings are truncated", func(t *testing.T) {
		f := setup(t)
		sess := newTestSession(cat)
		sess.SetConnected(true)

		// 12.9 counts as 12
		result, err := f.orch.Filter(context.Background(), sess, models.Criteria{TempMin: 13, TempMax: 30})
		require.NoError(t, err)
		assert.Equal(t, []string{"Huk"}, names(result.Locations))
	})

	t.Run("fetches once per session", func(t *testing.T) {
		f := setup(t)
		sess := newTestSession(cat)
		sess.SetConnected(true)

		for i := 0; i < 3; i++ {
			_, err := f.orch.Filter(context.Background(), sess, models.Criteria{TempMin: 0, TempMax: 30})
			require.NoError(t, err)
		}

		for _, loc := range cat.All() {
			assert.Equal(t, 1, f.ocean.callsFor(loc), loc.Name)
		}
		assert.Equal(t, Failed, sess.Ocean.Status("Operastranda").Status)
		assert.Equal(t, Done, sess.Ocean.Status("Huk").Status)

		other := newTestSession(cat)
		other.SetConnected(true)
		_, err := f.orch.Filter(context.Background(), other, models.Criteria{TempMin: 0, TempMax: 30})
		require.NoError(t, err)
		assert.Equal(t, 2, f.ocean.callsFor(huk), "a new session fetches again")

		stats := f.orch.GetStats()
		assert.Equal(t, 4, stats["filter_runs"])
		assert.Equal(t, 6, stats["fetch_success"])
		assert.Equal(t, 2, stats["fetch_failure"])
	})
}

func TestFilter_BreakerRefusalSkipsTemperature(t *testing.T) {
	cat := testCatalog()
	f := newOrchestratorFixture(t, cat)
	f.ocean.set(huk, oceanAt("2024-03-15T16:00:00Z", 18.0), nil)
	f.ocean.set(sorenga, oceanAt("2024-03-15T16:00:00Z", 8.0), nil)
	f.ocean.set(operastranda, nil, fmt.Errorf("failed to fetch ocean forecast: %w", gobreaker.ErrOpenState))
	f.ocean.set(korsvika, oceanAt("2024-03-15T16:00:00Z", 14.0), nil)

	sess := newTestSession(cat)
	sess.SetConnected(true)
	criteria := models.Criteria{TempMin: 10, TempMax: 20}

	result, err := f.orch.Filter(context.Background(), sess, criteria)
	require.NoError(t, err)
	assert.Equal(t, []string{SubsetFacilities}, result.Applied)
	assert.Equal(t, names(cat.All()), names(result.Locations))
	assert.Contains(t, result.Failures, "Operastranda")
	assert.Equal(t, NotStarted, sess.Ocean.Status("Operastranda").Status)

	// Once the breaker lets calls through again the same session recovers.
	f.ocean.set(operastranda, oceanAt("2024-03-15T16:00:00Z", 16.0), nil)

	result, err = f.orch.Filter(context.Background(), sess, criteria)
	require.NoError(t, err)
	assert.Equal(t, []string{SubsetFacilities, SubsetTemperature}, result.Applied)
	assert.Equal(t, []string{"Huk", "Operastranda", "Korsvika"}, names(result.Locations))
	assert.Equal(t, 2, f.ocean.callsFor(operastranda))
	assert.Equal(t, 1, f.ocean.callsFor(huk))
}

func TestFilter_AbortedSessionDoesNotStarveOthers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"properties": {"timeseries": [
			{"time": "2024-03-15T16:00:00Z", "data": {"instant": {"details": {"sea_water_temperature": 17.4}}}}
		]}}`))
	}))
	defer server.Close()

	ocean := client.NewOceanForecastClient(server.URL, client.ClientConfig{
		Timeout:        2 * time.Second,
		RetryDelay:     time.Millisecond,
		Multiplier:     2,
		Threshold:      3,
		BreakerTimeout: time.Minute,
		UserAgent:      "swimspot-test/1.0",
	}, zaptest.NewLogger(t))

	cat := testCatalog()
	orch := NewOrchestrator(cat, ocean, fakeWeather{newFakeSeries[models.WeatherEntry]()}, testClock, 4, zaptest.NewLogger(t))

	aborted := newTestSession(cat)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, loc := range cat.All() {
		_, err := orch.OceanTimeseries(ctx, aborted, loc)
		require.ErrorIs(t, err, context.Canceled)
	}
	assert.Equal(t, "closed", ocean.BreakerState())
	assert.Equal(t, map[FetchStatus]int{}, aborted.Ocean.Counts())

	healthy := newTestSession(cat)
	healthy.SetConnected(true)
	result, err := orch.Filter(context.Background(), healthy, models.Criteria{TempMin: 0, TempMax: 30})
	require.NoError(t, err)
	assert.Equal(t, names(cat.All()), names(result.Locations))
	assert.Empty(t, result.Failures)
	assert.Equal(t, []string{SubsetFacilities, SubsetTemperature}, result.Applied)
}

func TestFilter_AllSubsetsCombined(t *testing.T) {
	cat := testCatalog()
	f := newOrchestratorFixture(t, cat)
	for _, loc := range cat.All() {
		f.ocean.set(loc, oceanAt("2024-03-15T16:00:00Z", 16.0), nil)
	}
	f.ocean.set(sorenga, oceanAt("2024-03-15T16:00:00Z", 9.0), nil)

	sess := newTestSession(cat)
	sess.SetConnected(true)
	_, _ = sess.SetPosition(osloCentre)

	result, err := f.orch.Filter(context.Background(), sess, models.Criteria{
		MaxDistanceKm: 10,
		Facilities:    []models.Facility{models.FacilityToilet},
		TempMin:       10,
		TempMax:       20,
	})
	require.NoError(t, err)

	// Korsvika is too far, Sørenga too cold.
	assert.Equal(t, []string{"Huk", "Operastranda"}, names(result.Locations))
	assert.ElementsMatch(t, []string{SubsetFacilities, SubsetDistance, SubsetTemperature}, result.Applied)
	assert.Empty(t, result.Failures)
}

func TestFilter_ResultIsAlwaysWithinCatalog(t *testing.T) {
	cat := catalog.Default()
	f := newOrchestratorFixture(t, cat)
	for i, loc := range cat.All() {
		f.ocean.set(loc, oceanAt("2024-03-15T16:00:00Z", float64(i%25)), nil)
	}

	sess := newTestSession(cat)
	sess.SetConnected(true)
	_, _ = sess.SetPosition(osloCentre)

	for _, dist := range []float64{0, 1, 5, 15, 500} {
		for _, fac := range append([]models.Facility{""}, models.AllFacilities...) {
			criteria := models.Criteria{MaxDistanceKm: dist, TempMin: 3, TempMax: 17}
			if fac != "" {
				criteria.Facilities = []models.Facility{fac}
			}

			result, err := f.orch.Filter(context.Background(), sess, criteria)
			require.NoError(t, err)

			for _, loc := range result.Locations {
				got, ok := cat.ByName(loc.Name)
				require.True(t, ok, "%s is not in the catalog", loc.Name)
				assert.Equal(t, got, loc)
				assert.True(t, loc.HasAll(criteria.Facilities))
			}
		}
	}
}

func TestFilter_InvalidCriteria(t *testing.T) {
	cat := testCatalog()
	f := newOrchestratorFixture(t, cat)

	tests := []struct {
		name     string
		criteria models.Criteria
	}{
		{"negative distance", models.Criteria{MaxDistanceKm: -1, TempMax: 30}},
		{"empty temperature range", models.Criteria{TempMin: 20, TempMax: 10}},
		{"unknown facility", models.Criteria{Facilities: []models.Facility{"sauna"}, TempMax: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := newTestSession(cat)
			_, err := f.orch.Filter(context.Background(), sess, tt.criteria)
			assert.ErrorIs(t, err, ErrInvalidCriteria)
			assert.Len(t, sess.Displayed(), cat.Len(), "displayed list is untouched")
		})
	}
}

func TestFilter_CancelledContext(t *testing.T) {
	cat := testCatalog()
	f := newOrchestratorFixture(t, cat)
	f.ocean.block = true

	sess := newTestSession(cat)
	sess.SetConnected(true)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := f.orch.Filter(ctx, sess, models.Criteria{TempMax: 30})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	for _, loc := range cat.All() {
		assert.NotEqual(t, Failed, sess.Ocean.Status(loc.Name).Status, loc.Name)
	}
}

func TestPrefetch(t *testing.T) {
	cat := testCatalog()
	f := newOrchestratorFixture(t, cat)
	for _, loc := range cat.All() {
		f.ocean.set(loc, oceanAt("2024-03-15T16:00:00Z", 15), nil)
		f.weather.set(loc, weatherAt("2024-03-15T16:00:00Z", 21, "clearsky_day"), nil)
	}

	sess := newTestSession(cat)
	require.NoError(t, f.orch.Prefetch(context.Background(), sess))
	assert.Zero(t, f.ocean.totalCalls()+f.weather.totalCalls(), "offline prefetch is a no-op")

	sess.SetConnected(true)
	require.NoError(t, f.orch.Prefetch(context.Background(), sess))
	require.NoError(t, f.orch.Prefetch(context.Background(), sess))

	assert.Equal(t, cat.Len(), f.ocean.totalCalls())
	assert.Equal(t, cat.Len(), f.weather.totalCalls())
	assert.Equal(t, map[FetchStatus]int{Done: cat.Len()}, sess.Weather.Counts())
}
