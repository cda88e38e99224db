package services

import (
	"context"
	"testing"
	"time"

	"github.com/bobby-s-dev/swimspot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSession_PositionIsSetOnce(t *testing.T) {
	sess := NewSession(testNow, models.Criteria{}, nil)

	_, ok := sess.Position()
	assert.False(t, ok)

	accepted, err := sess.SetPosition(osloCentre)
	require.NoError(t, err)
	assert.True(t, accepted)

	accepted, err = sess.SetPosition(models.Coordinate{Latitude: 63.43, Longitude: 10.39})
	require.NoError(t, err)
	assert.False(t, accepted)

	pos, ok := sess.Position()
	require.True(t, ok)
	assert.Equal(t, osloCentre, pos)
}

func TestSession_RejectsImpossiblePosition(t *testing.T) {
	sess := NewSession(testNow, models.Criteria{}, nil)

	_, err := sess.SetPosition(models.Coordinate{Latitude: 91, Longitude: 10})
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, ok := sess.Position()
	assert.False(t, ok)
}

func TestSession_Hour(t *testing.T) {
	sess := NewSession(testNow, models.Criteria{}, nil)
	assert.Equal(t, 16, sess.Hour(), "defaults to the creation hour")

	require.NoError(t, sess.SetHour(0))
	require.NoError(t, sess.SetHour(23))
	assert.Equal(t, 23, sess.Hour())

	assert.ErrorIs(t, sess.SetHour(24), ErrInvalidHour)
	assert.ErrorIs(t, sess.SetHour(-1), ErrInvalidHour)
	assert.Equal(t, 23, sess.Hour())
}

func TestSession_Connectivity(t *testing.T) {
	sess := NewSession(testNow, models.Criteria{}, nil)
	assert.False(t, sess.Connected())

	assert.False(t, sess.SetConnected(true))
	assert.True(t, sess.SetConnected(true))
	assert.True(t, sess.Connected())
}

func TestSession_Search(t *testing.T) {
	sess := NewSession(testNow, models.Criteria{}, []models.Location{huk, sorenga, operastranda, korsvika})

	assert.Equal(t, []string{"Sørenga sjøbad"}, names(sess.Search("SJØBAD")))
	assert.Equal(t, []string{"Huk", "Korsvika"}, names(sess.Search("K")))
	assert.Equal(t, []string{"Operastranda"}, names(sess.Search("stranda")))
	assert.Len(t, sess.Search(""), 4)
	assert.Empty(t, sess.Search("Bystranda"))
	assert.Equal(t, "Bystranda", sess.SearchText())
}

func TestSession_View(t *testing.T) {
	cat := testCatalog()
	sess := NewSession(testNow, models.Criteria{MaxDistanceKm: 15, TempMax: 30}, cat.All())
	_, _ = sess.SetPosition(osloCentre)
	sess.SetConnected(true)

	ocean := newFakeSeries[models.OceanEntry]()
	ocean.set(huk, oceanAt("2024-03-15T16:00:00Z", 18), nil)
	o := NewOrchestrator(cat, fakeOcean{ocean}, fakeWeather{newFakeSeries[models.WeatherEntry]()}, testClock, 2, zaptest.NewLogger(t))
	_, _ = o.OceanTimeseries(context.Background(), sess, huk)
	_, _ = o.OceanTimeseries(context.Background(), sess, korsvika)

	view := sess.View()
	assert.Equal(t, sess.ID, view.ID)
	require.NotNil(t, view.Position)
	assert.Equal(t, osloCentre, *view.Position)
	assert.True(t, view.Connected)
	assert.Equal(t, 16, view.Hour)
	assert.Equal(t, []string{"Huk", "Sørenga sjøbad", "Operastranda", "Korsvika"}, view.Displayed)
	assert.Equal(t, map[string]FetchStatus{"Huk": Done, "Korsvika": Failed}, view.OceanFetches)
	assert.Empty(t, view.WeatherFetches)
	assert.Equal(t, testNow, view.CreatedAt)
	assert.WithinDuration(t, testNow, view.LastSeen, time.Second)
}

func TestSessionStore_Lifecycle(t *testing.T) {
	clock := &manualClock{now: testNow}
	store := NewSessionStore(testCatalog(), models.Criteria{MaxDistanceKm: 15, TempMax: 30}, 10*time.Minute, 10, clock, zaptest.NewLogger(t))

	sess := store.Create()
	assert.NotEmpty(t, sess.ID)
	assert.Len(t, sess.Displayed(), 4)
	assert.Equal(t, 15.0, sess.Criteria().MaxDistanceKm)

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	require.NoError(t, store.Delete(sess.ID))
	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(sess.ID), ErrSessionNotFound)
}

func TestSessionStore_ExpiresIdleSessions(t *testing.T) {
	clock := &manualClock{now: testNow}
	store := NewSessionStore(testCatalog(), models.Criteria{}, 10*time.Minute, 10, clock, zaptest.NewLogger(t))

	idle := store.Create()
	active := store.Create()

	clock.Advance(6 * time.Minute)
	_, err := store.Get(active.ID)
	require.NoError(t, err)

	clock.Advance(6 * time.Minute)
	_, err = store.Get(idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	clock.Advance(5 * time.Minute)
	assert.Equal(t, 1, store.Cleanup())
	assert.Equal(t, 0, store.Len())

	stats := store.GetStats()
	assert.Equal(t, 2, stats["created"])
	assert.Equal(t, 2, stats["expired"])
}

func TestSessionStore_EvictsOldestWhenFull(t *testing.T) {
	clock := &manualClock{now: testNow}
	store := NewSessionStore(testCatalog(), models.Criteria{}, time.Hour, 2, clock, zaptest.NewLogger(t))

	first := store.Create()
	clock.Advance(time.Second)
	second := store.Create()
	clock.Advance(time.Second)
	_, err := store.Get(first.ID)
	require.NoError(t, err)

	clock.Advance(time.Second)
	third := store.Create()

	assert.Equal(t, 2, store.Len())
	_, err = store.Get(second.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.Get(first.ID)
	assert.NoError(t, err)
	_, err = store.Get(third.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, store.GetStats()["evicted"])
}
