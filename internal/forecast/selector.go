// Package forecast picks the timeseries entry that describes a given calendar
// day and hour.
package forecast

import (
	"strconv"
	"strings"
	"time"

	"github.com/bobby-s-dev/swimspot/internal/models"
)

// NoData is rendered in place of a reading that is not available.
const NoData = "-"

// Target identifies one hour of one calendar day. Day is formatted YYYY-MM-DD.
type Target struct {
	Day  string
	Hour int
}

// Clock supplies wall-clock time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// Now targets the clock's current day and hour, in the clock's own location.
func Now(clock Clock) Target {
	now := clock.Now()
	return Target{Day: now.Format(time.DateOnly), Hour: now.Hour()}
}

// At targets the given hour of the clock's current day.
func At(clock Clock, hour int) Target {
	return Target{Day: clock.Now().Format(time.DateOnly), Hour: hour}
}

// Select scans entries and returns the data of the last entry whose timestamp
// falls on target.Day at target.Hour. The boolean is false when nothing matched.
//
// The upstream timestamps have a fixed UTC layout, so day and hour are read by
// splitting the string rather than parsing it. Entries with a timestamp that
// does not split cleanly are skipped.
func Select[T any](entries []models.TimeSeriesEntry[T], target Target) (T, bool) {
	var (
		match T
		found bool
	)
	for _, entry := range entries {
		day, hour, ok := splitTimestamp(entry.Time)
		if !ok {
			continue
		}
		if day == target.Day && hour == target.Hour {
			match = entry.Data
			found = true
		}
	}
	return match, found
}

func splitTimestamp(ts string) (string, int, bool) {
	day, clock, ok := strings.Cut(ts, "T")
	if !ok || day == "" {
		return "", 0, false
	}
	hh, _, _ := strings.Cut(clock, ":")
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return "", 0, false
	}
	return day, hour, true
}

// FormatFloat renders an optional reading with one decimal, or NoData.
func FormatFloat(v *float64) string {
	if v == nil {
		return NoData
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}
