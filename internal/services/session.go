package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bobby-s-dev/swimspot/internal/models"
	"github.com/google/uuid"
)

// Session holds everything derived for one user of the service: the first
// position fix, connectivity, the chosen forecast hour, the last filter and
// its result, and the per-location forecast fetches.
type Session struct {
	ID        string
	CreatedAt time.Time

	Ocean   *FetchTable[[]models.OceanEntry]
	Weather *FetchTable[[]models.WeatherEntry]

	mu        sync.RWMutex
	lastSeen  time.Time
	position  *models.Coordinate
	connected bool
	hour      int
	criteria  models.Criteria
	displayed []models.Location
	search    string
}

type SessionView struct {
	ID             string                 `json:"id"`
	CreatedAt      time.Time              `json:"created_at"`
	LastSeen       time.Time              `json:"last_seen"`
	Position       *models.Coordinate     `json:"position,omitempty"`
	Connected      bool                   `json:"connected"`
	Hour           int                    `json:"hour"`
	Criteria       models.Criteria        `json:"criteria"`
	Displayed      []string               `json:"displayed"`
	Search         string                 `json:"search"`
	OceanFetches   map[string]FetchStatus `json:"ocean_fetches"`
	WeatherFetches map[string]FetchStatus `json:"weather_fetches"`
}

func NewSession(now time.Time, criteria models.Criteria, displayed []models.Location) *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Ocean:     NewFetchTable[[]models.OceanEntry](),
		Weather:   NewFetchTable[[]models.WeatherEntry](),
		lastSeen:  now,
		hour:      now.Hour(),
		criteria:  criteria,
		displayed: displayed,
	}
}

func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) LastSeen() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeen
}

// SetPosition records the user's position. Only the first fix is kept; later
// calls report false and leave the position unchanged.
func (s *Session) SetPosition(c models.Coordinate) (bool, error) {
	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return false, fmt.Errorf("%w: %.6f,%.6f", ErrInvalidPosition, c.Latitude, c.Longitude)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.position != nil {
		return false, nil
	}
	s.position = &c
	return true, nil
}

func (s *Session) Position() (models.Coordinate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.position == nil {
		return models.Coordinate{}, false
	}
	return *s.position, true
}

// SetConnected records the connectivity signal and returns the previous value.
func (s *Session) SetConnected(connected bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.connected
	s.connected = connected
	return prev
}

func (s *Session) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

func (s *Session) SetHour(hour int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("%w: got %d", ErrInvalidHour, hour)
	}

	s.mu.Lock()
	s.hour = hour
	s.mu.Unlock()
	return nil
}

func (s *Session) Hour() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hour
}

func (s *Session) Criteria() models.Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.criteria
	c.Facilities = append([]models.Facility(nil), s.criteria.Facilities...)
	return c
}

// Displayed returns a copy of the current result list.
func (s *Session) Displayed() []models.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Location(nil), s.displayed...)
}

// Search stores text and returns the displayed locations whose name contains
// it, ignoring case. Empty text matches everything.
func (s *Session) Search(text string) []models.Location {
	s.mu.Lock()
	s.search = text
	displayed := s.displayed
	s.mu.Unlock()

	needle := strings.ToLower(text)
	out := make([]models.Location, 0, len(displayed))
	for _, loc := range displayed {
		if strings.Contains(strings.ToLower(loc.Name), needle) {
			out = append(out, loc)
		}
	}
	return out
}

func (s *Session) SearchText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.search
}

func (s *Session) replaceResult(criteria models.Criteria, locations []models.Location) {
	s.mu.Lock()
	s.criteria = criteria
	s.displayed = locations
	s.mu.Unlock()
}

func (s *Session) View() SessionView {
	s.mu.RLock()
	view := SessionView{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		LastSeen:  s.lastSeen,
		Connected: s.connected,
		Hour:      s.hour,
		Criteria:  s.criteria,
		Search:    s.search,
		Displayed: make([]string, 0, len(s.displayed)),
	}
	if s.position != nil {
		pos := *s.position
		view.Position = &pos
	}
	for _, loc := range s.displayed {
		view.Displayed = append(view.Displayed, loc.Name)
	}
	s.mu.RUnlock()

	view.OceanFetches = s.Ocean.Snapshot()
	view.WeatherFetches = s.Weather.Snapshot()
	return view
}
