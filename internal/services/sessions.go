package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/bobby-s-dev/swimspot/internal/catalog"
	"github.com/bobby-s-dev/swimspot/internal/forecast"
	"github.com/bobby-s-dev/swimspot/internal/models"
	"go.uber.org/zap"
)

// SessionStore keeps live sessions in memory. Sessions idle for longer than
// the TTL are dropped by Cleanup or on lookup.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	catalog  *catalog.Catalog
	defaults models.Criteria
	clock    forecast.Clock
	logger   *zap.Logger
	ttl      time.Duration
	maxSize  int

	created int
	expired int
	evicted int
}

func NewSessionStore(cat *catalog.Catalog, defaults models.Criteria, ttl time.Duration, maxSize int, clock forecast.Clock, logger *zap.Logger) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		catalog:  cat,
		defaults: defaults,
		clock:    clock,
		logger:   logger,
		ttl:      ttl,
		maxSize:  maxSize,
	}
}

// Create starts a session showing the whole catalog under the default criteria.
func (s *SessionStore) Create() *Session {
	sess := NewSession(s.clock.Now(), s.defaults, s.catalog.All())

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessions) >= s.maxSize {
		s.evictOldest()
	}
	s.sessions[sess.ID] = sess
	s.created++

	s.logger.Debug("Session created",
		zap.String("session", sess.ID),
		zap.Time("expires_at", sess.CreatedAt.Add(s.ttl)))

	return sess
}

// Get returns a live session and marks it as seen.
func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, exists := s.sessions[id]
	s.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	now := s.clock.Now()
	if now.Sub(sess.LastSeen()) > s.ttl {
		s.mu.Lock()
		if _, still := s.sessions[id]; still {
			delete(s.sessions, id)
			s.expired++
		}
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s expired", ErrSessionNotFound, id)
	}

	sess.Touch(now)
	return sess, nil
}

func (s *SessionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[id]; !exists {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(s.sessions, id)
	return nil
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionStore) evictOldest() {
	var oldestID string
	var oldestSeen time.Time

	for id, sess := range s.sessions {
		seen := sess.LastSeen()
		if oldestID == "" || seen.Before(oldestSeen) {
			oldestID = id
			oldestSeen = seen
		}
	}

	if oldestID != "" {
		delete(s.sessions, oldestID)
		s.evicted++
		s.logger.Debug("Evicted oldest session",
			zap.String("session", oldestID),
			zap.Time("last_seen", oldestSeen))
	}
}

// Cleanup removes expired sessions and returns how many were dropped.
func (s *SessionStore) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	expiredCount := 0

	for id, sess := range s.sessions {
		if now.Sub(sess.LastSeen()) > s.ttl {
			delete(s.sessions, id)
			expiredCount++
		}
	}
	s.expired += expiredCount

	if expiredCount > 0 {
		s.logger.Debug("Cleaned expired sessions",
			zap.Int("count", expiredCount))
	}

	return expiredCount
}

func (s *SessionStore) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"active_sessions": len(s.sessions),
		"created":         s.created,
		"expired":         s.expired,
		"evicted":         s.evicted,
		"max_size":        s.maxSize,
		"ttl":             s.ttl.String(),
	}
}
