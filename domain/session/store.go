// Package session keeps one navigation shell per visitor in memory, keyed by
// an opaque cookie value.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tarush10000/Sooru-Demo/domain/navigation"
	"github.com/tarush10000/Sooru-Demo/pkg/logger"
	"github.com/tarush10000/Sooru-Demo/pkg/metrics"
)

// Session is one visitor's state. The shell is not safe for concurrent use,
// so access goes through Update and View.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	shell    *navigation.Shell
	lastSeen time.Time
}

// Update runs fn with exclusive access to the shell.
func (s *Session) Update(fn func(*navigation.Shell)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.shell)
}

// View is Update for read-only callers.
func (s *Session) View(fn func(*navigation.Shell)) {
	s.Update(fn)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// LastSeen returns the time of the last Get or Create.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LastSeen()) > ttl
}

// Store is a concurrency-safe in-memory session map with an idle TTL.
type Store struct {
	ttl time.Duration
	now func() time.Time
	log *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns an empty store.
func NewStore(ttl time.Duration, log *slog.Logger, opts ...Option) *Store {
	s := &Store{
		ttl:      ttl,
		now:      time.Now,
		log:      log.With(logger.Scope("session")),
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a new visit on the landing screen.
func (s *Store) Create() *Session {
	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		shell:     navigation.New(),
		lastSeen:  now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	s.log.Debug("session created", slog.String("id", sess.ID))
	return sess
}

// Get returns a live session and refreshes its idle timer. Expired sessions
// are treated as missing even before the sweeper removes them.
func (s *Store) Get(id string) (*Session, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}

	// Held across the expiry check and touch so Sweep cannot drop the
	// session in between.
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}

	now := s.now()
	if sess.expired(now, s.ttl) {
		return nil, false
	}
	sess.touch(now)
	return sess, true
}

// GetOrCreate returns the session for id, or a fresh one when id is unknown
// or expired. The bool reports whether a new session was created.
func (s *Store) GetOrCreate(id string) (*Session, bool) {
	if sess, ok := s.Get(id); ok {
		return sess, false
	}
	return s.Create(), true
}

// Delete drops a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	n := len(s.sessions)
	s.mu.Unlock()
	metrics.ActiveSessions.Set(float64(n))
}

// Len returns the number of sessions held, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// TTL returns the idle timeout.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Sweep removes sessions idle for longer than the TTL as of now and returns
// how many were removed.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.expired(now, s.ttl) {
			delete(s.sessions, id)
			removed++
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	if removed > 0 {
		metrics.SessionsExpired.Add(float64(removed))
		s.log.Info("expired sessions swept",
			slog.Int("removed", removed),
			slog.Int("remaining", n))
	}
	return removed
}
