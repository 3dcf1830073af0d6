package state

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/dravidKumar007/hair-Cut-Model/internal/capture"
)

type entry struct {
	state   ViewState
	camera  *capture.Camera
	touched time.Time
}

// Store keeps per-session view state and camera handles in memory. Sessions
// are transient: an idle session past its TTL is swept away and its camera,
// if still open, is closed so no acquisition outlives its owner.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*entry
	sweeper  *cron.Cron
	logger   zerolog.Logger
}

// NewStore creates a session store with the given idle TTL.
func NewStore(ttl time.Duration, logger zerolog.Logger) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]*entry),
		logger:   logger,
	}
}

// StartSweeper begins periodic teardown of idle sessions.
func (s *Store) StartSweeper() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sweeper != nil {
		return
	}
	c := cron.New()
	_, _ = c.AddFunc("@every 1m", func() {
		if n := s.Sweep(time.Now()); n > 0 {
			s.logger.Debug().Int("sessions", n).Msg("state: swept idle sessions")
		}
	})
	c.Start()
	s.sweeper = c
}

// StopSweeper halts the sweeper and tears down every remaining session.
func (s *Store) StopSweeper() {
	s.mu.Lock()
	sweeper := s.sweeper
	s.sweeper = nil
	s.mu.Unlock()
	if sweeper != nil {
		<-sweeper.Stop().Done()
	}
	s.Sweep(time.Time{})
}

// State returns the current view state for the session, creating the session
// on first touch.
func (s *Store) State(id string) ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(id).state
}

// Apply runs a reducer action against the session and returns the new state.
func (s *Store) Apply(id string, a Action) ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.get(id)
	e.state = Apply(e.state, a)
	return e.state
}

// BeginSubmit claims the session's submission slot. It applies SubmitStarted
// and reports whether the claim succeeded; while a submission is loading,
// further claims are rejected without touching the state. The check and the
// transition happen under one lock so two concurrent submissions can never
// both be accepted.
func (s *Store) BeginSubmit(id string) (ViewState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.get(id)
	if e.state.Loading {
		return e.state, false
	}
	e.state = Apply(e.state, SubmitStarted{})
	return e.state, true
}

// Camera returns the session's camera handle, creating one on first use.
func (s *Store) Camera(id string) *capture.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.get(id)
	if e.camera == nil {
		e.camera = capture.NewCamera()
	}
	return e.camera
}

// ReplaceCamera swaps in a fresh camera for the session, closing whatever
// was there. Used to recover after a terminal camera error.
func (s *Store) ReplaceCamera(id string) *capture.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.get(id)
	if e.camera != nil {
		e.camera.Close()
	}
	e.camera = capture.NewCamera()
	return e.camera
}

// Sweep removes sessions idle since before now-TTL and closes their cameras.
// A zero now removes everything. It returns the number of sessions removed.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := now.Add(-s.ttl)
	removed := 0
	for id, e := range s.sessions {
		if !now.IsZero() && e.touched.After(cutoff) {
			continue
		}
		if e.camera != nil {
			e.camera.Close()
		}
		delete(s.sessions, id)
		removed++
	}
	return removed
}

// get must be called with the mutex held.
func (s *Store) get(id string) *entry {
	e, ok := s.sessions[id]
	if !ok {
		e = &entry{state: NewViewState()}
		s.sessions[id] = e
	}
	e.touched = time.Now()
	return e
}
