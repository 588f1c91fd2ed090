package sessions

import (
	"fmt"
	"shapetrainer/internal/broadcast"
	"shapetrainer/internal/clock"
	"shapetrainer/internal/events"
	"shapetrainer/internal/session"
	"shapetrainer/internal/shapes"
	"shapetrainer/internal/wshub"
	"sync"
	"time"
)

const staleTTL = 1 * time.Hour

// Hook observes every event of every session, in order per session.
type Hook func(*Session, events.Event)

type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	cfg      session.Config
	sched    clock.Scheduler
	seed     int64
	created  int64
	hooks    []Hook
}

// NewStore creates an empty store. A zero seed seeds each spawner from the clock.
func NewStore(cfg session.Config, sched clock.Scheduler, seed int64) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		sched:    sched,
		seed:     seed,
	}
	go s.sweepStale()
	return s
}

// OnEvent registers a hook for sessions created afterwards.
func (s *Store) OnEvent(h Hook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, h)
}

func (s *Store) Config() session.Config {
	return s.cfg
}

func (s *Store) Create(playerID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Try up to 10 times to generate a unique code
	for range 10 {
		code, err := GenerateCode()
		if err != nil {
			return nil, fmt.Errorf("generating session code: %w", err)
		}
		if _, exists := s.sessions[code]; exists {
			continue
		}

		s.created++
		bus := events.NewBus()
		engine := session.NewEngine(s.cfg, s.sched, shapes.NewSpawner(s.nextSeed()), bus)
		now := s.sched.Now()
		sess := &Session{
			Code:        code,
			PlayerID:    playerID,
			Engine:      engine,
			Bus:         bus,
			Broadcaster: broadcast.NewBroadcaster(),
			Hub:         wshub.NewHub(),
			CreatedAt:   now,
			lastActive:  now,
		}
		s.sessions[code] = sess

		hooks := append([]Hook(nil), s.hooks...)
		go dispatch(sess, hooks)
		return sess, nil
	}
	return nil, fmt.Errorf("failed to generate unique session code after 10 attempts")
}

func (s *Store) nextSeed() int64 {
	if s.seed != 0 {
		return s.seed + s.created
	}
	return time.Now().UnixNano() + s.created
}

func dispatch(sess *Session, hooks []Hook) {
	for ev := range sess.Bus.Events {
		for _, h := range hooks {
			h(sess, ev)
		}
	}
}

func (s *Store) Get(code string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[code]
}

// Delete stops the session's engine and disconnects its observers.
func (s *Store) Delete(code string) {
	s.mu.Lock()
	sess, ok := s.sessions[code]
	delete(s.sessions, code)
	s.mu.Unlock()
	if ok {
		shutdown(sess)
	}
}

func shutdown(sess *Session) {
	sess.Engine.Stop()
	sess.Bus.Close()
	sess.Broadcaster.CloseAll()
	sess.Hub.CloseAll()
}

func (s *Store) List() []*Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		list = append(list, sess)
	}
	return list
}

// SweepStale removes sessions idle for longer than ttl that are not mid-game.
func (s *Store) SweepStale(now time.Time, ttl time.Duration) int {
	s.mu.Lock()
	var stale []*Session
	for code, sess := range s.sessions {
		if now.Sub(sess.LastActive()) <= ttl {
			continue
		}
		switch sess.Engine.Phase() {
		case session.PhaseCountdown, session.PhasePlaying:
			continue
		}
		stale = append(stale, sess)
		delete(s.sessions, code)
	}
	s.mu.Unlock()

	for _, sess := range stale {
		shutdown(sess)
	}
	return len(stale)
}

func (s *Store) sweepStale() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		s.SweepStale(s.sched.Now(), staleTTL)
	}
}
