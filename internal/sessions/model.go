package sessions

import (
	"shapetrainer/internal/broadcast"
	"shapetrainer/internal/events"
	"shapetrainer/internal/session"
	"shapetrainer/internal/wshub"
	"sync"
	"time"
)

// Session is one player's live game together with the channels that
// observe it.
type Session struct {
	Code        string
	PlayerID    string
	Engine      *session.Engine
	Bus         *events.Bus
	Broadcaster *broadcast.Broadcaster
	Hub         *wshub.Hub
	CreatedAt   time.Time

	mu         sync.Mutex
	lastActive time.Time
	archiveID  string
}

// Touch records player activity.
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = now
}

func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// ArchiveID is the database id of the current run, empty when not archived.
func (s *Session) ArchiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.archiveID
}

func (s *Session) SetArchiveID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.archiveID = id
}
