package players

import (
	"shapetrainer/internal/utility"
	"strings"
	"sync"
	"time"
)

const maxNameLength = 24

type Store struct {
	mu      sync.Mutex
	players map[string]*Player
}

func NewStore() *Store {
	return &Store{
		players: make(map[string]*Player),
	}
}

// Add registers a player, replacing any previous entry with the same id.
func (s *Store) Add(id string, name string) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	player := &Player{ID: id, Name: CleanName(name), Color: utility.RandomColorHex(), JoinedAt: time.Now()}
	s.players[id] = player
	return player
}

func (s *Store) Get(id string) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.players[id]
}

func (s *Store) Rename(id string, name string) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, e := s.players[id]; e {
		p.Name = CleanName(name)
		return p
	}
	return nil
}

// CleanName trims and shortens a display name, falling back to "Player".
func CleanName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Player"
	}
	if r := []rune(name); len(r) > maxNameLength {
		name = string(r[:maxNameLength])
	}
	return name
}
