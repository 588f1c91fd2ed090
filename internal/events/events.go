package events

import (
	"shapetrainer/internal/stats"
	"sync"
	"time"
)

type Kind string

const (
	KindPhase  = Kind("phase")
	KindTick   = Kind("tick")
	KindSpawn  = Kind("spawn")
	KindHit    = Kind("hit")
	KindMiss   = Kind("miss")
	KindEffect = Kind("effect")
)

type MissKind string

const (
	MissClick = MissKind("click")
	MissShape = MissKind("shape")
)

// Event is a notice about something the engine just did.
type Event struct {
	Kind       Kind
	At         time.Time
	Phase      string
	From       string
	ShapeID    int
	ShapeKind  string
	SizeTier   string
	ReactionMs int64
	Quality    stats.Quality
	Miss       MissKind
	Stats      *stats.SessionStats
}

// Bus carries engine events to a single consumer. Publishing never blocks.
type Bus struct {
	mu      sync.Mutex
	closed  bool
	dropped int
	Events  chan Event
}

func NewBus() *Bus {
	return &Bus{
		Events: make(chan Event, 64),
	}
}

// Publish queues ev, dropping it if the buffer is full or the bus is closed.
func (b *Bus) Publish(ev Event) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return false
	}
	select {
	case b.Events <- ev:
		return true
	default:
		b.dropped++
		return false
	}
}

// Dropped reports how many events were discarded because the buffer was full.
func (b *Bus) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}

// Close ends the stream. Safe to call more than once.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.Events)
}
