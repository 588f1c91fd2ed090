package effects

import (
	"fmt"
	"shapetrainer/internal/stats"
	"time"
)

type Kind string

const (
	KindHit  = Kind("hit")
	KindMiss = Kind("miss")
)

// DefaultTTL is how long a feedback banner stays visible.
const DefaultTTL = 2000 * time.Millisecond

// Effect is a position-tagged feedback banner. Only the most recent one is
// ever displayed.
type Effect struct {
	ID        int           `json:"id"`
	Kind      Kind          `json:"kind"`
	X         float64       `json:"x"`
	Y         float64       `json:"y"`
	Label     string        `json:"label"`
	Quality   stats.Quality `json:"quality,omitempty"`
	Color     string        `json:"color"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

// Expired reports whether the effect should no longer be shown at now.
func (e Effect) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

func NewHit(id int, x, y float64, reactionMs int64, at time.Time, ttl time.Duration) Effect {
	q := stats.Classify(reactionMs)
	return Effect{
		ID:        id,
		Kind:      KindHit,
		X:         x,
		Y:         y,
		Label:     HitLabel(q, reactionMs),
		Quality:   q,
		Color:     QualityColor(q),
		ExpiresAt: at.Add(ttl),
	}
}

func NewMiss(id int, x, y float64, at time.Time, ttl time.Duration) Effect {
	return Effect{
		ID:        id,
		Kind:      KindMiss,
		X:         x,
		Y:         y,
		Label:     "MISS!",
		Color:     missColor,
		ExpiresAt: at.Add(ttl),
	}
}

// HitLabel is the banner text for a successful click.
func HitLabel(q stats.Quality, reactionMs int64) string {
	switch q {
	case stats.Perfect:
		return fmt.Sprintf("PERFECT! %dms", reactionMs)
	case stats.Fast:
		return fmt.Sprintf("FAST! %dms", reactionMs)
	default:
		return fmt.Sprintf("GOOD %dms", reactionMs)
	}
}

const missColor = "#ef4444"

func QualityColor(q stats.Quality) string {
	switch q {
	case stats.Perfect:
		return "#22c55e"
	case stats.Fast:
		return "#eab308"
	default:
		return "#3b82f6"
	}
}
