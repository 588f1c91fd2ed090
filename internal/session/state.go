package session

import (
	"shapetrainer/internal/effects"
	"shapetrainer/internal/shapes"
	"shapetrainer/internal/stats"
	"strconv"
	"time"
)

type Phase string

const (
	PhaseIdle      = Phase("idle")
	PhaseCountdown = Phase("countdown")
	PhasePlaying   = Phase("playing")
	PhaseFinished  = Phase("finished")
)

// GoLabel is shown once the countdown reaches zero.
const GoLabel = "Go!"

type Config struct {
	SessionDuration int // seconds
	CountdownSecs   int
	ShapeTimeout    time.Duration
	RespawnDelay    time.Duration
	EffectTTL       time.Duration
	Bounds          shapes.Bounds
}

func DefaultConfig() Config {
	return Config{
		SessionDuration: 300,
		CountdownSecs:   3,
		ShapeTimeout:    3000 * time.Millisecond,
		RespawnDelay:    500 * time.Millisecond,
		EffectTTL:       effects.DefaultTTL,
		Bounds:          shapes.Bounds{Width: 600, Height: 400},
	}
}

// normalized swaps timings that cannot drive a session for the defaults.
// A zero shape timeout would expire and respawn without time passing.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.SessionDuration <= 0 {
		c.SessionDuration = def.SessionDuration
	}
	if c.CountdownSecs < 0 {
		c.CountdownSecs = def.CountdownSecs
	}
	if c.ShapeTimeout <= 0 {
		c.ShapeTimeout = def.ShapeTimeout
	}
	if c.RespawnDelay < 0 {
		c.RespawnDelay = def.RespawnDelay
	}
	if c.EffectTTL < 0 {
		c.EffectTTL = def.EffectTTL
	}
	return c
}

const tickInterval = 1 * time.Second

// State is one immutable view of a session. Transitions return a new value
// and never modify the receiver or its slices.
type State struct {
	Phase         Phase
	Countdown     int
	TimeRemaining int
	Shape         *shapes.LiveShape
	Effect        *effects.Effect
	Samples       []int64
	Counters      stats.Counters
	effectSeq     int
}

// Stats recomputes the derived statistics from samples and counters.
func (s State) Stats() stats.SessionStats {
	return stats.Compute(s.Samples, s.Counters, s.TimeRemaining)
}

// Snapshot is what the presentation layer renders.
type Snapshot struct {
	Phase          Phase              `json:"phase"`
	Countdown      int                `json:"countdown"`
	CountdownLabel string             `json:"countdownLabel,omitempty"`
	Shape          *shapes.LiveShape  `json:"shape"`
	Effect         *effects.Effect    `json:"effect"`
	Stats          stats.SessionStats `json:"stats"`
	Bounds         shapes.Bounds      `json:"bounds"`
}

func (s State) Snapshot(bounds shapes.Bounds) Snapshot {
	snap := Snapshot{
		Phase:     s.Phase,
		Countdown: s.Countdown,
		Stats:     s.Stats(),
		Bounds:    bounds,
	}
	if s.Phase == PhaseCountdown {
		snap.CountdownLabel = CountdownLabel(s.Countdown)
	}
	if s.Shape != nil {
		shape := *s.Shape
		snap.Shape = &shape
	}
	if s.Effect != nil {
		effect := *s.Effect
		snap.Effect = &effect
	}
	return snap
}

// CountdownLabel renders a countdown value, with zero shown as GoLabel.
func CountdownLabel(n int) string {
	if n <= 0 {
		return GoLabel
	}
	return strconv.Itoa(n)
}
