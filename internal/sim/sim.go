// Package sim plays a whole session headlessly against a scripted player on
// a manual clock.
package sim

import (
	"math/rand"
	"shapetrainer/internal/clock"
	"shapetrainer/internal/session"
	"shapetrainer/internal/shapes"
	"shapetrainer/internal/stats"
	"time"
)

const idleStep = 50 * time.Millisecond

// Bot describes how the scripted player behaves.
type Bot struct {
	MinReaction time.Duration
	MaxReaction time.Duration
	MissRate    float64 // chance of a stray click before each shape
	IgnoreRate  float64 // chance of letting a shape expire
}

func DefaultBot() Bot {
	return Bot{
		MinReaction: 180 * time.Millisecond,
		MaxReaction: 650 * time.Millisecond,
		MissRate:    0.1,
		IgnoreRate:  0.05,
	}
}

type Result struct {
	Stats      stats.SessionStats `json:"stats"`
	ShapesSeen int                `json:"shapesSeen"`
	Clicks     int                `json:"clicks"`
	Elapsed    time.Duration      `json:"elapsed"`
}

// Run plays one session from start to the end of its timer. The same seed
// and bot always produce the same result.
func Run(cfg session.Config, seed int64, bot Bot) Result {
	start := time.Unix(0, 0).UTC()
	m := clock.NewManual(start)
	eng := session.NewEngine(cfg, m, shapes.NewSpawner(seed), nil)
	rng := rand.New(rand.NewSource(seed))

	var res Result
	lastShape := 0
	eng.Start()
	for {
		st := eng.State()
		if st.Phase == session.PhaseFinished || st.Phase == session.PhaseIdle {
			break
		}
		if st.Phase != session.PhasePlaying || st.Shape == nil {
			m.Advance(idleStep)
			continue
		}

		shape := *st.Shape
		if shape.ID != lastShape {
			lastShape = shape.ID
			res.ShapesSeen++
		}
		if rng.Float64() < bot.MissRate {
			b := eng.Snapshot().Bounds
			eng.OnAreaClick(rng.Float64()*b.Width, rng.Float64()*b.Height)
			res.Clicks++
		}
		if rng.Float64() < bot.IgnoreRate {
			m.Advance(eng.Config().ShapeTimeout)
			continue
		}

		m.Advance(bot.reaction(rng))
		if cur := eng.State(); cur.Phase == session.PhasePlaying && cur.Shape != nil && cur.Shape.ID == shape.ID {
			eng.OnShapeClick(m.Now())
			res.Clicks++
		}
	}

	res.Stats = eng.State().Stats()
	res.Elapsed = m.Now().Sub(start)
	return res
}

func (b Bot) reaction(rng *rand.Rand) time.Duration {
	if b.MaxReaction <= b.MinReaction {
		return b.MinReaction
	}
	return b.MinReaction + time.Duration(rng.Int63n(int64(b.MaxReaction-b.MinReaction)))
}
