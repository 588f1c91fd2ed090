package session

import (
	"shapetrainer/internal/effects"
	"shapetrainer/internal/events"
	"shapetrainer/internal/shapes"
	"shapetrainer/internal/stats"
	"time"
)

// Start resets every counter and enters the countdown, whatever the phase.
func Start(s State, cfg Config, now time.Time) Step {
	next := State{
		Phase:         PhaseCountdown,
		Countdown:     cfg.CountdownSecs,
		TimeRemaining: cfg.SessionDuration,
		effectSeq:     s.effectSeq,
	}
	return Step{
		State: next,
		Commands: []Command{
			cancelAll(),
			schedule(TimerCountdown, tickInterval, TimerEvent{Kind: EventCountdownTick}),
		},
		Notices: []events.Event{phaseNotice(s.Phase, next, now)},
	}
}

// Stop returns to Idle and drops every pending timer. Counters are kept for
// display until the next Start.
func Stop(s State, now time.Time) Step {
	next := s
	next.Phase = PhaseIdle
	next.Countdown = 0
	next.Shape = nil
	next.Effect = nil
	step := Step{State: next, Commands: []Command{cancelAll()}}
	if s.Phase != PhaseIdle {
		step.Notices = append(step.Notices, phaseNotice(s.Phase, next, now))
	}
	return step
}

func ApplyCountdownTick(s State, cfg Config, now time.Time) Step {
	if s.Phase != PhaseCountdown {
		return noop(s)
	}
	next := s
	if s.Countdown > 0 {
		next.Countdown--
		return Step{
			State:    next,
			Commands: []Command{schedule(TimerCountdown, tickInterval, TimerEvent{Kind: EventCountdownTick})},
			Notices:  []events.Event{{Kind: events.KindTick, At: now, Phase: string(next.Phase)}},
		}
	}

	next.Phase = PhasePlaying
	next.TimeRemaining = cfg.SessionDuration
	return Step{
		State: next,
		Commands: []Command{
			schedule(TimerSession, tickInterval, TimerEvent{Kind: EventSessionTick}),
			spawnAfter(0),
		},
		Notices: []events.Event{phaseNotice(s.Phase, next, now)},
	}
}

func ApplySessionTick(s State, now time.Time) Step {
	if s.Phase != PhasePlaying {
		return noop(s)
	}
	next := s
	next.TimeRemaining--
	if next.TimeRemaining > 0 {
		return Step{
			State:    next,
			Commands: []Command{schedule(TimerSession, tickInterval, TimerEvent{Kind: EventSessionTick})},
			Notices:  []events.Event{{Kind: events.KindTick, At: now, Phase: string(next.Phase)}},
		}
	}

	next.TimeRemaining = 0
	next.Phase = PhaseFinished
	next.Shape = nil
	next.Effect = nil
	return Step{
		State:    next,
		Commands: []Command{cancelAll()},
		Notices:  []events.Event{phaseNotice(s.Phase, next, now)},
	}
}

// ApplySpawn installs shape as the live shape and arms its expiry.
func ApplySpawn(s State, cfg Config, shape shapes.LiveShape) Step {
	if s.Phase != PhasePlaying || s.Shape != nil {
		return noop(s)
	}
	next := s
	next.Shape = &shape
	return Step{
		State: next,
		Commands: []Command{
			schedule(TimerExpiry, cfg.ShapeTimeout, TimerEvent{Kind: EventShapeExpired, ShapeID: shape.ID}),
		},
		Notices: []events.Event{{
			Kind:      events.KindSpawn,
			At:        shape.SpawnedAt,
			Phase:     string(next.Phase),
			ShapeID:   shape.ID,
			ShapeKind: string(shape.Kind),
			SizeTier:  string(shape.Size),
		}},
	}
}

// ApplyShapeClick resolves a click on the live shape. The expiry is
// cancelled before anything else is scheduled.
func ApplyShapeClick(s State, cfg Config, at time.Time) Step {
	if s.Phase != PhasePlaying || s.Shape == nil {
		return noop(s)
	}
	shape := *s.Shape
	reaction := at.Sub(shape.SpawnedAt).Milliseconds()
	if reaction < 0 {
		reaction = 0
	}

	next := s
	next.Shape = nil
	next.Samples = append(s.Samples[:len(s.Samples):len(s.Samples)], reaction)
	next.Counters.TotalHits++
	next.Counters.CurrentStreak++
	if next.Counters.CurrentStreak > next.Counters.LongestStreak {
		next.Counters.LongestStreak = next.Counters.CurrentStreak
	}
	next.effectSeq++
	cx, cy := shape.Box.Center()
	effect := effects.NewHit(next.effectSeq, cx, cy, reaction, at, cfg.EffectTTL)
	next.Effect = &effect

	return Step{
		State: next,
		Commands: []Command{
			cancel(TimerExpiry),
			schedule(TimerEffect, cfg.EffectTTL, TimerEvent{Kind: EventEffectExpired, EffectID: effect.ID}),
			spawnAfter(cfg.RespawnDelay),
		},
		Notices: []events.Event{{
			Kind:       events.KindHit,
			At:         at,
			Phase:      string(next.Phase),
			ShapeID:    shape.ID,
			ShapeKind:  string(shape.Kind),
			SizeTier:   string(shape.Size),
			ReactionMs: reaction,
			Quality:    stats.Classify(reaction),
		}},
	}
}

// ApplyAreaClick records a click on empty play area.
func ApplyAreaClick(s State, cfg Config, x, y float64, now time.Time) Step {
	if s.Phase != PhasePlaying {
		return noop(s)
	}
	next := s
	next.Counters.MissedClicks++
	next.Counters.CurrentStreak = 0
	next.effectSeq++
	effect := effects.NewMiss(next.effectSeq, x, y, now, cfg.EffectTTL)
	next.Effect = &effect

	return Step{
		State: next,
		Commands: []Command{
			schedule(TimerEffect, cfg.EffectTTL, TimerEvent{Kind: EventEffectExpired, EffectID: effect.ID}),
		},
		Notices: []events.Event{{Kind: events.KindMiss, At: now, Phase: string(next.Phase), Miss: events.MissClick}},
	}
}

// ApplyShapeExpired discards a shape nobody clicked and replaces it at once.
func ApplyShapeExpired(s State, shapeID int, now time.Time) Step {
	if s.Phase != PhasePlaying || s.Shape == nil || s.Shape.ID != shapeID {
		return noop(s)
	}
	shape := *s.Shape
	next := s
	next.Shape = nil
	next.Counters.MissedShapes++
	next.Counters.CurrentStreak = 0

	return Step{
		State:    next,
		Commands: []Command{spawnAfter(0)},
		Notices: []events.Event{{
			Kind:      events.KindMiss,
			At:        now,
			Phase:     string(next.Phase),
			ShapeID:   shape.ID,
			ShapeKind: string(shape.Kind),
			SizeTier:  string(shape.Size),
			Miss:      events.MissShape,
		}},
	}
}

func ApplyEffectExpired(s State, effectID int, now time.Time) Step {
	if s.Effect == nil || s.Effect.ID != effectID {
		return noop(s)
	}
	next := s
	next.Effect = nil
	return Step{
		State:   next,
		Notices: []events.Event{{Kind: events.KindEffect, At: now, Phase: string(next.Phase)}},
	}
}

func phaseNotice(from Phase, next State, now time.Time) events.Event {
	st := next.Stats()
	return events.Event{
		Kind:  events.KindPhase,
		At:    now,
		Phase: string(next.Phase),
		From:  string(from),
		Stats: &st,
	}
}
