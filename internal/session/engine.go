package session

import (
	"log"
	"shapetrainer/internal/clock"
	"shapetrainer/internal/events"
	"shapetrainer/internal/shapes"
	"sort"
	"sync"
	"time"
)

// Engine runs one session at a time. All inputs and timer callbacks are
// serialised on mu, so state changes never interleave.
type Engine struct {
	mu             sync.Mutex
	cfg            Config
	sched          clock.Scheduler
	spawner        *shapes.Spawner
	bus            *events.Bus
	state          State
	bounds         shapes.Bounds
	timers         map[TimerSlot]pendingTimer
	token          uint64
	awaitingBounds bool
}

type pendingTimer struct {
	token uint64
	timer clock.Timer
}

// NewEngine creates an idle engine. bus may be nil.
func NewEngine(cfg Config, sched clock.Scheduler, spawner *shapes.Spawner, bus *events.Bus) *Engine {
	cfg = cfg.normalized()
	return &Engine{
		cfg:     cfg,
		sched:   sched,
		spawner: spawner,
		bus:     bus,
		state:   State{Phase: PhaseIdle, TimeRemaining: cfg.SessionDuration},
		bounds:  cfg.Bounds,
		timers:  make(map[TimerSlot]pendingTimer),
	}
}

func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.awaitingBounds = false
	e.run(Start(e.state, e.cfg, e.sched.Now()))
}

// Stop is safe in any phase and may be called repeatedly.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.awaitingBounds = false
	e.run(Stop(e.state, e.sched.Now()))
}

func (e *Engine) OnAreaClick(x, y float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.run(ApplyAreaClick(e.state, e.cfg, x, y, e.sched.Now()))
}

func (e *Engine) OnShapeClick(at time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.run(ApplyShapeClick(e.state, e.cfg, at))
}

// OnShapeClickID resolves a click aimed at a specific shape. It is dropped
// when that shape is no longer the live one.
func (e *Engine) OnShapeClickID(id int, at time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Shape == nil || e.state.Shape.ID != id {
		return
	}
	e.run(ApplyShapeClick(e.state, e.cfg, at))
}

// SetBounds resizes the play area. A spawn that was skipped because the area
// had no extent happens now if the new bounds allow it.
func (e *Engine) SetBounds(b shapes.Bounds) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bounds = b
	if e.awaitingBounds && b.Valid() {
		e.spawn()
	}
}

func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Snapshot(e.bounds)
}

// State returns the current state value. Callers must not modify its slices.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Phase
}

// PendingTimers lists the slots that currently hold a timer.
func (e *Engine) PendingTimers() []TimerSlot {
	e.mu.Lock()
	defer e.mu.Unlock()
	slots := make([]TimerSlot, 0, len(e.timers))
	for slot := range e.timers {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}

// run commits a step. Caller holds mu.
func (e *Engine) run(step Step) {
	e.state = step.State
	if e.bus != nil {
		for _, n := range step.Notices {
			e.bus.Publish(n)
		}
	}
	for _, cmd := range step.Commands {
		switch cmd.Kind {
		case CmdCancelAll:
			for slot := range e.timers {
				e.cancel(slot)
			}
		case CmdCancel:
			e.cancel(cmd.Timer)
		case CmdSchedule:
			e.schedule(cmd.Timer, cmd.Delay, cmd.Event)
		case CmdSpawn:
			if cmd.Delay <= 0 {
				e.spawn()
			} else {
				e.schedule(TimerSpawn, cmd.Delay, TimerEvent{Kind: EventSpawn})
			}
		}
	}
}

func (e *Engine) schedule(slot TimerSlot, d time.Duration, ev TimerEvent) {
	e.cancel(slot)
	e.token++
	token := e.token
	t := e.sched.AfterFunc(d, func() { e.fire(slot, token, ev) })
	e.timers[slot] = pendingTimer{token: token, timer: t}
}

func (e *Engine) cancel(slot TimerSlot) {
	if p, ok := e.timers[slot]; ok {
		p.timer.Stop()
		delete(e.timers, slot)
	}
}

// fire delivers a timer event unless its slot was cancelled or rescheduled
// after the callback was queued.
func (e *Engine) fire(slot TimerSlot, token uint64, ev TimerEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	p, ok := e.timers[slot]
	if !ok || p.token != token {
		return
	}
	delete(e.timers, slot)

	now := e.sched.Now()
	switch ev.Kind {
	case EventCountdownTick:
		e.run(ApplyCountdownTick(e.state, e.cfg, now))
	case EventSessionTick:
		e.run(ApplySessionTick(e.state, now))
	case EventSpawn:
		e.spawn()
	case EventShapeExpired:
		e.run(ApplyShapeExpired(e.state, ev.ShapeID, now))
	case EventEffectExpired:
		e.run(ApplyEffectExpired(e.state, ev.EffectID, now))
	}
}

// spawn places a new live shape if the session can take one. Caller holds mu.
func (e *Engine) spawn() {
	if e.state.Phase != PhasePlaying || e.state.Shape != nil {
		return
	}
	shape, ok := e.spawner.Spawn(e.bounds, e.sched.Now())
	if !ok {
		if !e.awaitingBounds {
			log.Printf("[Session] play area %.0fx%.0f has no room, waiting for bounds\n", e.bounds.Width, e.bounds.Height)
		}
		e.awaitingBounds = true
		return
	}
	e.awaitingBounds = false
	e.run(ApplySpawn(e.state, e.cfg, shape))
}
