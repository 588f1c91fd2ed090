package session

import (
	"shapetrainer/internal/events"
	"time"
)

// TimerSlot names one of the engine's timers. Each slot holds at most one
// pending callback; scheduling into a slot replaces what was there.
type TimerSlot string

const (
	TimerCountdown = TimerSlot("countdown")
	TimerSession   = TimerSlot("session")
	TimerExpiry    = TimerSlot("expiry")
	TimerSpawn     = TimerSlot("spawn")
	TimerEffect    = TimerSlot("effect")
)

type TimerEventKind int

const (
	EventCountdownTick TimerEventKind = iota
	EventSessionTick
	EventSpawn
	EventShapeExpired
	EventEffectExpired
)

// TimerEvent is delivered back to the state machine when a timer fires.
type TimerEvent struct {
	Kind     TimerEventKind
	ShapeID  int
	EffectID int
}

type CommandKind int

const (
	CmdSchedule CommandKind = iota
	CmdCancel
	CmdCancelAll
	CmdSpawn
)

// Command is a side effect requested by a transition. Commands run in order.
type Command struct {
	Kind  CommandKind
	Timer TimerSlot
	Delay time.Duration
	Event TimerEvent
}

func schedule(slot TimerSlot, d time.Duration, ev TimerEvent) Command {
	return Command{Kind: CmdSchedule, Timer: slot, Delay: d, Event: ev}
}

func cancel(slot TimerSlot) Command {
	return Command{Kind: CmdCancel, Timer: slot}
}

func cancelAll() Command {
	return Command{Kind: CmdCancelAll}
}

// spawnAfter asks for a new shape; a zero delay means right away.
func spawnAfter(d time.Duration) Command {
	return Command{Kind: CmdSpawn, Delay: d}
}

// Step is the outcome of applying one input to a State.
type Step struct {
	State    State
	Commands []Command
	Notices  []events.Event
}

func noop(s State) Step {
	return Step{State: s}
}
