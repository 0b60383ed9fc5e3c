package game

import (
	"time"

	"github.com/lixenwraith/dodge3d/engine"
)

// Command mutates the session on the tick goroutine
type Command func(*Session)

// PoseSource supplies the camera pose for each tick
type PoseSource interface {
	Pose(now time.Duration) engine.CameraPose
}

// PoseFunc adapts a function to PoseSource
type PoseFunc func(now time.Duration) engine.CameraPose

func (f PoseFunc) Pose(now time.Duration) engine.CameraPose { return f(now) }

// Driver runs a session on a real-time clock
// Input from other goroutines is queued as commands and drained at the start of each tick
// The newest snapshot is published on a one-slot channel, older unread frames are dropped
type Driver struct {
	session  *Session
	poses    PoseSource
	clock    *engine.Clock
	commands chan Command
	frames   chan Snapshot
	onTick   func(Snapshot)
}

// DriverOption configures a Driver
type DriverOption func(*Driver)

// WithTimeSource replaces the wall clock, used by tests
func WithTimeSource(src engine.TimeSource) DriverOption {
	return func(d *Driver) { d.clock = engine.NewClock(d.clock.Interval(), src, d.tick) }
}

// WithTickHook runs fn after every tick on the tick goroutine
func WithTickHook(fn func(Snapshot)) DriverOption {
	return func(d *Driver) { d.onTick = fn }
}

func NewDriver(s *Session, poses PoseSource, opts ...DriverOption) *Driver {
	d := &Driver{
		session:  s,
		poses:    poses,
		commands: make(chan Command, 64),
		frames:   make(chan Snapshot, 1),
	}
	d.clock = engine.NewClock(s.World().Config.TickInterval(), nil, d.tick)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Submit queues cmd for the next tick, false when the queue is full
func (d *Driver) Submit(cmd Command) bool {
	select {
	case d.commands <- cmd:
		return true
	default:
		return false
	}
}

// Frames delivers the latest snapshot
// Snapshots carry a copied transform slice and are safe to read on any goroutine
func (d *Driver) Frames() <-chan Snapshot { return d.frames }

func (d *Driver) Start() { d.clock.Start() }

// Stop halts the clock; the session is left for the caller to close
func (d *Driver) Stop() { d.clock.Stop() }

// Ticks returns completed ticks
func (d *Driver) Ticks() uint64 { return d.clock.Ticks() }

func (d *Driver) tick(dt time.Duration) {
drain:
	for {
		select {
		case cmd := <-d.commands:
			cmd(d.session)
		default:
			break drain
		}
	}

	w := d.session.World()
	d.session.Tick(d.poses.Pose(w.Now()+dt), dt)

	snap := d.session.Snapshot()
	snap.Transforms = append([]engine.Transform(nil), snap.Transforms...)
	if d.onTick != nil {
		d.onTick(snap)
	}

	select {
	case <-d.frames:
	default:
	}
	select {
	case d.frames <- snap:
	default:
	}
}
