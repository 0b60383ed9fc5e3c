package system

import (
	"time"

	"github.com/lixenwraith/dodge3d/engine"
)

// Firer is anything that takes a single shot
type Firer interface {
	Fire() bool
}

// Trigger turns tap and hold gestures into shots
// A hold fires immediately, then repeats on a timer until released
type Trigger struct {
	world    *engine.World
	target   Firer
	interval time.Duration
	hold     engine.Handle
}

func NewTrigger(w *engine.World, target Firer) *Trigger {
	engine.Require(w, "trigger")
	return &Trigger{
		world:    w,
		target:   target,
		interval: w.Config.Player.HoldFireInterval,
	}
}

// Tap fires once
func (t *Trigger) Tap() bool {
	return t.target.Fire()
}

// Hold starts continuous fire, false when already held
func (t *Trigger) Hold() bool {
	if t.hold.Active() {
		return false
	}
	t.target.Fire()
	t.hold = t.world.Scheduler.Every(t.interval, func() {
		t.target.Fire()
	})
	return true
}

// Release stops continuous fire; releasing twice or without a hold is a no-op
func (t *Trigger) Release() bool {
	return t.hold.Cancel()
}

// Held reports whether continuous fire is active
func (t *Trigger) Held() bool { return t.hold.Active() }
