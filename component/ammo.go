package component

import "time"

// AmmoMode: normal, out of ammo, reloading
type AmmoMode int

const (
	AmmoNormal AmmoMode = iota
	AmmoOutOfAmmo
	AmmoReloading
)

func (m AmmoMode) String() string {
	switch m {
	case AmmoNormal:
		return "normal"
	case AmmoOutOfAmmo:
		return "out_of_ammo"
	case AmmoReloading:
		return "reloading"
	default:
		return "unknown"
	}
}

// AmmoComponent is the magazine state machine
// Used never exceeds Capacity; cycle is Normal -> OutOfAmmo/Reloading -> Normal
type AmmoComponent struct {
	Capacity   int
	Used       int
	Mode       AmmoMode
	ReloadTime time.Duration
}

func NewAmmo(capacity int, reload time.Duration) AmmoComponent {
	return AmmoComponent{Capacity: capacity, ReloadTime: reload}
}

// CanFire reports whether a shot may be taken
func (a *AmmoComponent) CanFire() bool {
	return a.Mode == AmmoNormal && a.Used < a.Capacity
}

// Consume takes one round, switching to OutOfAmmo on the last one
func (a *AmmoComponent) Consume() bool {
	if !a.CanFire() {
		return false
	}
	a.Used++
	if a.Used >= a.Capacity {
		a.Mode = AmmoOutOfAmmo
	}
	return true
}

// BeginReload enters Reloading, false when already reloading
func (a *AmmoComponent) BeginReload() bool {
	if a.Mode == AmmoReloading {
		return false
	}
	a.Mode = AmmoReloading
	return true
}

// FinishReload refills the magazine, false when no reload was in progress
func (a *AmmoComponent) FinishReload() bool {
	if a.Mode != AmmoReloading {
		return false
	}
	a.Used = 0
	a.Mode = AmmoNormal
	return true
}

// Grow adds rounds to capacity; mode is left for the next reload to settle
func (a *AmmoComponent) Grow(n int) {
	a.Capacity += n
	if a.Capacity < 1 {
		a.Capacity = 1
	}
	if a.Used > a.Capacity {
		a.Used = a.Capacity
	}
}

// AdjustReload shifts the reload duration, floored at min
func (a *AmmoComponent) AdjustReload(delta, min time.Duration) {
	a.ReloadTime += delta
	if a.ReloadTime < min {
		a.ReloadTime = min
	}
}

// Remaining returns rounds left in the magazine
func (a *AmmoComponent) Remaining() int {
	return a.Capacity - a.Used
}
