package engine

import "github.com/samber/oops"

// Kind enumerates the engine variants
type Kind int

const (
	KindShooting Kind = iota
	KindHoming
	KindBuff
)

func (k Kind) String() string {
	switch k {
	case KindShooting:
		return "shooting"
	case KindHoming:
		return "homing"
	case KindBuff:
		return "buff"
	default:
		return "unknown"
	}
}

// Engine is the capability shared by the gameplay engines
// Update runs once per tick after due timers; Spawn is the engine's primary action
type Engine interface {
	Participant
	Kind() Kind
	Init()
	Spawn() bool
	Update()
	Transforms(dst []Transform) []Transform
}

// Require panics when a mandatory collaborator is missing
// Only constructors call this; gameplay paths never panic
func Require(w *World, name string) {
	if w == nil {
		panic(oops.In("engine").Code("missing_world").Errorf("%s constructed without a world", name))
	}
}
