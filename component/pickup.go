package component

import "github.com/lixenwraith/dodge3d/vmath"

// PickupComponent is a buff box floating in front of the camera
// Consumed flips exactly once
type PickupComponent struct {
	ID       uint64
	Position vmath.Vec3
	Kind     BuffKind
	Consumed bool
}

// Consume performs the single consume transition
func (p *PickupComponent) Consume() bool {
	if p.Consumed {
		return false
	}
	p.Consumed = true
	return true
}
