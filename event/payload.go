package event

import (
	"github.com/lixenwraith/dodge3d/component"
	"github.com/lixenwraith/dodge3d/core"
	"github.com/lixenwraith/dodge3d/vmath"
)

// Payload is the closed set of message bodies
// The unexported marker keeps other packages from adding variants
type Payload interface {
	payload()
}

// Empty carries no data
type Empty struct{}

// Position carries a world-space point used as identity for turrets and pickups
type Position struct {
	Position vmath.Vec3
}

// ProjectileRef names a projectile without transferring ownership
type ProjectileRef struct {
	ID    uint64
	Owner core.Signature
}

// Health carries a health reading
type Health struct {
	Current int
	Max     int
}

// BuffGrant carries a buff effect
type BuffGrant struct {
	Grant component.BuffGrant
}

func (Empty) payload()         {}
func (Position) payload()      {}
func (ProjectileRef) payload() {}
func (Health) payload()        {}
func (BuffGrant) payload()     {}
