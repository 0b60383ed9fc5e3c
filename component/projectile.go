package component

import (
	"github.com/lixenwraith/dodge3d/core"
	"github.com/lixenwraith/dodge3d/vmath"
)

// ProjectileComponent is a point projectile owned by one engine store
// Position and Gravity mutate every tick; Direction is fixed at spawn
type ProjectileComponent struct {
	ID        uint64
	Owner     core.Signature
	Position  vmath.Vec3
	Direction vmath.Vec3 // Unit vector, perturbed by inaccuracy at spawn
	Speed     float32    // World units per tick
	Gravity   float32    // Accumulated downward offset applied next tick
	Falling   bool       // Gravity-affected
	Ticks     int        // Integration steps since spawn
}
