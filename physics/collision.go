package physics

import (
	"github.com/lixenwraith/dodge3d/vmath"
)

// Target classes checked independently every tick
type Target uint8

const (
	TargetCamera Target = iota
	TargetTurret
	TargetPickup
)

func (t Target) String() string {
	switch t {
	case TargetCamera:
		return "camera"
	case TargetTurret:
		return "turret"
	case TargetPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Hit reports a point projectile within radius of target
func Hit(projectile, target vmath.Vec3, radius float32) bool {
	return vmath.WithinRadius(projectile, target, radius)
}

// ResolvedSet records projectile ids whose collision outcome was already emitted
// Guards against re-triggering while a projectile lingers in range before removal
type ResolvedSet struct {
	ids map[uint64]struct{}
}

func NewResolvedSet() *ResolvedSet {
	return &ResolvedSet{ids: make(map[uint64]struct{})}
}

// Resolve marks id, true only the first time
func (r *ResolvedSet) Resolve(id uint64) bool {
	if _, ok := r.ids[id]; ok {
		return false
	}
	r.ids[id] = struct{}{}
	return true
}

func (r *ResolvedSet) Has(id uint64) bool {
	_, ok := r.ids[id]
	return ok
}

// Forget prunes an id once its projectile is gone for good
func (r *ResolvedSet) Forget(id uint64) {
	delete(r.ids, id)
}

func (r *ResolvedSet) Len() int { return len(r.ids) }

func (r *ResolvedSet) Clear() { clear(r.ids) }
