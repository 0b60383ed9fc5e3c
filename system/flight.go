package system

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/dodge3d/component"
	"github.com/lixenwraith/dodge3d/core"
	"github.com/lixenwraith/dodge3d/engine"
	"github.com/lixenwraith/dodge3d/physics"
	"github.com/lixenwraith/dodge3d/vmath"
)

// flight owns one engine's projectiles together with their despawn timers
// Resolved ids outlive collision removal and are pruned when the despawn timer fires
type flight struct {
	world    *engine.World
	store    *engine.ProjectileStore
	resolved *physics.ResolvedSet
	timers   map[uint64]engine.Handle
	profile  physics.BallisticProfile
	live     prometheus.Gauge
}

func newFlight(w *engine.World, owner core.Signature, profile physics.BallisticProfile) *flight {
	return &flight{
		world:    w,
		store:    engine.NewProjectileStore(owner),
		resolved: physics.NewResolvedSet(),
		timers:   make(map[uint64]engine.Handle),
		profile:  profile,
		live:     w.Metrics.LiveProjectiles.WithLabelValues(owner.String()),
	}
}

// launch spawns a projectile and arms its despawn timer
func (f *flight) launch(origin, dir vmath.Vec3) uint64 {
	id := f.store.Spawn(physics.Launch(&f.profile, origin, dir))
	f.timers[id] = f.world.Scheduler.After(f.world.Config.Projectile.DespawnDelay, func() {
		f.expire(id)
	})
	f.live.Set(float64(f.store.Count()))
	return id
}

// expire is the despawn timer body; the projectile may already be gone
func (f *flight) expire(id uint64) {
	f.store.Remove(id)
	f.resolved.Forget(id)
	delete(f.timers, id)
	f.live.Set(float64(f.store.Count()))
}

// step integrates every projectile and hands it to collide
// collide returns true when the projectile resolved a hit and must be removed now
func (f *flight) step(collide func(p *component.ProjectileComponent) bool) {
	for _, p := range f.store.All() {
		physics.Integrate(&p, f.profile.ParabolicMultiplier)
		if collide(&p) {
			f.store.Remove(p.ID)
			continue
		}
		f.store.Set(p)
	}
	f.live.Set(float64(f.store.Count()))
}

func (f *flight) reset() {
	for _, h := range f.timers {
		h.Cancel()
	}
	clear(f.timers)
	f.store.Clear()
	f.resolved.Clear()
	f.live.Set(0)
}

func (f *flight) transforms(dst []engine.Transform) []engine.Transform {
	for _, p := range f.store.All() {
		dst = append(dst, engine.Transform{
			Kind:     engine.TransformProjectile,
			ID:       p.ID,
			Owner:    p.Owner,
			Position: p.Position,
			Rotation: vmath.LookRotation(p.Direction),
		})
	}
	return dst
}
