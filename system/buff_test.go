package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dodge3d/component"
	"github.com/lixenwraith/dodge3d/config"
	"github.com/lixenwraith/dodge3d/core"
	"github.com/lixenwraith/dodge3d/engine"
	"github.com/lixenwraith/dodge3d/event"
	"github.com/lixenwraith/dodge3d/vmath"
)

// spawnKind resets the field until a single pickup of kind is drawn
func spawnKind(t *testing.T, r *rig, kind component.BuffKind) component.PickupComponent {
	t.Helper()
	for range 64 {
		r.buff.Init()
		r.shooting.Init()
		require.True(t, r.buff.Spawn())
		if p := r.buff.Pickups()[0]; p.Kind == kind {
			return p
		}
	}
	t.Fatalf("no %s pickup drawn", kind)
	return component.PickupComponent{}
}

func TestSetupSpawnsInitialBatch(t *testing.T) {
	r := newRig(t)
	assert.Equal(t, r.w.Config.Pickup.InitialCount, r.buff.Setup())
	assert.Equal(t, r.w.Config.Pickup.InitialCount, r.buff.Live())
	assert.Len(t, r.shooting.KnownPickups(), r.w.Config.Pickup.InitialCount)
}

func TestSpawnCapped(t *testing.T) {
	r := newRig(t)
	spawned := 0
	for range 10 {
		if r.buff.Spawn() {
			spawned++
		}
	}
	assert.Equal(t, r.w.Config.Pickup.MaxCount, spawned)
	assert.Equal(t, r.w.Config.Pickup.MaxCount, r.buff.Live())
}

func TestSpawnPlacementInFront(t *testing.T) {
	r := newRig(t, func(c *config.Config) { c.Pickup.MaxCount = 50 })
	for range 50 {
		r.buff.Spawn()
	}
	cfg := r.w.Config.Pickup
	for _, p := range r.buff.Pickups() {
		d := vmath.Distance(vmath.Zero, p.Position)
		assert.GreaterOrEqual(t, d, cfg.MinDistance-1e-4)
		assert.LessOrEqual(t, d, cfg.MaxDistance+1e-4)
		assert.LessOrEqual(t, p.Position.Z(), float32(1e-4), "in front of the camera")
		assert.NotEqual(t, component.BuffNone, p.Kind)
	}
}

func TestShootAmmoPickup(t *testing.T) {
	r := newRig(t, func(c *config.Config) { c.Player.AmmoCapacity = 6 })
	p := spawnKind(t, r, component.BuffAmmoCapacity)

	r.w.BeginFrame(engine.PoseLookingAt(vmath.Zero, p.Position), tick)
	require.True(t, r.shooting.Fire())
	for range 200 {
		r.step(1)
		if r.buff.Live() == 0 {
			break
		}
	}

	assert.Equal(t, 9, r.shooting.Ammo().Capacity)
	assert.Zero(t, r.buff.Live(), "removed from the active set")
	assert.Empty(t, r.shooting.KnownPickups())
	assert.Zero(t, r.shooting.Store().Count(), "projectile despawned on hit")

	r.buff.Receive(from(core.SigShooting, event.NewPickupHit(p.Position)))
	assert.Equal(t, 9, r.shooting.Ammo().Capacity, "not re-grantable")
}

func TestHealthPickupGoesToPlayer(t *testing.T) {
	r := newRig(t)
	p := spawnKind(t, r, component.BuffHealthRestore)

	r.player.Receive(from(core.SigHoming, event.NewHostileHit(1, core.SigHoming)))
	r.player.Receive(from(core.SigHoming, event.NewHostileHit(2, core.SigHoming)))
	before := r.player.Health().Current

	r.buff.Receive(from(core.SigShooting, event.NewPickupHit(p.Position)))
	assert.Equal(t, before+1, r.player.Health().Current)
	assert.Equal(t, r.w.Config.Player.AmmoCapacity, r.shooting.Ammo().Capacity)
}

func TestUnknownPickupHitIgnored(t *testing.T) {
	r := newRig(t)
	r.buff.Setup()
	r.buff.Receive(from(core.SigShooting, event.NewPickupHit(vmath.Vec3{99, 99, 99})))
	assert.Equal(t, r.w.Config.Pickup.InitialCount, r.buff.Live())
}

func TestPickupRespawns(t *testing.T) {
	r := newRig(t, func(c *config.Config) { c.Pickup.RespawnDelay = 2 * time.Second })
	r.buff.Setup()
	first := r.buff.Pickups()[0]

	r.buff.Receive(from(core.SigShooting, event.NewPickupHit(first.Position)))
	require.Equal(t, r.w.Config.Pickup.InitialCount-1, r.buff.Live())

	r.w.Scheduler.Advance(2 * time.Second)
	assert.Equal(t, r.w.Config.Pickup.InitialCount, r.buff.Live())
}

func TestPickupRespawnDisabled(t *testing.T) {
	r := newRig(t, func(c *config.Config) { c.Pickup.RespawnDelay = 0 })
	r.buff.Setup()
	r.buff.Receive(from(core.SigShooting, event.NewPickupHit(r.buff.Pickups()[0].Position)))

	r.w.Scheduler.Advance(time.Minute)
	assert.Equal(t, r.w.Config.Pickup.InitialCount-1, r.buff.Live())
}

func TestBuffTransforms(t *testing.T) {
	r := newRig(t)
	r.buff.Setup()
	ts := r.buff.Transforms(nil)
	require.Len(t, ts, r.w.Config.Pickup.InitialCount)
	for _, tr := range ts {
		assert.Equal(t, engine.TransformPickup, tr.Kind)
		assert.NotEmpty(t, tr.Tag)
	}
}
