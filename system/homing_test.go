package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/lixenwraith/dodge3d/config"
	"github.com/lixenwraith/dodge3d/core"
	"github.com/lixenwraith/dodge3d/engine"
	"github.com/lixenwraith/dodge3d/event"
	"github.com/lixenwraith/dodge3d/vmath"
)

func hit(h *HomingEngine, id uint64) {
	h.Receive(from(core.SigShooting, event.NewTurretHit(id, core.SigShooting)))
}

func TestTurretTwoHitsDisable(t *testing.T) {
	r := newRig(t, func(c *config.Config) { c.Turret.MaxHealth = 2 })
	h := r.homing
	require.True(t, h.SpawnTurretAhead())
	require.Equal(t, 2, h.Turret().Health.Current)

	hit(h, 1)
	hit(h, 2)
	assert.Equal(t, 0, h.Turret().Health.Current)
	assert.False(t, h.SpawnProjectile())
	assert.False(t, h.Spawn())

	hit(h, 3)
	assert.Equal(t, 0, h.Turret().Health.Current, "floored at zero")
	assert.Equal(t, 0, r.hud.State().TurretHealth)
	assert.Zero(t, h.Store().Count())
}

func TestTurretHealthMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxHealth := rapid.IntRange(1, 10).Draw(t, "max")
		w := newTestWorld(t, func(c *config.Config) { c.Turret.MaxHealth = maxHealth })
		h := NewHomingEngine(w)
		h.SpawnTurretAhead()

		prev := h.Turret().Health.Current
		for i := range rapid.IntRange(0, 20).Draw(t, "hits") {
			hit(h, uint64(i+1))
			cur := h.Turret().Health.Current
			if cur > prev || cur < 0 {
				t.Fatalf("health went %d -> %d", prev, cur)
			}
			if cur == 0 && h.SpawnProjectile() {
				t.Fatalf("destroyed turret fired")
			}
			prev = cur
		}
	})
}

func TestHitOnAbsentTurretIgnored(t *testing.T) {
	w := newTestWorld(t)
	h := NewHomingEngine(w)
	hit(h, 1)
	assert.False(t, h.Turret().Ever)

	h.SpawnTurretAhead()
	h.DespawnTurret()
	hit(h, 2)
	assert.Equal(t, w.Config.Turret.MaxHealth, h.Turret().Health.Current)
}

func TestSpawnTurretAnnouncesHitbox(t *testing.T) {
	r := newRig(t)
	require.True(t, r.homing.SpawnTurret(vmath.Vec3{0, 0, -2.5}))

	pos, known := r.shooting.KnownTurret()
	require.True(t, known)
	assert.InDelta(t, 0, pos.X(), 1e-6)
	assert.InDelta(t, -0.15, pos.Y(), 1e-6)
	assert.InDelta(t, -3, pos.Z(), 1e-6)

	turret := r.homing.Turret()
	assert.InDelta(t, 0, turret.Yaw, 1e-6, "faces +Z toward the camera")
	assert.Equal(t, r.w.Config.Turret.MaxHealth, r.hud.State().TurretHealth)
}

func TestRespawnKeepsHealth(t *testing.T) {
	r := newRig(t)
	h := r.homing
	h.SpawnTurretAhead()
	hit(h, 1)

	require.True(t, h.SpawnTurret(vmath.Vec3{1, 0, -2}))
	assert.Equal(t, r.w.Config.Turret.MaxHealth-1, h.Turret().Health.Current)
	assert.True(t, h.Turret().Spawned)
}

func TestDespawnTurret(t *testing.T) {
	r := newRig(t)
	h := r.homing
	assert.False(t, h.DespawnTurret(), "nothing to despawn")

	h.SpawnTurretAhead()
	h.StartFiring()
	require.True(t, h.DespawnTurret())
	assert.False(t, h.Firing())
	assert.False(t, h.DespawnTurret())

	_, known := r.shooting.KnownTurret()
	assert.False(t, known)
	assert.False(t, h.SpawnProjectile())
}

func TestFireLoopPausesForReload(t *testing.T) {
	r := newRig(t, func(c *config.Config) {
		c.Turret.AmmoCapacity = 3
		c.Turret.FireInterval = 100 * time.Millisecond
		c.Turret.ReloadDuration = time.Second
	})
	h := r.homing
	h.SpawnTurretAhead()
	require.True(t, h.StartFiring())
	assert.False(t, h.StartFiring(), "already firing")

	r.w.Scheduler.Advance(300 * time.Millisecond)
	assert.Equal(t, 3, r.hud.State().HostileShots)
	assert.True(t, h.Turret().Reloading)

	r.w.Scheduler.Advance(500 * time.Millisecond)
	assert.Equal(t, 3, r.hud.State().HostileShots, "paused")

	r.w.Scheduler.Advance(500 * time.Millisecond)
	assert.Equal(t, 4, r.hud.State().HostileShots, "resumed after reload")
	assert.False(t, h.Turret().Reloading)
}

func TestStopFiringIdempotent(t *testing.T) {
	w := newTestWorld(t)
	h := NewHomingEngine(w)
	assert.False(t, h.StopFiring())

	h.StartFiring()
	assert.True(t, h.StopFiring())
	assert.False(t, h.StopFiring())
	assert.Zero(t, w.Scheduler.Pending())
}

func TestHostileHitOnceAndRemoved(t *testing.T) {
	r := newRig(t)
	r.homing.SpawnTurret(vmath.Vec3{0, 0, -1})
	require.True(t, r.homing.SpawnProjectile())

	r.step(40)

	assert.Equal(t, r.w.Config.Player.MaxHealth-1, r.player.Health().Current)
	assert.Equal(t, r.w.Config.Player.MaxHealth-1, r.hud.State().PlayerHealth)
	assert.Zero(t, r.homing.Store().Count())
}

func TestPredictiveAimLeadsCamera(t *testing.T) {
	r := newRig(t)
	w := r.w
	r.homing.SpawnTurret(vmath.Vec3{0, 0, -3})

	require.True(t, r.homing.SpawnProjectile())

	w.Scheduler.Advance(time.Second)
	pose := engine.DefaultPose()
	pose.Position = vmath.Vec3{1, 0, 0}
	w.BeginFrame(pose, tick)
	require.True(t, r.homing.SpawnProjectile())

	shots := r.homing.Store().All()
	require.Len(t, shots, 2)
	assert.InDelta(t, 1, shots[0].Direction.Z(), 1e-6, "first shot aims straight, no velocity yet")

	direct := vmath.Normalize(vmath.Vec3{1, 0, 3})
	assert.Greater(t, shots[1].Direction.X(), direct.X(), "second shot leads the strafing camera")
}

func TestHostileInaccuracyPerturbsBothAxes(t *testing.T) {
	w := newTestWorld(t, func(c *config.Config) {
		c.Projectile.HostileInaccuracyMin = 20
		c.Projectile.HostileInaccuracyMax = 40
	})
	h := NewHomingEngine(w)
	h.SpawnTurret(vmath.Vec3{0, 0, -3})

	deviated := false
	for range 4 {
		h.SpawnProjectile()
	}
	for _, p := range h.Store().All() {
		if p.Direction.X() != 0 && p.Direction.Y() != 0 {
			deviated = true
		}
		assert.InDelta(t, 1, p.Direction.Len(), 1e-4)
	}
	assert.True(t, deviated)
}

func TestHomingTransforms(t *testing.T) {
	w := newTestWorld(t)
	h := NewHomingEngine(w)
	assert.Empty(t, h.Transforms(nil))

	h.SpawnTurretAhead()
	h.SpawnProjectile()
	ts := h.Transforms(nil)
	require.Len(t, ts, 2)
	assert.Equal(t, engine.TransformProjectile, ts[0].Kind)
	assert.Equal(t, engine.TransformTurret, ts[1].Kind)
	assert.Equal(t, "armed", ts[1].Tag)
}

func TestResetBroadcast(t *testing.T) {
	r := newRig(t)
	r.buff.Setup()
	r.homing.SpawnTurretAhead()
	r.homing.StartFiring()
	r.shooting.Fire()
	r.w.Scheduler.Advance(time.Second)

	r.w.Bus.Broadcast(event.NewReset())

	assert.Zero(t, r.shooting.Store().Count())
	assert.Zero(t, r.shooting.Ammo().Used)
	assert.Empty(t, r.shooting.KnownPickups())
	assert.False(t, r.homing.Turret().Spawned)
	assert.False(t, r.homing.Firing())
	assert.Zero(t, r.homing.Store().Count())
	assert.Zero(t, r.buff.Live())
	assert.Equal(t, r.w.Config.Player.MaxHealth, r.player.Health().Current)
	assert.Zero(t, r.hud.State().Shots)
	assert.Zero(t, r.w.Scheduler.Pending())
}
