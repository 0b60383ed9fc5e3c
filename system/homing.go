package system

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/dodge3d/component"
	"github.com/lixenwraith/dodge3d/core"
	"github.com/lixenwraith/dodge3d/engine"
	"github.com/lixenwraith/dodge3d/event"
	"github.com/lixenwraith/dodge3d/physics"
	"github.com/lixenwraith/dodge3d/vmath"
)

// HomingEngine drives the turret: placement, autonomous burst fire with predictive aim, and damage
// Hostile projectiles are tested against the camera only
type HomingEngine struct {
	engine.Link
	world   *engine.World
	log     *slog.Logger
	enabled bool

	flight *flight
	aim    physics.AimProfile

	turret    component.TurretComponent
	estimator physics.VelocityEstimator

	fireLoop engine.Handle
	pause    engine.Handle

	shots      prometheus.Counter
	reloads    prometheus.Counter
	cameraHits prometheus.Counter
}

func NewHomingEngine(w *engine.World) *HomingEngine {
	engine.Require(w, "homing engine")
	ballistic, aim := physics.HostileProfiles(w.Config)
	owner := core.SigHoming.String()
	h := &HomingEngine{
		Link:       engine.NewLink(core.SigHoming),
		world:      w,
		log:        w.Log.With("system", "homing"),
		flight:     newFlight(w, core.SigHoming, ballistic),
		aim:        aim,
		shots:      w.Metrics.ShotsFired.WithLabelValues(owner),
		reloads:    w.Metrics.Reloads.WithLabelValues(owner),
		cameraHits: w.Metrics.Hits.WithLabelValues(physics.TargetCamera.String()),
	}
	h.Init()
	return h
}

// Init stops the fire loop and forgets the turret and its projectiles
func (h *HomingEngine) Init() {
	h.fireLoop.Cancel()
	h.pause.Cancel()
	h.flight.reset()
	h.turret = component.TurretComponent{}
	h.estimator.Reset()
	h.world.Metrics.TurretHealth.Set(0)
	h.enabled = true
}

func (h *HomingEngine) Kind() engine.Kind { return engine.KindHoming }

// Spawn fires one hostile projectile
func (h *HomingEngine) Spawn() bool { return h.SpawnProjectile() }

// SpawnTurret places the turret at pos facing the camera, replacing any live one
// Health is set to max on the first placement only
func (h *HomingEngine) SpawnTurret(pos vmath.Vec3) bool {
	if !h.enabled {
		return false
	}
	wasFiring := h.Firing()
	if h.turret.Spawned {
		h.DespawnTurret()
	}

	cfg := h.world.Config.Turret
	if !h.turret.Ever {
		h.turret.Health = component.NewHealth(cfg.MaxHealth)
		h.turret.Ever = true
	}

	cam := h.world.Camera().Position
	toCamera := vmath.Horizontal(cam.Sub(pos))
	hitbox := pos.Sub(toCamera.Mul(cfg.BaseSetback))
	hitbox[1] -= cfg.BaseDrop

	h.turret.Anchor = pos
	h.turret.Position = hitbox
	h.turret.Yaw = vmath.Yaw(pos, cam)
	h.turret.Spawned = true
	h.turret.Fired = 0
	h.turret.Reloading = false
	h.pause.Cancel()
	h.estimator.Reset()

	h.log.Debug("turret spawned", "anchor", pos, "health", h.turret.Health.Current)
	h.Send(core.SigShooting, event.NewTurretMoved(hitbox))
	h.announceHealth()
	if wasFiring {
		h.StartFiring()
	}
	return true
}

// SpawnTurretAhead places the turret along the camera forward axis
func (h *HomingEngine) SpawnTurretAhead() bool {
	return h.SpawnTurret(h.world.Camera().Ahead(h.world.Config.Turret.SpawnDistance))
}

// DespawnTurret removes the turret and retracts its hitbox
// Hostile projectiles already in flight keep flying
func (h *HomingEngine) DespawnTurret() bool {
	if !h.turret.Spawned {
		return false
	}
	h.turret.Spawned = false
	h.StopFiring()
	h.pause.Cancel()
	h.Send(core.SigShooting, event.NewTurretDespawned())
	return true
}

// StartFiring arms the repeating fire timer, false when already armed
func (h *HomingEngine) StartFiring() bool {
	if !h.enabled || h.fireLoop.Active() {
		return false
	}
	h.fireLoop = h.world.Scheduler.Every(h.world.Config.Turret.FireInterval, func() {
		h.SpawnProjectile()
	})
	return true
}

// StopFiring cancels the fire timer; repeated calls are no-ops
func (h *HomingEngine) StopFiring() bool {
	return h.fireLoop.Cancel()
}

// Firing reports whether the fire timer is armed
func (h *HomingEngine) Firing() bool { return h.fireLoop.Active() }

// SpawnProjectile fires once at the predicted camera position
// No-op while the turret is absent, destroyed or pausing between bursts
func (h *HomingEngine) SpawnProjectile() bool {
	if !h.enabled || !h.turret.Armed() {
		return false
	}

	cam := h.world.Camera().Position
	spawn := h.turret.Anchor
	velocity := h.estimator.Sample(cam, h.world.Now())
	speed := h.flight.profile.Speed * float32(h.world.Config.TickRate)

	dir := physics.PredictiveAim(spawn, cam, velocity, speed)
	angle := physics.SampleInaccuracy(&h.aim, h.world.Rand.Inaccuracy, h.world.Rand.Recoil)
	dir = physics.Perturb(dir, angle)

	id := h.flight.launch(spawn, dir)
	h.shots.Inc()
	h.Send(core.SigHUD, event.NewProjectileSpawned(id, core.SigHoming))

	h.turret.Fired++
	if h.turret.Fired >= h.world.Config.Turret.AmmoCapacity {
		h.beginPause()
	}
	return true
}

func (h *HomingEngine) beginPause() {
	h.turret.Reloading = true
	h.reloads.Inc()
	h.pause = h.world.Scheduler.After(h.world.Config.Turret.ReloadDuration, func() {
		h.turret.Reloading = false
		h.turret.Fired = 0
	})
}

// Receive dispatches on sender, then kind
func (h *HomingEngine) Receive(msg event.Message) {
	switch msg.Sender {
	case core.SigShooting:
		if msg.Kind == event.KindTurretHit {
			if p, ok := msg.Payload.(event.ProjectileRef); ok {
				h.takeHit(p)
			}
			return
		}
	case core.SigMediator:
		if msg.Kind == event.KindReset {
			h.Init()
			return
		}
	}
	h.log.Debug("unhandled message", "kind", msg.Kind.String(), "sender", msg.Sender.String())
}

func (h *HomingEngine) takeHit(ref event.ProjectileRef) {
	if !h.turret.Spawned || !h.turret.Health.Damage(1) {
		return
	}
	h.log.Debug("turret hit", "projectile", ref.ID, "health", h.turret.Health.Current)
	h.announceHealth()
	if !h.turret.Health.Alive() {
		h.log.Info("turret destroyed")
		h.StopFiring()
	}
}

func (h *HomingEngine) announceHealth() {
	hp := h.turret.Health
	h.world.Metrics.TurretHealth.Set(float64(hp.Current))
	h.Send(core.SigHUD, event.NewTurretHealthChanged(hp.Current, hp.Max))
}

// Update advances hostile projectiles and resolves camera hits
func (h *HomingEngine) Update() {
	if !h.enabled {
		return
	}
	cam := h.world.Camera().Position
	radius := h.world.Config.Projectile.CameraHitRadius

	h.flight.step(func(p *component.ProjectileComponent) bool {
		if !physics.Hit(p.Position, cam, radius) {
			return false
		}
		if h.flight.resolved.Resolve(p.ID) {
			h.cameraHits.Inc()
			h.Send(core.SigPlayer, event.NewHostileHit(p.ID, p.Owner))
		}
		return true
	})
}

func (h *HomingEngine) Transforms(dst []engine.Transform) []engine.Transform {
	dst = h.flight.transforms(dst)
	if h.turret.Spawned {
		tag := "armed"
		switch {
		case !h.turret.Health.Alive():
			tag = "destroyed"
		case h.turret.Reloading:
			tag = "reloading"
		}
		dst = append(dst, engine.Transform{
			Kind:     engine.TransformTurret,
			Owner:    core.SigHoming,
			Position: h.turret.Anchor,
			Rotation: vmath.YawRotation(h.turret.Yaw),
			Tag:      tag,
		})
	}
	return dst
}

// Turret returns a copy of the turret state
func (h *HomingEngine) Turret() component.TurretComponent { return h.turret }

// Store exposes the live hostile projectiles
func (h *HomingEngine) Store() *engine.ProjectileStore { return h.flight.store }
