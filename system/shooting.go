package system

import (
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/dodge3d/component"
	"github.com/lixenwraith/dodge3d/core"
	"github.com/lixenwraith/dodge3d/engine"
	"github.com/lixenwraith/dodge3d/event"
	"github.com/lixenwraith/dodge3d/physics"
	"github.com/lixenwraith/dodge3d/vmath"
)

// ShootingEngine is the player's weapon
// Owns friendly projectiles, the magazine state machine and the collision tests against turret and pickups
// Turret and pickup positions are learned from the bus, never read from the other engines
type ShootingEngine struct {
	engine.Link
	world   *engine.World
	log     *slog.Logger
	enabled bool

	flight *flight
	aim    physics.AimProfile
	muzzle vmath.Vec3

	ammo         component.AmmoComponent
	playerHealth int

	turret    vmath.Vec3
	hasTurret bool
	pickups   []vmath.Vec3

	reload    engine.Handle
	reloadGen uint64

	shots      prometheus.Counter
	reloads    prometheus.Counter
	turretHits prometheus.Counter
	pickupHits prometheus.Counter
}

func NewShootingEngine(w *engine.World) *ShootingEngine {
	engine.Require(w, "shooting engine")
	ballistic, aim := physics.FriendlyProfiles(w.Config)
	owner := core.SigShooting.String()
	s := &ShootingEngine{
		Link:   engine.NewLink(core.SigShooting),
		world:  w,
		log:    w.Log.With("system", "shooting"),
		flight: newFlight(w, core.SigShooting, ballistic),
		aim:    aim,
		muzzle: vmath.Vec3{
			w.Config.Player.MuzzleRight,
			w.Config.Player.MuzzleUp,
			w.Config.Player.MuzzleForward,
		},
		shots:      w.Metrics.ShotsFired.WithLabelValues(owner),
		reloads:    w.Metrics.Reloads.WithLabelValues(owner),
		turretHits: w.Metrics.Hits.WithLabelValues(physics.TargetTurret.String()),
		pickupHits: w.Metrics.Hits.WithLabelValues(physics.TargetPickup.String()),
	}
	s.Init()
	return s
}

// Init drops every projectile, cancels a pending reload and refills the magazine
func (s *ShootingEngine) Init() {
	s.reload.Cancel()
	s.reloadGen++
	s.flight.reset()

	cfg := s.world.Config.Player
	s.ammo = component.NewAmmo(cfg.AmmoCapacity, cfg.ReloadDuration)
	s.playerHealth = cfg.MaxHealth
	s.hasTurret = false
	s.pickups = s.pickups[:0]
	s.enabled = true
}

func (s *ShootingEngine) Kind() engine.Kind { return engine.KindShooting }

// Spawn is the engine's primary action, a single shot
func (s *ShootingEngine) Spawn() bool { return s.Fire() }

// Fire spawns one projectile from the muzzle along the yawed camera forward
// No-op unless the magazine is ready and the player is alive
func (s *ShootingEngine) Fire() bool {
	if !s.enabled || s.playerHealth <= 0 || !s.ammo.CanFire() {
		return false
	}

	cam := s.world.Camera()
	angle := physics.SampleInaccuracy(&s.aim, s.world.Rand.Inaccuracy, s.world.Rand.Recoil)
	dir := physics.PerturbYaw(cam.Forward, cam.Up, angle)

	id := s.flight.launch(cam.Relative(s.muzzle), dir)
	s.ammo.Consume()
	s.shots.Inc()

	s.Send(core.SigHUD, event.NewProjectileSpawned(id, core.SigShooting))
	if s.ammo.Mode == component.AmmoOutOfAmmo {
		s.log.Debug("magazine empty", "capacity", s.ammo.Capacity)
	}
	return true
}

// Reload starts the only timed transition of the magazine
// Completion is bound to the generation current at start, so a reset voids it
func (s *ShootingEngine) Reload() bool {
	if !s.enabled || !s.ammo.BeginReload() {
		return false
	}
	s.reloadGen++
	gen := s.reloadGen
	s.reloads.Inc()
	s.Send(core.SigHUD, event.NewReloadStarted())

	s.reload = s.world.Scheduler.After(s.ammo.ReloadTime, func() {
		if gen != s.reloadGen {
			return
		}
		if s.ammo.FinishReload() {
			s.Send(core.SigHUD, event.NewReloadFinished())
		}
	})
	return true
}

// Receive dispatches on sender, then kind
func (s *ShootingEngine) Receive(msg event.Message) {
	switch msg.Sender {
	case core.SigHoming:
		switch msg.Kind {
		case event.KindTurretMoved:
			if p, ok := msg.Payload.(event.Position); ok {
				s.turret = p.Position
				s.hasTurret = true
			}
			return
		case event.KindTurretDespawned:
			s.hasTurret = false
			return
		}
	case core.SigBuff:
		switch msg.Kind {
		case event.KindPickupSpawned:
			if p, ok := msg.Payload.(event.Position); ok {
				s.pickups = append(s.pickups, p.Position)
			}
			return
		case event.KindBuffGranted:
			if p, ok := msg.Payload.(event.BuffGrant); ok {
				s.applyBuff(p.Grant)
			}
			return
		}
	case core.SigPlayer:
		if msg.Kind == event.KindPlayerHealthChanged {
			if p, ok := msg.Payload.(event.Health); ok {
				s.playerHealth = p.Current
			}
			return
		}
	case core.SigMediator:
		if msg.Kind == event.KindReset {
			s.Init()
			return
		}
	}
	s.log.Debug("unhandled message", "kind", msg.Kind.String(), "sender", msg.Sender.String())
}

func (s *ShootingEngine) applyBuff(g component.BuffGrant) {
	switch g.Kind {
	case component.BuffAmmoCapacity:
		s.ammo.Grow(int(math.Round(float64(g.Effect()))))
	case component.BuffReloadTime:
		delta := time.Duration(float64(g.Effect()) * float64(time.Second))
		s.ammo.AdjustReload(delta, s.world.Config.Player.MinReloadDuration)
	default:
		s.log.Debug("buff not applicable", "kind", g.Kind.String())
		return
	}
	s.log.Debug("buff applied", "kind", g.Kind.String(), "capacity", s.ammo.Capacity, "reload", s.ammo.ReloadTime)
}

// Update advances friendly projectiles and resolves turret and pickup hits
// Every target test runs for every projectile; a single projectile may resolve several in one tick
func (s *ShootingEngine) Update() {
	if !s.enabled {
		return
	}
	radii := s.world.Config.Projectile

	s.flight.step(func(p *component.ProjectileComponent) bool {
		hit := false

		if s.hasTurret && physics.Hit(p.Position, s.turret, radii.TurretHitRadius) {
			if s.flight.resolved.Resolve(p.ID) {
				s.turretHits.Inc()
				s.Send(core.SigHoming, event.NewTurretHit(p.ID, p.Owner))
			}
			hit = true
		}

		for i := 0; i < len(s.pickups); {
			pos := s.pickups[i]
			if !physics.Hit(p.Position, pos, radii.PickupHitRadius) {
				i++
				continue
			}
			s.pickups = slices.Delete(s.pickups, i, i+1)
			s.pickupHits.Inc()
			s.Send(core.SigBuff, event.NewPickupHit(pos))
			hit = true
		}

		return hit
	})
}

func (s *ShootingEngine) Transforms(dst []engine.Transform) []engine.Transform {
	return s.flight.transforms(dst)
}

// Ammo returns a copy of the magazine state
func (s *ShootingEngine) Ammo() component.AmmoComponent { return s.ammo }

// Store exposes the live friendly projectiles
func (s *ShootingEngine) Store() *engine.ProjectileStore { return s.flight.store }

// KnownPickups returns the pickup positions still eligible for hits
func (s *ShootingEngine) KnownPickups() []vmath.Vec3 { return slices.Clone(s.pickups) }

// KnownTurret returns the announced turret hitbox center
func (s *ShootingEngine) KnownTurret() (vmath.Vec3, bool) { return s.turret, s.hasTurret }
