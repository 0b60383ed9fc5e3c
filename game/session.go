// Package game assembles the engines into a playable session and drives it per frame
package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lixenwraith/dodge3d/config"
	"github.com/lixenwraith/dodge3d/engine"
	"github.com/lixenwraith/dodge3d/event"
	"github.com/lixenwraith/dodge3d/parameter"
	"github.com/lixenwraith/dodge3d/status"
	"github.com/lixenwraith/dodge3d/system"
	"github.com/lixenwraith/dodge3d/vmath"
)

const tracerName = "github.com/lixenwraith/dodge3d/game"

// Session owns one simulation: the world, every participant and the fire trigger
// All methods must be called from the tick goroutine
type Session struct {
	id    ulid.ULID
	ctx   context.Context
	span  trace.Span
	world *engine.World
	log   *slog.Logger

	Shooting *system.ShootingEngine
	Homing   *system.HomingEngine
	Buff     *system.BuffEngine
	Player   *system.Player
	HUD      *system.HUD

	trigger *system.Trigger
	engines []engine.Engine

	transforms []engine.Transform
	closed     bool
}

// NewSession validates cfg and pose, wires every participant onto the bus and places the initial pickups
func NewSession(ctx context.Context, cfg config.Config, pose engine.CameraPose, log *slog.Logger, metrics *status.Metrics) (*Session, error) {
	if log == nil {
		log = slog.Default()
	}
	w, err := engine.NewWorld(cfg, pose, log, metrics)
	if err != nil {
		return nil, err
	}

	id := ulid.Make()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "session",
		trace.WithAttributes(
			attribute.String("session.id", id.String()),
			attribute.Int64("session.seed", int64(w.Seed)),
		),
	)

	s := &Session{
		id:       id,
		ctx:      ctx,
		span:     span,
		world:    w,
		log:      log.With("session", id.String()),
		Shooting: system.NewShootingEngine(w),
		Homing:   system.NewHomingEngine(w),
		Buff:     system.NewBuffEngine(w),
		Player:   system.NewPlayer(w),
		HUD:      system.NewHUD(w),
	}
	s.trigger = system.NewTrigger(w, s.Shooting)
	s.engines = []engine.Engine{s.Shooting, s.Homing, s.Buff}

	for _, p := range []engine.Participant{s.Shooting, s.Homing, s.Buff, s.Player, s.HUD} {
		if err := w.Bus.Register(p); err != nil {
			span.End()
			return nil, err
		}
	}

	s.Player.Announce()
	s.Buff.Setup()

	s.log.InfoContext(ctx, "session started",
		"seed", w.Seed,
		"participants", len(w.Bus.Participants()),
	)
	return s, nil
}

// ID returns the session's sortable identifier
func (s *Session) ID() ulid.ULID { return s.id }

// World exposes the shared simulation context
func (s *Session) World() *engine.World { return s.world }

// Engines returns the engines in update order
func (s *Session) Engines() []engine.Engine { return s.engines }

// Tick advances one frame: new camera pose, due timers, then engine updates in fixed order
// dt is clamped to [0, MaxTickDelta] so a stalled frame cannot burst timers
func (s *Session) Tick(pose engine.CameraPose, dt time.Duration) {
	if s.closed {
		return
	}
	dt = min(max(dt, 0), parameter.MaxTickDelta)

	s.world.BeginFrame(pose, dt)
	s.world.Scheduler.Advance(dt)
	for _, e := range s.engines {
		e.Update()
	}

	s.world.Metrics.Ticks.Inc()
	s.world.Metrics.PendingTimers.Set(float64(s.world.Scheduler.Pending()))
}

// Tap fires a single shot
func (s *Session) Tap() bool { return s.trigger.Tap() }

// Hold starts continuous fire
func (s *Session) Hold() bool { return s.trigger.Hold() }

// Release ends continuous fire
func (s *Session) Release() bool { return s.trigger.Release() }

// Held reports whether continuous fire is active
func (s *Session) Held() bool { return s.trigger.Held() }

// Reload starts a player reload
func (s *Session) Reload() bool { return s.Shooting.Reload() }

// SpawnTurret places the turret at pos and starts its fire loop
func (s *Session) SpawnTurret(pos vmath.Vec3) bool {
	if !s.Homing.SpawnTurret(pos) {
		return false
	}
	s.Homing.StartFiring()
	return true
}

// SpawnTurretAhead places the turret in front of the camera and starts its fire loop
func (s *Session) SpawnTurretAhead() bool {
	return s.SpawnTurret(s.world.Camera().Ahead(s.world.Config.Turret.SpawnDistance))
}

// DespawnTurret removes the turret
func (s *Session) DespawnTurret() bool { return s.Homing.DespawnTurret() }

// Reset broadcasts a reset to every participant and places a fresh pickup batch
func (s *Session) Reset() {
	s.trigger.Release()
	s.world.Bus.Broadcast(event.NewReset())
	s.Buff.Setup()
	s.log.InfoContext(s.ctx, "session reset", "tick", s.world.Frame.Tick)
}

// Defeated reports whether the player has run out of health
func (s *Session) Defeated() bool { return s.Player.Defeated() }

// Close stops timers and ends the session span; repeated calls are no-ops
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.trigger.Release()
	s.Homing.StopFiring()

	hud := s.HUD.State()
	s.span.SetAttributes(
		attribute.Int64("session.ticks", int64(s.world.Frame.Tick)),
		attribute.Int("session.shots", hud.Shots),
		attribute.Int("session.player_health", hud.PlayerHealth),
	)
	s.span.End()
	s.log.InfoContext(s.ctx, "session closed",
		"ticks", s.world.Frame.Tick,
		"shots", hud.Shots,
		"hostile_shots", hud.HostileShots,
		"player_health", hud.PlayerHealth,
		"turret_health", hud.TurretHealth,
	)
}
