package system

import (
	"log/slog"
	"math"
	"slices"

	"github.com/lixenwraith/dodge3d/component"
	"github.com/lixenwraith/dodge3d/core"
	"github.com/lixenwraith/dodge3d/engine"
	"github.com/lixenwraith/dodge3d/event"
	"github.com/lixenwraith/dodge3d/vmath"
)

// BuffEngine keeps a capped set of buff pickups in front of the camera
// A pickup is identified on the bus by its position; a hit consumes it once and grants its effect
type BuffEngine struct {
	engine.Link
	world   *engine.World
	log     *slog.Logger
	enabled bool

	pickups  []*component.PickupComponent
	nextID   uint64
	respawns []engine.Handle
}

func NewBuffEngine(w *engine.World) *BuffEngine {
	engine.Require(w, "buff engine")
	b := &BuffEngine{
		Link:  engine.NewLink(core.SigBuff),
		world: w,
		log:   w.Log.With("system", "buff"),
	}
	b.Init()
	return b
}

// Init removes every pickup and cancels pending respawns
func (b *BuffEngine) Init() {
	for _, h := range b.respawns {
		h.Cancel()
	}
	b.respawns = b.respawns[:0]
	b.pickups = b.pickups[:0]
	b.world.Metrics.LivePickups.Set(0)
	b.enabled = true
}

func (b *BuffEngine) Kind() engine.Kind { return engine.KindBuff }

// Setup spawns the initial batch, returns how many were placed
func (b *BuffEngine) Setup() int {
	n := 0
	for range b.world.Config.Pickup.InitialCount {
		if !b.Spawn() {
			break
		}
		n++
	}
	return n
}

// Spawn places one pickup of a random kind, false once the cap is reached
func (b *BuffEngine) Spawn() bool {
	cfg := b.world.Config.Pickup
	if !b.enabled || len(b.pickups) >= cfg.MaxCount {
		return false
	}

	cam := b.world.Camera()
	rng := b.world.Rand
	heading := vmath.Horizontal(cam.Forward)
	if heading == vmath.Zero {
		heading = vmath.Forward
	}
	yaw := rng.Placement.Range(-math.Pi/2, math.Pi/2)
	dist := rng.Placement.Range(cfg.MinDistance, cfg.MaxDistance)
	pos := cam.Position.Add(vmath.RotateAbout(heading, vmath.Up, yaw).Mul(dist))

	b.nextID++
	p := &component.PickupComponent{
		ID:       b.nextID,
		Position: pos,
		Kind:     component.BuffKinds[rng.Buff.Intn(len(component.BuffKinds))],
	}
	b.pickups = append(b.pickups, p)
	b.world.Metrics.LivePickups.Set(float64(len(b.pickups)))

	b.log.Debug("pickup spawned", "id", p.ID, "kind", p.Kind.String())
	b.Send(core.SigShooting, event.NewPickupSpawned(pos))
	return true
}

// Receive dispatches on sender, then kind
func (b *BuffEngine) Receive(msg event.Message) {
	switch msg.Sender {
	case core.SigShooting:
		if msg.Kind == event.KindPickupHit {
			if p, ok := msg.Payload.(event.Position); ok {
				b.grant(p.Position)
			}
			return
		}
	case core.SigMediator:
		if msg.Kind == event.KindReset {
			b.Init()
			return
		}
	}
	b.log.Debug("unhandled message", "kind", msg.Kind.String(), "sender", msg.Sender.String())
}

// grant consumes the pickup at pos and routes its effect
// Ammo and reload buffs go to the shooting engine, health to the player
func (b *BuffEngine) grant(pos vmath.Vec3) bool {
	i := slices.IndexFunc(b.pickups, func(p *component.PickupComponent) bool {
		return p.Position == pos
	})
	if i < 0 {
		b.log.Debug("hit on unknown pickup", "position", pos)
		return false
	}
	p := b.pickups[i]
	if !p.Consume() {
		return false
	}
	b.pickups = slices.Delete(b.pickups, i, i+1)
	b.world.Metrics.LivePickups.Set(float64(len(b.pickups)))

	g, ok := component.GrantFor(p.Kind)
	if !ok {
		return false
	}
	to := core.SigShooting
	if g.Kind == component.BuffHealthRestore {
		to = core.SigPlayer
	}
	b.world.Metrics.BuffsGranted.WithLabelValues(g.Kind.String()).Inc()
	b.log.Debug("buff granted", "kind", g.Kind.String(), "to", to.String())
	b.Send(to, event.NewBuffGranted(g))

	if delay := b.world.Config.Pickup.RespawnDelay; delay > 0 {
		b.respawns = slices.DeleteFunc(b.respawns, func(h engine.Handle) bool { return !h.Active() })
		b.respawns = append(b.respawns, b.world.Scheduler.After(delay, func() { b.Spawn() }))
	}
	return true
}

// Update is a no-op: pickups are static and hits arrive from the shooting engine
func (b *BuffEngine) Update() {}

func (b *BuffEngine) Transforms(dst []engine.Transform) []engine.Transform {
	for _, p := range b.pickups {
		dst = append(dst, engine.Transform{
			Kind:     engine.TransformPickup,
			ID:       p.ID,
			Owner:    core.SigBuff,
			Position: p.Position,
			Rotation: vmath.YawRotation(vmath.Yaw(p.Position, b.world.Camera().Position)),
			Tag:      p.Kind.String(),
		})
	}
	return dst
}

// Pickups returns copies of the live pickups in spawn order
func (b *BuffEngine) Pickups() []component.PickupComponent {
	out := make([]component.PickupComponent, len(b.pickups))
	for i, p := range b.pickups {
		out[i] = *p
	}
	return out
}

// Live returns the number of pickups on the field
func (b *BuffEngine) Live() int { return len(b.pickups) }
