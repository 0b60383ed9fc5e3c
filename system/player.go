package system

import (
	"log/slog"
	"math"

	"github.com/lixenwraith/dodge3d/component"
	"github.com/lixenwraith/dodge3d/core"
	"github.com/lixenwraith/dodge3d/engine"
	"github.com/lixenwraith/dodge3d/event"
)

// Player holds the camera-anchored player's health
// Only hostile hits lower it; only health buffs raise it
type Player struct {
	engine.Link
	world      *engine.World
	log        *slog.Logger
	health     component.HealthComponent
	capRestore bool
}

func NewPlayer(w *engine.World) *Player {
	engine.Require(w, "player")
	p := &Player{
		Link:       engine.NewLink(core.SigPlayer),
		world:      w,
		log:        w.Log.With("system", "player"),
		capRestore: w.Config.Player.CapHealthRestore,
	}
	p.Init()
	return p
}

func (p *Player) Init() {
	p.health = component.NewHealth(p.world.Config.Player.MaxHealth)
	p.world.Metrics.PlayerHealth.Set(float64(p.health.Current))
}

// Receive dispatches on sender, then kind
func (p *Player) Receive(msg event.Message) {
	switch msg.Sender {
	case core.SigHoming:
		if msg.Kind == event.KindHostileHit {
			if p.health.Damage(1) {
				p.Announce()
				if p.Defeated() {
					p.log.Info("player defeated")
				}
			}
			return
		}
	case core.SigBuff:
		if msg.Kind == event.KindBuffGranted {
			if g, ok := msg.Payload.(event.BuffGrant); ok && g.Grant.Kind == component.BuffHealthRestore {
				amount := int(math.Round(float64(g.Grant.Effect())))
				if p.health.Restore(amount, p.capRestore) {
					p.Announce()
				}
			}
			return
		}
	case core.SigMediator:
		if msg.Kind == event.KindReset {
			p.Init()
			p.Announce()
			return
		}
	}
	p.log.Debug("unhandled message", "kind", msg.Kind.String(), "sender", msg.Sender.String())
}

// Announce publishes current health to the shooting engine and the HUD
func (p *Player) Announce() {
	p.world.Metrics.PlayerHealth.Set(float64(p.health.Current))
	p.SendMany([]core.Signature{core.SigShooting, core.SigHUD},
		event.NewPlayerHealthChanged(p.health.Current, p.health.Max))
}

func (p *Player) Health() component.HealthComponent { return p.health }

// Defeated reports health at zero
func (p *Player) Defeated() bool { return !p.health.Alive() }
