package system

import (
	"log/slog"

	"github.com/lixenwraith/dodge3d/core"
	"github.com/lixenwraith/dodge3d/engine"
	"github.com/lixenwraith/dodge3d/event"
)

// HUDState is what the presentation layer draws over the camera feed
type HUDState struct {
	Reloading    bool `msgpack:"reloading"`
	PlayerHealth int  `msgpack:"player_health"`
	PlayerMax    int  `msgpack:"player_max"`
	TurretHealth int  `msgpack:"turret_health"`
	TurretMax    int  `msgpack:"turret_max"`
	Shots        int  `msgpack:"shots"`
	HostileShots int  `msgpack:"hostile_shots"`
	Reloads      int  `msgpack:"reloads"`
}

// HUD observes gameplay messages and keeps a read-only display state
// Observers see every message the HUD handled, after the state was updated
type HUD struct {
	engine.Link
	log       *slog.Logger
	state     HUDState
	observers []func(event.Message, HUDState)
}

func NewHUD(w *engine.World) *HUD {
	engine.Require(w, "hud")
	return &HUD{
		Link: engine.NewLink(core.SigHUD),
		log:  w.Log.With("system", "hud"),
		state: HUDState{
			PlayerHealth: w.Config.Player.MaxHealth,
			PlayerMax:    w.Config.Player.MaxHealth,
			TurretMax:    w.Config.Turret.MaxHealth,
		},
	}
}

// Observe registers a hook called on the tick goroutine
func (h *HUD) Observe(fn func(event.Message, HUDState)) {
	if fn != nil {
		h.observers = append(h.observers, fn)
	}
}

func (h *HUD) State() HUDState { return h.state }

// Receive dispatches on sender, then kind
func (h *HUD) Receive(msg event.Message) {
	if !h.apply(msg) {
		h.log.Debug("unhandled message", "kind", msg.Kind.String(), "sender", msg.Sender.String())
		return
	}
	for _, fn := range h.observers {
		fn(msg, h.state)
	}
}

func (h *HUD) apply(msg event.Message) bool {
	switch msg.Sender {
	case core.SigShooting:
		switch msg.Kind {
		case event.KindReloadStarted:
			h.state.Reloading = true
			h.state.Reloads++
			return true
		case event.KindReloadFinished:
			h.state.Reloading = false
			return true
		case event.KindProjectileSpawned:
			h.state.Shots++
			return true
		}
	case core.SigHoming:
		switch msg.Kind {
		case event.KindProjectileSpawned:
			h.state.HostileShots++
			return true
		case event.KindTurretHealthChanged:
			if p, ok := msg.Payload.(event.Health); ok {
				h.state.TurretHealth = p.Current
				h.state.TurretMax = p.Max
				return true
			}
		}
	case core.SigPlayer:
		if msg.Kind == event.KindPlayerHealthChanged {
			if p, ok := msg.Payload.(event.Health); ok {
				h.state.PlayerHealth = p.Current
				h.state.PlayerMax = p.Max
				return true
			}
		}
	case core.SigMediator:
		if msg.Kind == event.KindReset {
			// Player health is re-announced by the player itself
			h.state.Reloading = false
			h.state.Shots = 0
			h.state.HostileShots = 0
			h.state.Reloads = 0
			h.state.TurretHealth = 0
			return true
		}
	}
	return false
}
