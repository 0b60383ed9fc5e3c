package audio

import (
	"github.com/lixenwraith/dodge3d/core"
	"github.com/lixenwraith/dodge3d/event"
	"github.com/lixenwraith/dodge3d/system"
)

// CueTracker maps HUD messages to sound cues
// Health messages carry no direction, so the previous state decides hit versus heal
type CueTracker struct {
	last   system.HUDState
	primed bool
}

// Next returns the cue for a handled HUD message, false when it is silent
func (t *CueTracker) Next(msg event.Message, state system.HUDState) (Cue, bool) {
	prev, primed := t.last, t.primed
	t.last, t.primed = state, true

	switch msg.Kind {
	case event.KindProjectileSpawned:
		if msg.Sender == core.SigHoming {
			return CueHostileShot, true
		}
		return CueShot, true
	case event.KindReloadStarted:
		return CueReload, true
	case event.KindReloadFinished:
		return CueReloadDone, true
	case event.KindPlayerHealthChanged:
		if !primed {
			return 0, false
		}
		switch {
		case state.PlayerHealth < prev.PlayerHealth:
			return CuePlayerHit, true
		case state.PlayerHealth > prev.PlayerHealth:
			return CuePlayerHeal, true
		}
	case event.KindTurretHealthChanged:
		if !primed || state.TurretHealth >= prev.TurretHealth {
			return 0, false
		}
		if state.TurretHealth == 0 {
			return CueTurretDestroyed, true
		}
		return CueTurretHit, true
	}
	return 0, false
}
