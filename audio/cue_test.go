package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/dodge3d/core"
	"github.com/lixenwraith/dodge3d/event"
	"github.com/lixenwraith/dodge3d/system"
)

func sent(sig core.Signature, msg event.Message) event.Message {
	msg.Sender = sig
	return msg
}

func TestCueTrackerShots(t *testing.T) {
	var tr CueTracker
	cue, ok := tr.Next(sent(core.SigShooting, event.NewProjectileSpawned(1, core.SigShooting)), system.HUDState{})
	assert.True(t, ok)
	assert.Equal(t, CueShot, cue)

	cue, ok = tr.Next(sent(core.SigHoming, event.NewProjectileSpawned(2, core.SigHoming)), system.HUDState{})
	assert.True(t, ok)
	assert.Equal(t, CueHostileShot, cue)

	cue, _ = tr.Next(sent(core.SigShooting, event.NewReloadStarted()), system.HUDState{Reloading: true})
	assert.Equal(t, CueReload, cue)
	cue, _ = tr.Next(sent(core.SigShooting, event.NewReloadFinished()), system.HUDState{})
	assert.Equal(t, CueReloadDone, cue)
}

func TestCueTrackerHealthDirection(t *testing.T) {
	var tr CueTracker
	msg := sent(core.SigPlayer, event.NewPlayerHealthChanged(5, 5))

	_, ok := tr.Next(msg, system.HUDState{PlayerHealth: 5})
	assert.False(t, ok, "first announcement has no baseline")

	cue, ok := tr.Next(msg, system.HUDState{PlayerHealth: 4})
	assert.True(t, ok)
	assert.Equal(t, CuePlayerHit, cue)

	cue, ok = tr.Next(msg, system.HUDState{PlayerHealth: 5})
	assert.True(t, ok)
	assert.Equal(t, CuePlayerHeal, cue)

	_, ok = tr.Next(msg, system.HUDState{PlayerHealth: 5})
	assert.False(t, ok, "unchanged health is silent")
}

func TestCueTrackerTurret(t *testing.T) {
	var tr CueTracker
	msg := sent(core.SigHoming, event.NewTurretHealthChanged(0, 3))

	tr.Next(msg, system.HUDState{})
	_, ok := tr.Next(msg, system.HUDState{TurretHealth: 3})
	assert.False(t, ok, "spawn is silent")

	cue, _ := tr.Next(msg, system.HUDState{TurretHealth: 2})
	assert.Equal(t, CueTurretHit, cue)
	tr.Next(msg, system.HUDState{TurretHealth: 1})
	cue, _ = tr.Next(msg, system.HUDState{TurretHealth: 0})
	assert.Equal(t, CueTurretDestroyed, cue)
}

func TestSoundManagerOnHUD(t *testing.T) {
	sm := NewSoundManager(DefaultConfig())
	var queued int
	sm.play = func(beep.Streamer) { queued++ }

	sm.OnHUD(sent(core.SigShooting, event.NewProjectileSpawned(1, core.SigShooting)), system.HUDState{Shots: 1})
	sm.OnHUD(sent(core.SigShooting, event.NewProjectileSpawned(2, core.SigShooting)), system.HUDState{Shots: 2})
	sm.OnHUD(sent(core.SigMediator, event.NewReset()), system.HUDState{})

	assert.Equal(t, 2, sm.Played(CueShot))
	assert.Equal(t, 2, queued)
	assert.Zero(t, sm.Played(CueReload))
}

func TestSoundManagerSkipsMutedCue(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Volumes[CueShot] = 0
	sm := NewSoundManager(cfg)
	sm.play = func(beep.Streamer) { t.Fatal("muted cue reached the output") }
	sm.Play(CueShot)
	assert.Zero(t, sm.Played(CueShot))
}

func TestSoundManagerDisabledInitialize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)
	assert.NoError(t, sm.Initialize())
	sm.Play(CueShot) // uninitialized speaker output drops the cue
	sm.Cleanup()
	assert.Equal(t, 1, sm.Played(CueShot))
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DODGE3D_AUDIO_ENABLED", "false")
	t.Setenv("DODGE3D_AUDIO_MASTER_VOLUME", "3")
	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 1.0, cfg.MasterVolume)
	assert.Equal(t, DefaultConfig().Volumes, cfg.Volumes)
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(DefaultConfig())
	sm.play = func(beep.Streamer) {}

	assert.True(t, sm.ToggleMute())
	sm.Play(CueReload)
	assert.Zero(t, sm.Played(CueReload))

	assert.False(t, sm.ToggleMute())
	sm.Play(CueReload)
	assert.Equal(t, 1, sm.Played(CueReload))
}
