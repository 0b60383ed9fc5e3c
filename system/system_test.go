package system

import (
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dodge3d/config"
	"github.com/lixenwraith/dodge3d/core"
	"github.com/lixenwraith/dodge3d/engine"
	"github.com/lixenwraith/dodge3d/event"
	"github.com/lixenwraith/dodge3d/logging"
	"github.com/lixenwraith/dodge3d/status"
)

const tick = time.Second / 60

// testConfig removes randomness from aim and muzzle placement
func testConfig() config.Config {
	cfg := config.Default()
	cfg.Seed = 1
	cfg.Projectile.FriendlyInaccuracyMin = 0
	cfg.Projectile.FriendlyInaccuracyMax = 0
	cfg.Projectile.HostileInaccuracyMin = 0
	cfg.Projectile.HostileInaccuracyMax = 0
	cfg.Projectile.FriendlyGravity = false
	cfg.Projectile.HostileGravity = false
	cfg.Player.MuzzleRight = 0
	cfg.Player.MuzzleUp = 0
	cfg.Player.MuzzleForward = 0
	return cfg
}

func newTestWorld(t require.TestingT, mutate ...func(*config.Config)) *engine.World {
	cfg := testConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	w, err := engine.NewWorld(cfg, engine.DefaultPose(), logging.Discard(), status.Unregistered())
	require.NoError(t, err)
	return w
}

// rig is a fully wired set of participants
type rig struct {
	w        *engine.World
	shooting *ShootingEngine
	homing   *HomingEngine
	buff     *BuffEngine
	player   *Player
	hud      *HUD
}

func newRig(t require.TestingT, mutate ...func(*config.Config)) *rig {
	w := newTestWorld(t, mutate...)
	r := &rig{
		w:        w,
		shooting: NewShootingEngine(w),
		homing:   NewHomingEngine(w),
		buff:     NewBuffEngine(w),
		player:   NewPlayer(w),
		hud:      NewHUD(w),
	}
	for _, p := range []engine.Participant{r.shooting, r.homing, r.buff, r.player, r.hud} {
		require.NoError(t, w.Bus.Register(p))
	}
	return r
}

// step runs n ticks of engine updates without draining timers
func (r *rig) step(n int) {
	for range n {
		r.shooting.Update()
		r.homing.Update()
		r.buff.Update()
	}
}

// recorder captures messages addressed to one signature
type recorder struct {
	engine.Link
	got []event.Message
}

func newRecorder(sig core.Signature) *recorder {
	return &recorder{Link: engine.NewLink(sig)}
}

func (r *recorder) Receive(msg event.Message) { r.got = append(r.got, msg) }

func (r *recorder) count(kind event.Kind) int {
	n := 0
	for _, m := range r.got {
		if m.Kind == kind {
			n++
		}
	}
	return n
}

// from stamps a sender for direct Receive calls
func from(sig core.Signature, msg event.Message) event.Message {
	msg.Sender = sig
	return msg
}
