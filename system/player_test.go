package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/lixenwraith/dodge3d/component"
	"github.com/lixenwraith/dodge3d/config"
	"github.com/lixenwraith/dodge3d/core"
	"github.com/lixenwraith/dodge3d/event"
)

func hostileHit(p *Player, id uint64) {
	p.Receive(from(core.SigHoming, event.NewHostileHit(id, core.SigHoming)))
}

func healthBuff(p *Player) {
	g, _ := component.GrantFor(component.BuffHealthRestore)
	p.Receive(from(core.SigBuff, event.NewBuffGranted(g)))
}

func TestPlayerHealthMonotonicUnderHits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxHealth := rapid.IntRange(1, 10).Draw(t, "max")
		w := newTestWorld(t, func(c *config.Config) { c.Player.MaxHealth = maxHealth })
		p := NewPlayer(w)

		prev := p.Health().Current
		for i := range rapid.IntRange(0, 30).Draw(t, "hits") {
			hostileHit(p, uint64(i))
			cur := p.Health().Current
			if cur > prev || cur < 0 {
				t.Fatalf("health went %d -> %d", prev, cur)
			}
			prev = cur
		}
	})
}

func TestPlayerDefeat(t *testing.T) {
	r := newRig(t, func(c *config.Config) { c.Player.MaxHealth = 2 })
	hostileHit(r.player, 1)
	assert.False(t, r.player.Defeated())
	hostileHit(r.player, 2)
	assert.True(t, r.player.Defeated())
	hostileHit(r.player, 3)
	assert.Zero(t, r.player.Health().Current)

	assert.False(t, r.shooting.Fire(), "shooting engine learned of the defeat")
	assert.Zero(t, r.hud.State().PlayerHealth)
}

func TestHealthRestoreCapped(t *testing.T) {
	w := newTestWorld(t, func(c *config.Config) { c.Player.CapHealthRestore = true })
	p := NewPlayer(w)
	healthBuff(p)
	assert.Equal(t, w.Config.Player.MaxHealth, p.Health().Current)

	hostileHit(p, 1)
	healthBuff(p)
	assert.Equal(t, w.Config.Player.MaxHealth, p.Health().Current)
}

func TestHealthRestoreUncapped(t *testing.T) {
	w := newTestWorld(t, func(c *config.Config) { c.Player.CapHealthRestore = false })
	p := NewPlayer(w)
	healthBuff(p)
	assert.Equal(t, w.Config.Player.MaxHealth+1, p.Health().Current)
}

func TestPlayerIgnoresOtherBuffs(t *testing.T) {
	w := newTestWorld(t)
	p := NewPlayer(w)
	hostileHit(p, 1)
	g, _ := component.GrantFor(component.BuffAmmoCapacity)
	p.Receive(from(core.SigBuff, event.NewBuffGranted(g)))
	assert.Equal(t, w.Config.Player.MaxHealth-1, p.Health().Current)
}

func TestHostileHitFromWrongSenderIgnored(t *testing.T) {
	w := newTestWorld(t)
	p := NewPlayer(w)
	p.Receive(from(core.SigShooting, event.NewHostileHit(1, core.SigShooting)))
	assert.Equal(t, w.Config.Player.MaxHealth, p.Health().Current)
}

func TestHUDObserver(t *testing.T) {
	r := newRig(t)
	var seen []event.Kind
	var last HUDState
	r.hud.Observe(func(msg event.Message, st HUDState) {
		seen = append(seen, msg.Kind)
		last = st
	})

	r.shooting.Fire()
	r.shooting.Reload()
	hostileHit(r.player, 1)

	require.Equal(t, []event.Kind{
		event.KindProjectileSpawned,
		event.KindReloadStarted,
		event.KindPlayerHealthChanged,
	}, seen)
	assert.Equal(t, 1, last.Shots)
	assert.True(t, last.Reloading)
	assert.Equal(t, r.w.Config.Player.MaxHealth-1, last.PlayerHealth)

	r.hud.Receive(from(core.SigBuff, event.NewReloadStarted()))
	assert.Len(t, seen, 3, "unhandled combinations are not observed")
}
