package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAmmoCapacityThree(t *testing.T) {
	a := NewAmmo(3, time.Second)

	require.True(t, a.Consume())
	assert.Equal(t, AmmoNormal, a.Mode)
	require.True(t, a.Consume())
	assert.Equal(t, AmmoNormal, a.Mode)
	require.True(t, a.Consume())
	assert.Equal(t, AmmoOutOfAmmo, a.Mode)

	assert.False(t, a.Consume(), "fourth shot must be rejected")
	assert.Equal(t, 3, a.Used)
}

func TestAmmoReloadCycle(t *testing.T) {
	a := NewAmmo(2, time.Second)
	a.Consume()

	require.True(t, a.BeginReload())
	assert.False(t, a.BeginReload(), "second reload is a no-op")
	assert.False(t, a.Consume(), "cannot fire while reloading")

	require.True(t, a.FinishReload())
	assert.Equal(t, 0, a.Used)
	assert.Equal(t, AmmoNormal, a.Mode)
	assert.False(t, a.FinishReload(), "stale completion is ignored")
}

func TestAmmoGrowKeepsOutOfAmmoUntilReload(t *testing.T) {
	a := NewAmmo(1, time.Second)
	a.Consume()
	a.Grow(3)

	assert.Equal(t, 4, a.Capacity)
	assert.Equal(t, AmmoOutOfAmmo, a.Mode)
	assert.False(t, a.CanFire())
}

func TestAmmoAdjustReloadFloor(t *testing.T) {
	a := NewAmmo(1, time.Second)
	a.AdjustReload(-500*time.Millisecond, 250*time.Millisecond)
	assert.Equal(t, 500*time.Millisecond, a.ReloadTime)
	a.AdjustReload(-500*time.Millisecond, 250*time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, a.ReloadTime)
}

func TestAmmoInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := NewAmmo(rapid.IntRange(1, 12).Draw(t, "capacity"), time.Second)
		ops := rapid.SliceOf(rapid.IntRange(0, 3)).Draw(t, "ops")
		for _, op := range ops {
			before := a.Used
			switch op {
			case 0:
				a.Consume()
			case 1:
				a.BeginReload()
			case 2:
				a.FinishReload()
			case 3:
				a.Grow(3)
			}
			if a.Used > a.Capacity {
				t.Fatalf("used %d exceeds capacity %d", a.Used, a.Capacity)
			}
			if op == 0 && a.Used == a.Capacity && before != a.Used && a.Mode != AmmoOutOfAmmo {
				t.Fatalf("emptied magazine left mode %s", a.Mode)
			}
		}
	})
}

func TestHealthFloorAndCap(t *testing.T) {
	h := NewHealth(2)
	assert.True(t, h.Damage(1))
	assert.True(t, h.Damage(5))
	assert.Equal(t, 0, h.Current)
	assert.False(t, h.Damage(1))
	assert.False(t, h.Alive())

	assert.True(t, h.Restore(5, true))
	assert.Equal(t, 2, h.Current)
	assert.True(t, h.Restore(1, false))
	assert.Equal(t, 3, h.Current)
}

func TestPickupConsumeOnce(t *testing.T) {
	p := PickupComponent{Kind: BuffAmmoCapacity}
	assert.True(t, p.Consume())
	assert.False(t, p.Consume())
}

func TestGrantTable(t *testing.T) {
	g, ok := GrantFor(BuffAmmoCapacity)
	require.True(t, ok)
	assert.Equal(t, float32(3), g.Effect())

	g, _ = GrantFor(BuffReloadTime)
	assert.Equal(t, float32(-0.5), g.Effect())

	_, ok = GrantFor(BuffNone)
	assert.False(t, ok)
}
