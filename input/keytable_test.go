package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestDefaultKeyTable(t *testing.T) {
	kt := DefaultKeyTable()
	assert.Equal(t, IntentTap, kt.Lookup(runeKey(' ')))
	assert.Equal(t, IntentReload, kt.Lookup(runeKey('r')))
	assert.Equal(t, IntentDespawnTurret, kt.Lookup(runeKey('T')))
	assert.Equal(t, IntentTurnLeft, kt.Lookup(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	assert.Equal(t, IntentNone, kt.Lookup(runeKey('z')))
	assert.Equal(t, IntentNone, kt.Lookup(nil))
}

func TestLoadKeyConfigOverrides(t *testing.T) {
	over, err := LoadKeyConfig(map[string]string{
		"space": "reload",
		"x":     "fire",
		"f":     "none",
		"down":  "quit",
	})
	require.NoError(t, err)

	kt := DefaultKeyTable()
	kt.Merge(over)
	assert.Equal(t, IntentReload, kt.Lookup(runeKey(' ')))
	assert.Equal(t, IntentTap, kt.Lookup(runeKey('x')))
	assert.Equal(t, IntentNone, kt.Lookup(runeKey('f')), "none unbinds")
	assert.Equal(t, IntentQuit, kt.Lookup(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)))
	assert.Equal(t, IntentReload, kt.Lookup(runeKey('r')), "untouched keys keep defaults")
}

func TestLoadKeyConfigErrors(t *testing.T) {
	_, err := LoadKeyConfig(map[string]string{"x": "jump"})
	assert.Error(t, err)

	_, err = LoadKeyConfig(map[string]string{"xyz": "fire"})
	assert.Error(t, err)
}

func TestIntentNames(t *testing.T) {
	assert.Equal(t, "reload", IntentReload.String())
	assert.Equal(t, "none", IntentNone.String())
	assert.Len(t, ActionNames(), int(intentCount))
	assert.True(t, IntentStrafeLeft.Movement())
	assert.False(t, IntentTap.Movement())
}
