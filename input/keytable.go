package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the stock bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyUp:     IntentMoveForward,
			tcell.KeyDown:   IntentMoveBack,
			tcell.KeyLeft:   IntentTurnLeft,
			tcell.KeyRight:  IntentTurnRight,
			tcell.KeyEnter:  IntentTap,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'm': IntentToggleMute,
			'n': IntentNewRound,
			' ': IntentTap,
			'f': IntentHoldToggle,
			'r': IntentReload,
			't': IntentSpawnTurret,
			'T': IntentDespawnTurret,
			'w': IntentMoveForward,
			's': IntentMoveBack,
			'a': IntentStrafeLeft,
			'd': IntentStrafeRight,
		},
	}
}

// Lookup resolves a key event, IntentNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev == nil {
		return IntentNone
	}
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

// Merge applies a sparse override table on top of kt
// IntentNone entries unbind the key
func (kt *KeyTable) Merge(over *KeyTable) {
	if over == nil {
		return
	}
	for k, it := range over.SpecialKeys {
		if it == IntentNone {
			delete(kt.SpecialKeys, k)
			continue
		}
		kt.SpecialKeys[k] = it
	}
	for r, it := range over.Runes {
		if it == IntentNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = it
	}
}
