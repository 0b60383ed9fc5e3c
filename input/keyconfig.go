package input

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/samber/oops"
)

// Rune aliases for keys that are awkward to write on a command line
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"equals":    '=',
}

// Named special keys accepted in bindings
var specialNames = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"enter":  tcell.KeyEnter,
	"escape": tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+r": tcell.KeyCtrlR,
}

// LoadKeyConfig parses key=action pairs into a sparse override KeyTable
// Returns an error on unknown action names or invalid key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]IntentType),
		Runes:       make(map[rune]IntentType),
	}
	for key, action := range bindings {
		intent, ok := actionRegistry[strings.ToLower(strings.TrimSpace(action))]
		if !ok {
			return nil, oops.In("input").Code("unknown_action").With("key", key).Errorf("unknown action %q", action)
		}

		name := strings.TrimSpace(key)
		if special, ok := specialNames[strings.ToLower(name)]; ok {
			kt.SpecialKeys[special] = intent
			continue
		}
		if r, ok := runeAliases[strings.ToLower(name)]; ok {
			kt.Runes[r] = intent
			continue
		}
		if utf8.RuneCountInString(name) == 1 {
			r, _ := utf8.DecodeRuneInString(name)
			kt.Runes[r] = intent
			continue
		}
		return nil, oops.In("input").Code("invalid_key").With("action", action).Errorf("invalid key name %q", key)
	}
	return kt, nil
}
