package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	Keys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlS:  IntentToggleMute,
			tcell.KeyLeft:   IntentOrbitLeft,
			tcell.KeyRight:  IntentOrbitRight,
			tcell.KeyUp:     IntentOrbitUp,
			tcell.KeyDown:   IntentOrbitDown,
		},
		Runes: map[rune]Intent{
			'q': IntentQuit,
			' ': IntentPause,
			'h': IntentToggleHUD,
			'+': IntentSpeedUp,
			'=': IntentSpeedUp,
			'-': IntentSpeedDown,
			']': IntentStarGrow,
			'[': IntentStarShrink,
			'o': IntentToggleOrbits,
			'l': IntentToggleLabels,
			'g': IntentToggleGravity,
			't': IntentCycleTracking,
			'T': IntentClearTracking,
			'z': IntentZoomIn,
			'x': IntentZoomOut,
		},
	}
}

// Lookup resolves a key event; unbound keys yield IntentNone
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}

// Merge applies override bindings on top of kt
// An override to IntentNone unbinds the key
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	for k, v := range override.Keys {
		if v == IntentNone {
			delete(kt.Keys, k)
			continue
		}
		kt.Keys[k] = v
	}
	for r, v := range override.Runes {
		if v == IntentNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = v
	}
}
