package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc, Tab)
	SpecialKeys map[tcell.Key]Action

	// Printable keys, delivered by tcell as KeyRune
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyUp:     ActionStickUp,
			tcell.KeyDown:   ActionStickDown,
			tcell.KeyLeft:   ActionStickLeft,
			tcell.KeyRight:  ActionStickRight,
			tcell.KeyTab:    ActionToggleDebug,
			tcell.KeyCtrlR:  ActionReload,
		},
		Runes: map[rune]Action{
			'q': ActionQuit,
			'n': ActionNextLevel,
			']': ActionNextLevel,
			'p': ActionPrevLevel,
			'[': ActionPrevLevel,
			' ': ActionBeat,

			// WASD
			'w': ActionStickUp,
			'a': ActionStickLeft,
			's': ActionStickDown,
			'd': ActionStickRight,

			// vi
			'h': ActionStickLeft,
			'j': ActionStickDown,
			'k': ActionStickUp,
			'l': ActionStickRight,

			'x': ActionStickCenter,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action, len(kt.SpecialKeys)),
		Runes:       make(map[rune]Action, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		c.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	return c
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to ActionNone delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]Action) {
	for k, v := range override {
		if v == ActionNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
