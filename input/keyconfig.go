package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Rune aliases for keys that are awkward as bare YAML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"colon":     ':',
	"hash":      '#',
}

var keyByName map[string]tcell.Key

func init() {
	keyByName = make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		keyByName[strings.ToLower(name)] = k
	}
}

// keyFile is the on-disk shape of a key binding file
type keyFile struct {
	Keys  map[string]string `yaml:"keys"`
	Runes map[string]string `yaml:"runes"`
}

// LoadKeyConfig parses YAML key binding data into a sparse override KeyTable
// Only sections and keys present in the data are populated
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keyFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}
	if raw.Keys != nil {
		kt.SpecialKeys = make(map[tcell.Key]Action, len(raw.Keys))
		for name, actionName := range raw.Keys {
			k, ok := keyByName[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("[keys] unknown key name: %q", name)
			}
			a, err := resolveAction(actionName)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", name, err)
			}
			kt.SpecialKeys[k] = a
		}
	}
	if raw.Runes != nil {
		kt.Runes = make(map[rune]Action, len(raw.Runes))
		for keyStr, actionName := range raw.Runes {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			a, err := resolveAction(actionName)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			kt.Runes[r] = a
		}
	}
	return kt, nil
}

// LoadKeyFile reads path and merges it over the default bindings
// An empty path yields the defaults
func LoadKeyFile(path string) (*KeyTable, error) {
	base := DefaultKeyTable()
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap %s: %w", path, err)
	}
	override, err := LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return MergeKeyTable(base, override), nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}
