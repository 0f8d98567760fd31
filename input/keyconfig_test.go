package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDefaultKeyTable(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		got  Action
		want Action
	}{
		{"esc", kt.SpecialKeys[tcell.KeyEscape], ActionQuit},
		{"up arrow", kt.SpecialKeys[tcell.KeyUp], ActionStickUp},
		{"space", kt.Runes[' '], ActionBeat},
		{"vi left", kt.Runes['h'], ActionStickLeft},
		{"wasd right", kt.Runes['d'], ActionStickRight},
		{"next", kt.Runes[']'], ActionNextLevel},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
keys:
  F1: toggle_debug
  Esc: none
runes:
  space: stick_center
  b: beat
`)
	kt, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}
	if kt.SpecialKeys[tcell.KeyF1] != ActionToggleDebug {
		t.Errorf("F1 = %v", kt.SpecialKeys[tcell.KeyF1])
	}
	if a, ok := kt.SpecialKeys[tcell.KeyEscape]; !ok || a != ActionNone {
		t.Errorf("Esc = %v, %v; want explicit none", a, ok)
	}
	if kt.Runes[' '] != ActionStickCenter || kt.Runes['b'] != ActionBeat {
		t.Errorf("runes = %v", kt.Runes)
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key":    "keys:\n  Hyper: quit\n",
		"unknown action": "runes:\n  z: teleport\n",
		"long rune":      "runes:\n  zz: quit\n",
		"bad yaml":       "keys: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadKeyConfig([]byte(doc)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestMergeKeyTable(t *testing.T) {
	base := DefaultKeyTable()
	override := &KeyTable{
		SpecialKeys: map[tcell.Key]Action{tcell.KeyEscape: ActionNone},
		Runes:       map[rune]Action{'q': ActionBeat, 'z': ActionReload},
	}
	merged := MergeKeyTable(base, override)

	if _, ok := merged.SpecialKeys[tcell.KeyEscape]; ok {
		t.Error("none should unbind Esc")
	}
	if merged.Runes['q'] != ActionBeat || merged.Runes['z'] != ActionReload {
		t.Errorf("overrides not applied: q=%v z=%v", merged.Runes['q'], merged.Runes['z'])
	}
	if base.Runes['q'] != ActionQuit {
		t.Error("merge mutated the base table")
	}
	if merged.SpecialKeys[tcell.KeyCtrlC] != ActionQuit {
		t.Error("unrelated default lost")
	}
}

func TestLoadKeyFile(t *testing.T) {
	kt, err := LoadKeyFile("")
	if err != nil || kt.Runes['q'] != ActionQuit {
		t.Fatalf("LoadKeyFile(\"\") = %v, %v", kt, err)
	}

	path := filepath.Join(t.TempDir(), "keys.yaml")
	if err := os.WriteFile(path, []byte("runes:\n  q: none\n  hash: quit\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	kt, err = LoadKeyFile(path)
	if err != nil {
		t.Fatalf("LoadKeyFile: %v", err)
	}
	if _, ok := kt.Runes['q']; ok {
		t.Error("q should be unbound")
	}
	if kt.Runes['#'] != ActionQuit {
		t.Error("hash alias not resolved")
	}

	if _, err := LoadKeyFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestActionNames(t *testing.T) {
	for name, a := range actionRegistry {
		if a.String() != name {
			t.Errorf("%v.String() = %q, want %q", a, a.String(), name)
		}
	}
	if x, y, ok := ActionStickUp.StickVector(); !ok || x != 0 || y != -1 {
		t.Errorf("StickUp = %v,%v,%v", x, y, ok)
	}
	if _, _, ok := ActionBeat.StickVector(); ok {
		t.Error("beat is not a stick action")
	}
}
