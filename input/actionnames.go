package input

// Action is a discrete game command a key can trigger
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionNextLevel
	ActionPrevLevel
	ActionReload
	ActionBeat
	ActionStickLeft
	ActionStickRight
	ActionStickUp
	ActionStickDown
	ActionStickCenter
	ActionToggleDebug
)

// actionRegistry maps canonical action names used in key config files to actions
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"quit":         ActionQuit,
	"next_level":   ActionNextLevel,
	"prev_level":   ActionPrevLevel,
	"reload":       ActionReload,
	"beat":         ActionBeat,
	"stick_left":   ActionStickLeft,
	"stick_right":  ActionStickRight,
	"stick_up":     ActionStickUp,
	"stick_down":   ActionStickDown,
	"stick_center": ActionStickCenter,
	"toggle_debug": ActionToggleDebug,
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

func (a Action) String() string {
	for name, v := range actionRegistry {
		if v == a {
			return name
		}
	}
	return "unknown"
}

// StickVector returns the analog deflection a stick action stands for
func (a Action) StickVector() (x, y float64, ok bool) {
	switch a {
	case ActionStickLeft:
		return -1, 0, true
	case ActionStickRight:
		return 1, 0, true
	case ActionStickUp:
		return 0, -1, true
	case ActionStickDown:
		return 0, 1, true
	case ActionStickCenter:
		return 0, 0, true
	}
	return 0, 0, false
}
