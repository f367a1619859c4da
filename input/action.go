package input

// Action is a device-independent player command
type Action uint8

const (
	ActionNone Action = iota
	ActionFlap
	ActionTogglePause
	ActionRestart
	ActionHelp
	ActionMute
	ActionMusic
	ActionDebug
	ActionQuit
)

// actionRegistry maps canonical action names used in keymap files to actions
var actionRegistry = map[string]Action{
	"none":    ActionNone, // Unbind sentinel
	"flap":    ActionFlap,
	"pause":   ActionTogglePause,
	"restart": ActionRestart,
	"help":    ActionHelp,
	"mute":    ActionMute,
	"music":   ActionMusic,
	"debug":   ActionDebug,
	"quit":    ActionQuit,
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// String returns the canonical action name
func (a Action) String() string {
	for name, v := range actionRegistry {
		if v == a {
			return name
		}
	}
	return "unknown"
}
