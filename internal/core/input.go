package core

import "github.com/zyedidia/generic/mapset"

// Action represents a semantic input, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - step west
	ActionRight          // Right arrow, D - step east
	ActionUp             // Up arrow, W - step north (also menu focus up)
	ActionDown           // Down arrow, S - step south (also menu focus down)
	ActionConfirm        // Enter - confirm on game over / victory, activate menu control
	ActionSelect         // Space - activate menu control only
	ActionMusic          // M - toggle music from the menu
	ActionQuit           // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionSelect:
		return "Select"
	case ActionMusic:
		return "Music"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state sampled for a single frame.
// It contains every action that is active during this frame.
type InputFrame struct {
	actions mapset.Set[Action]
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		actions: mapset.New[Action](),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.actions.Size() == 0 {
		// Zero-value frames have no backing set yet.
		f.actions = mapset.New[Action]()
	}
	f.actions.Put(a)
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.actions.Size() == 0 {
		return false
	}
	return f.actions.Has(a)
}
