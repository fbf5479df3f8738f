package core

// Action represents a semantic game action, abstracted from physical key presses.
// Backends translate their own key events into actions.
type Action int

const (
	ActionNone     Action = iota
	ActionAnyKey          // Set for every key press; starts a run from the title screen
	ActionJump            // Space, W, Up - regular jump
	ActionLongJump        // L - stronger jump
	ActionRestart         // R key - end the current run
	ActionQuit            // Q, Ctrl+C - exit the game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAnyKey:
		return "AnyKey"
	case ActionJump:
		return "Jump"
	case ActionLongJump:
		return "LongJump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
