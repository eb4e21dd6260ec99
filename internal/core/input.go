package core

// Action represents a logical button, abstracted from physical key presses.
// The simulation only ever sees actions, never raw device state.
type Action int

const (
	ActionNone     Action = iota
	ActionJumpUp          // Space, W, Up - jump above the ground line
	ActionJumpDown        // S, Down - dive below the ground line
	ActionRestart         // R, Enter - start a new run while paused
	ActionQuit            // Q, Ctrl+C - exit (host only)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJumpUp:
		return "JumpUp"
	case ActionJumpDown:
		return "JumpDown"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions newly pressed during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
