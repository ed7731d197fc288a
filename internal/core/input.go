package core

// Action represents a platform-level action, abstracted from physical key presses.
// Movement and firing travel in InputFrame.Move and InputFrame.Fire instead.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - restart game after game over
	ActionQuit           // Q, Ctrl+C, Esc - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for a single simulation tick.
// Presenters build one per frame and pass it to Game.Step; nothing is read from globals.
type InputFrame struct {
	// DT is the elapsed time since the previous tick in seconds.
	// Zero means "use the runtime tick rate".
	DT float64

	// Move is the sum of +1 (right) and -1 (left) contributions from held inputs.
	Move int

	// Fire is edge-triggered: true only for the tick following the fire event.
	Fire bool

	// Actions holds platform actions triggered this tick.
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

// Clear consumes the one-shot parts of the frame (fire and actions).
// Move is level-triggered and survives; DT is rewritten every tick.
func (f *InputFrame) Clear() {
	f.Fire = false
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.DT = f.DT
	clone.Move = f.Move
	clone.Fire = f.Fire
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
