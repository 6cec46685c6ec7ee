package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionWest             // h
	ActionEast             // l
	ActionNorth            // k
	ActionSouth            // j
	ActionNorthWest        // y
	ActionNorthEast        // u
	ActionSouthWest        // b
	ActionSouthEast        // n
	ActionRestart          // r - start a fresh session
	ActionPause            // p - freeze input
	ActionQuit             // q, ctrl+c
)

// MoveActions lists the directional actions in a fixed order.
var MoveActions = []Action{
	ActionWest,
	ActionEast,
	ActionNorth,
	ActionSouth,
	ActionNorthWest,
	ActionNorthEast,
	ActionSouthWest,
	ActionSouthEast,
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionWest:
		return "West"
	case ActionEast:
		return "East"
	case ActionNorth:
		return "North"
	case ActionSouth:
		return "South"
	case ActionNorthWest:
		return "NorthWest"
	case ActionNorthEast:
		return "NorthEast"
	case ActionSouthWest:
		return "SouthWest"
	case ActionSouthEast:
		return "SouthEast"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the eight directions.
func (a Action) IsMove() bool {
	return a >= ActionWest && a <= ActionSouthEast
}

// InputFrame represents the input delivered to a game in one Step call.
// The platform builds one frame per key press.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
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

// Move returns the first directional action in MoveActions order,
// or ActionNone when the frame carries no movement.
func (f InputFrame) Move() Action {
	for _, a := range MoveActions {
		if f.Has(a) {
			return a
		}
	}
	return ActionNone
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
