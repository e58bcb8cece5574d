package core

// Action represents a semantic game action, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P, Space
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Gesture is a raw swipe: the translation between press and release.
// Positive DX points right, positive DY points down.
type Gesture struct {
	DX, DY int
}

// InputFrame collects the input delivered to the game in one batch.
type InputFrame struct {
	// Actions maps action types to whether they were triggered.
	Actions map[Action]bool

	// Gesture is the last completed swipe, if any.
	Gesture *Gesture
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

// Swipe records a gesture, replacing any earlier one in this frame.
func (f *InputFrame) Swipe(dx, dy int) {
	f.Gesture = &Gesture{DX: dx, DY: dy}
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && f.Gesture == nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Gesture != nil {
		g := *f.Gesture
		clone.Gesture = &g
	}
	return clone
}
