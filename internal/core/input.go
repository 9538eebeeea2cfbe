package core

// Action represents a semantic game action, abstracted from physical key presses.
// Scenes work with high-level intents; the platform owns the key bindings.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveUp           // W, Up arrow
	ActionMoveDown         // S, Down arrow
	ActionMoveLeft         // A, Left arrow
	ActionMoveRight        // D, Right arrow
	ActionConfirm          // Enter, Space
	ActionBack             // Esc, B
	ActionJump             // Space, W, Up - fired together with Confirm/MoveUp
	ActionPause            // P
)

// actionCount is the number of distinct actions, including ActionNone.
const actionCount = int(ActionPause) + 1

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputState tracks which actions are held this frame and which were held
// in the previous frame, so edges can be queried.
//
// Frame protocol: the host calls BeginFrame once per frame before feeding
// Press/Release for that frame, then lets scenes query the state.
type InputState struct {
	current  [actionCount]bool
	previous [actionCount]bool
}

// NewInputState creates an input state with nothing held.
func NewInputState() *InputState {
	return &InputState{}
}

// BeginFrame copies the current state into the previous state.
func (s *InputState) BeginFrame() {
	s.previous = s.current
}

// Press marks an action as held.
func (s *InputState) Press(a Action) {
	if valid(a) {
		s.current[a] = true
	}
}

// Release marks an action as no longer held.
func (s *InputState) Release(a Action) {
	if valid(a) {
		s.current[a] = false
	}
}

// Reset releases everything and forgets the previous frame.
func (s *InputState) Reset() {
	s.current = [actionCount]bool{}
	s.previous = [actionCount]bool{}
}

// Held reports whether the action is currently down.
func (s *InputState) Held(a Action) bool {
	return valid(a) && s.current[a]
}

// JustPressed reports whether the action went down this frame.
func (s *InputState) JustPressed(a Action) bool {
	return valid(a) && s.current[a] && !s.previous[a]
}

// JustReleased reports whether the action went up this frame.
func (s *InputState) JustReleased(a Action) bool {
	return valid(a) && !s.current[a] && s.previous[a]
}

func valid(a Action) bool {
	return a > ActionNone && int(a) < actionCount
}
