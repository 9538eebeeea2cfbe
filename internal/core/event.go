package core

// EventKind identifies what happened on the host side.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventResize
)

// Event is a single host event dispatched to the active scene.
// Key events carry the semantic actions their key is bound to.
type Event struct {
	Kind    EventKind
	Key     string   // Raw key name as reported by the host, for diagnostics
	Actions []Action // Actions bound to Key (may be empty for unbound keys)
	Width   int      // New size for EventResize
	Height  int
}

// KeyDown builds a key press event.
func KeyDown(key string, actions ...Action) Event {
	return Event{Kind: EventKeyDown, Key: key, Actions: actions}
}

// Has returns true if the event carries the given action.
func (e Event) Has(a Action) bool {
	for _, got := range e.Actions {
		if got == a {
			return true
		}
	}
	return false
}
