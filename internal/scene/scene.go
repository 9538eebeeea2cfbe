// Package scene provides the scene contract and the stack manager that owns
// every active scene. Scenes never mutate the stack directly: they hold a
// Requester and ask for transitions, which the Manager applies at the start
// of the next frame.
package scene

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Scene is a single screen of the game (menu, level, overlay).
// Lifecycle hooks are called by the Manager only:
//
//	OnEnter  - pushed onto the stack
//	OnExit   - removed from the stack
//	OnPause  - another scene was pushed on top
//	OnResume - the scene above was popped
type Scene interface {
	OnEnter()
	OnExit()
	OnPause()
	OnResume()

	// HandleEvent receives host events while the scene is on top.
	HandleEvent(ev core.Event)

	// Update advances the scene by dt seconds while it is on top.
	Update(dt float64)

	// Render draws the scene. Every scene on the stack is rendered,
	// bottom to top, so overlays see the frozen scene beneath them.
	Render(dst core.Canvas)
}

// Requester is the narrow view of the Manager handed to scenes.
type Requester interface {
	Push(s Scene)
	Pop()
	Replace(s Scene)
}

// Base provides no-op lifecycle hooks. Embed it and override what you need.
type Base struct{}

func (Base) OnEnter()                  {}
func (Base) OnExit()                   {}
func (Base) OnPause()                  {}
func (Base) OnResume()                 {}
func (Base) HandleEvent(ev core.Event) {}
func (Base) Update(dt float64)         {}
func (Base) Render(dst core.Canvas)    {}

// Name returns a printable name for a scene, used in logs.
func Name(s Scene) string {
	if s == nil {
		return "<nil>"
	}
	if st, ok := s.(fmt.Stringer); ok {
		return st.String()
	}
	return fmt.Sprintf("%T", s)
}
