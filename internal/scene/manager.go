package scene

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Manager owns the scene stack. Push, Pop and Replace only record the
// request; the stack changes at the start of the next Update, in this order:
//
//  1. pending replace: exit and drop the top, enter and push the replacement
//  2. pending pops: exit and drop the top, resume the new top, repeated
//  3. pending pushes, in request order: pause the top, enter and push
//
// Only the top scene receives events and updates; all scenes are rendered.
type Manager struct {
	stack   []Scene
	pushes  []Scene
	pops    int
	replace Scene
	logger  *log.Logger
}

// NewManager creates an empty manager. A nil logger disables transition logs.
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{logger: logger.WithPrefix("scene")}
}

// Push schedules s to be pushed on top of the stack.
func (m *Manager) Push(s Scene) {
	if s == nil {
		return
	}
	m.pushes = append(m.pushes, s)
}

// Pop schedules removal of the top scene. Extra pops on an empty stack are
// dropped when the frame commits.
func (m *Manager) Pop() {
	m.pops++
}

// Replace schedules the top scene to be swapped for s. A later Replace in
// the same frame wins.
func (m *Manager) Replace(s Scene) {
	if s == nil {
		return
	}
	m.replace = s
}

// Update commits pending transitions, then updates the top scene.
func (m *Manager) Update(dt float64) {
	m.commit()

	if top := m.Current(); top != nil {
		top.Update(dt)
	}
}

// HandleEvent forwards an event to the top scene.
func (m *Manager) HandleEvent(ev core.Event) {
	if top := m.Current(); top != nil {
		top.HandleEvent(ev)
	}
}

// Render draws every scene from the bottom of the stack to the top.
func (m *Manager) Render(dst core.Canvas) {
	for _, s := range m.stack {
		s.Render(dst)
	}
}

// Current returns the top scene, or nil when the stack is empty.
func (m *Manager) Current() Scene {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// Len returns the number of scenes on the stack.
func (m *Manager) Len() int {
	return len(m.stack)
}

// Empty reports whether there is nothing left to run: no scenes and
// nothing pending. The host stops when this becomes true.
func (m *Manager) Empty() bool {
	return len(m.stack) == 0 && !m.pending()
}

func (m *Manager) pending() bool {
	return m.replace != nil || m.pops > 0 || len(m.pushes) > 0
}

func (m *Manager) commit() {
	if m.replace != nil {
		next := m.replace
		m.replace = nil

		if top := m.Current(); top != nil {
			top.OnExit()
			m.stack = m.stack[:len(m.stack)-1]
		}
		next.OnEnter()
		m.stack = append(m.stack, next)
		m.logger.Debug("replace", "scene", Name(next), "depth", len(m.stack))
	}

	pops := m.pops
	m.pops = 0
	for ; pops > 0 && len(m.stack) > 0; pops-- {
		top := m.Current()
		top.OnExit()
		m.stack[len(m.stack)-1] = nil
		m.stack = m.stack[:len(m.stack)-1]
		m.logger.Debug("pop", "scene", Name(top), "depth", len(m.stack))

		if next := m.Current(); next != nil {
			next.OnResume()
		}
	}

	if len(m.pushes) > 0 {
		pushes := m.pushes
		m.pushes = nil
		for _, s := range pushes {
			if top := m.Current(); top != nil {
				top.OnPause()
			}
			s.OnEnter()
			m.stack = append(m.stack, s)
			m.logger.Debug("push", "scene", Name(s), "depth", len(m.stack))
		}
	}
}
