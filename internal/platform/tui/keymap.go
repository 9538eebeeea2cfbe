package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// KeyMap defines the key bindings of a play session.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Pause      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// binding pairs a key binding with the actions it fires.
type binding struct {
	key     key.Binding
	actions []core.Action
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Pause, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Pause, k.Back},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("up/w", "jump"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "jump/select"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

func (k KeyMap) bindings() []binding {
	return []binding{
		{k.Up, []core.Action{core.ActionMoveUp, core.ActionJump}},
		{k.Down, []core.Action{core.ActionMoveDown}},
		{k.Left, []core.Action{core.ActionMoveLeft}},
		{k.Right, []core.Action{core.ActionMoveRight}},
		{k.Jump, []core.Action{core.ActionConfirm, core.ActionJump}},
		{k.Confirm, []core.Action{core.ActionConfirm}},
		{k.Back, []core.Action{core.ActionBack}},
		{k.Pause, []core.Action{core.ActionPause}},
	}
}

// Actions returns the semantic actions bound to a key, or nil.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	var out []core.Action
	for _, b := range k.bindings() {
		if key.Matches(msg, b.key) {
			out = append(out, b.actions...)
		}
	}
	return out
}
