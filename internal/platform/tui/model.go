package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/game"
	"github.com/vovakirdan/tui-runner/internal/level"
	"github.com/vovakirdan/tui-runner/internal/scene"
	"github.com/vovakirdan/tui-runner/internal/score"
)

// holdWindow is how long an action stays held after its key was seen.
// Terminals report no key releases, only presses and auto-repeats.
const holdWindow = 150 * time.Millisecond

// SlotFunc returns the high-score slot of a player.
type SlotFunc func(player string) score.BlobStore

// Options configures one play session.
type Options struct {
	Config  config.GameConfig
	Levels  *level.Catalog
	Slots   SlotFunc         // nil keeps high scores in memory
	Runs    game.RunRecorder // nil disables run history
	Player  string
	Logger  *log.Logger
	Runtime core.RuntimeConfig // zero fields fall back to core.DefaultConfig
}

// Model is the Bubble Tea model of one play session. It owns the session's
// scene stack and input state.
type Model struct {
	scenes   *scene.Manager
	input    *core.InputState
	keys     KeyMap
	screen   *core.Screen
	canvas   *ScreenCanvas
	fps      *fpsMeter
	log      *log.Logger
	held     map[core.Action]time.Time
	runtime  core.RuntimeConfig
	lastTick time.Time
	quitting bool
}

// NewModel creates a session starting at the title screen.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	defaults := core.DefaultConfig()
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = defaults.ScreenW, defaults.ScreenH
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = defaults.TickRate
	}
	if opts.Levels == nil {
		opts.Levels = level.Builtin()
	}

	scenes := scene.NewManager(logger)
	input := core.NewInputState()
	env := &game.Env{
		Scenes: scenes,
		Input:  input,
		Config: opts.Config,
		Levels: opts.Levels,
		Runs:   opts.Runs,
		Player: opts.Player,
		Logger: logger,
	}
	if opts.Slots != nil {
		env.HighScores = opts.Slots(opts.Player)
	}
	scenes.Push(game.Start(env))

	screen := core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	return Model{
		scenes:  scenes,
		input:   input,
		keys:    DefaultKeyMap(),
		screen:  screen,
		canvas:  NewScreenCanvas(screen),
		fps:     newFPSMeter(logger.WithPrefix("tui")),
		log:     logger.WithPrefix("tui"),
		held:    make(map[core.Action]time.Time),
		runtime: opts.Runtime,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.runtime.ScreenW, m.runtime.ScreenH = msg.Width, msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.scenes.HandleEvent(core.Event{Kind: core.EventResize, Width: msg.Width, Height: msg.Height})
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	actions := m.keys.Actions(msg)
	for _, a := range actions {
		m.input.Press(a)
		m.held[a] = now
	}
	m.scenes.HandleEvent(core.KeyDown(msg.String(), actions...))
	return m, nil
}

// handleTick runs one frame: releases stale holds, updates the scene stack
// and turns the input frame over.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.runtime)
	m.lastTick = now

	m.releaseExpired(now)
	m.scenes.Update(dt)
	m.input.BeginFrame()
	m.fps.Frame(now, dt)

	if m.scenes.Empty() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.runtime.TickRate)
}

func (m Model) releaseExpired(now time.Time) {
	for a, at := range m.held {
		if now.Sub(at) >= holdWindow {
			m.input.Release(a)
			delete(m.held, a)
		}
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := config.UserPath("screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}

	filename := fmt.Sprintf("runner_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

func (m Model) draw() {
	m.screen.Clear()
	m.scenes.Render(m.canvas)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// Quitting reports whether the session has ended.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts a local session in the alternate screen and blocks until it ends.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
