// Package tui hosts the runner in a terminal with Bubble Tea: it turns key
// presses into actions, drives the scene stack from a fixed-rate tick and
// draws scenes into a cell buffer, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// maxFrameDelta caps dt so a stalled terminal does not teleport the runner.
const maxFrameDelta = 0.1

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks, clamped to
// [0, maxFrameDelta]. The first frame uses the nominal interval.
func frameDelta(last, now time.Time, rt core.RuntimeConfig) float64 {
	if last.IsZero() {
		return rt.FrameSeconds()
	}
	dt := now.Sub(last).Seconds()
	switch {
	case dt < 0:
		return 0
	case dt > maxFrameDelta:
		return maxFrameDelta
	}
	return dt
}
