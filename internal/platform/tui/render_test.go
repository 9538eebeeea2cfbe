package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestPaletteStyles(t *testing.T) {
	tests := []struct {
		name   string
		cell   core.Cell
		wantFG lipgloss.TerminalColor
		wantBG lipgloss.TerminalColor
	}{
		{"plain text", core.Cell{Rune: 'A', Color: core.ColorGold}, lipgloss.Color("220"), lipgloss.NoColor{}},
		{"ground band", core.Cell{Rune: '▓', Color: core.ColorGreen}, lipgloss.Color("2"), lipgloss.Color("22")},
		{"platform band", core.Cell{Rune: '▬', Color: core.ColorCyan}, lipgloss.Color("6"), lipgloss.Color("23")},
		{"default color", core.Cell{Rune: ' ', Color: core.ColorDefault}, lipgloss.NoColor{}, lipgloss.NoColor{}},
		{"unknown color", core.Cell{Rune: 'x', Color: core.Color(200)}, lipgloss.NoColor{}, lipgloss.NoColor{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			style := screenPalette.style(keyOf(tc.cell))
			if got := style.GetForeground(); got != tc.wantFG {
				t.Errorf("foreground = %v, expected %v", got, tc.wantFG)
			}
			if got := style.GetBackground(); got != tc.wantBG {
				t.Errorf("background = %v, expected %v", got, tc.wantBG)
			}
		})
	}
}

func TestRunsSplitOnBand(t *testing.T) {
	a := keyOf(core.Cell{Rune: '▓', Color: core.ColorGreen})
	b := keyOf(core.Cell{Rune: '#', Color: core.ColorGreen})
	if a == b {
		t.Error("terrain and plain cells of one color must not share a run")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(1, 0, "SCORE 10", core.ColorBrightWhite)
	s.DrawRect(0, 2, 12, 1, '▓', core.ColorGreen)
	s.DrawRect(3, 1, 4, 1, '▬', core.ColorCyan)

	// Tests run without a terminal, so styles render as plain text.
	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen() = %q, expected %q", got, want)
	}
}
