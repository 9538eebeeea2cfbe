package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// ansiCodes is the 256-color code of every core.Color. An empty code keeps
// the terminal's default foreground.
var ansiCodes = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorGold:          "220",
	core.ColorDarkRed:       "88",
	core.ColorDarkGray:      "238",
}

// band is the background shading of a cell.
type band uint8

const (
	bandNone band = iota
	bandGround
	bandPlatform
	bandCount
)

// terrainBands shades the cells behind solid terrain, so ground and
// platforms read as filled bands instead of glyph patterns.
var terrainBands = map[rune]band{
	'▓': bandGround,
	'▬': bandPlatform,
}

var bandBackgrounds = [bandCount]string{
	bandGround:   "22",
	bandPlatform: "23",
}

// runKey identifies cells that can share one styled run.
type runKey struct {
	color core.Color
	band  band
}

func keyOf(c core.Cell) runKey {
	k := runKey{color: c.Color, band: terrainBands[c.Rune]}
	if int(k.color) >= len(ansiCodes) {
		k.color = core.ColorDefault
	}
	return k
}

// palette holds one prebuilt style per color and band.
type palette [len(ansiCodes)][bandCount]lipgloss.Style

func newPalette() *palette {
	var p palette
	for c, code := range ansiCodes {
		for b := band(0); b < bandCount; b++ {
			style := lipgloss.NewStyle()
			if code != "" {
				style = style.Foreground(lipgloss.Color(code))
			}
			if bg := bandBackgrounds[b]; bg != "" {
				style = style.Background(lipgloss.Color(bg))
			}
			p[c][b] = style
		}
	}
	return &p
}

func (p *palette) style(k runKey) lipgloss.Style {
	return p[k.color][k.band]
}

var screenPalette = newPalette()

// RenderScreen turns the cell buffer into styled terminal output. Adjacent
// cells sharing color and band go out as one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		for x := 0; x < s.Width(); {
			key := keyOf(s.GetCell(x, y))
			run = run[:0]
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if keyOf(cell) != key {
					break
				}
				run = append(run, cell.Rune)
			}
			sb.WriteString(screenPalette.style(key).Render(string(run)))
		}
	}
	return sb.String()
}
