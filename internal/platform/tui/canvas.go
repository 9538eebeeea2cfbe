package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// ScreenCanvas draws design-space shapes into a terminal cell buffer. Shapes
// are scaled to the buffer; text is not, one rune per cell.
type ScreenCanvas struct {
	screen *core.Screen
}

// NewScreenCanvas wraps a screen buffer.
func NewScreenCanvas(s *core.Screen) *ScreenCanvas {
	return &ScreenCanvas{screen: s}
}

func (c *ScreenCanvas) scale() (sx, sy float64) {
	return float64(c.screen.Width()) / core.DesignWidth, float64(c.screen.Height()) / core.DesignHeight
}

// cells maps a design rect to a cell rect at least one cell in each direction.
func (c *ScreenCanvas) cells(r core.Rect) (x, y, w, h int) {
	sx, sy := c.scale()
	x0, x1 := int(math.Round(r.X*sx)), int(math.Round(r.Right()*sx))
	y0, y1 := int(math.Round(r.Y*sy)), int(math.Round(r.Bottom()*sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1 - x0, y1 - y0
}

func (c *ScreenCanvas) Fill(r rune, col core.Color) {
	c.screen.Fill(r, col)
}

func (c *ScreenCanvas) FillRect(rect core.Rect, r rune, col core.Color) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	x, y, w, h := c.cells(rect)
	c.screen.DrawRect(x, y, w, h, r, col)
}

func (c *ScreenCanvas) Box(rect core.Rect, col core.Color) {
	x, y, w, h := c.cells(rect)
	c.screen.DrawBox(x, y, core.Max(w, 2), core.Max(h, 2), col)
}

func (c *ScreenCanvas) Text(x, y float64, text string, col core.Color) {
	sx, sy := c.scale()
	c.screen.DrawText(int(math.Round(x*sx)), int(math.Round(y*sy)), text, col)
}

func (c *ScreenCanvas) TextCentered(y float64, text string, col core.Color) {
	_, sy := c.scale()
	x := (c.screen.Width() - utf8.RuneCountInString(text)) / 2
	c.screen.DrawText(core.Max(x, 0), int(math.Round(y*sy)), text, col)
}
