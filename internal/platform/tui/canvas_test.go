package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestScreenCanvasFillRect(t *testing.T) {
	// 80x24 cells: one cell is 10x25 design units.
	s := core.NewScreen(80, 24)
	c := NewScreenCanvas(s)

	c.FillRect(core.NewRect(100, 50, 40, 50), '#', core.ColorRed)

	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			inside := x >= 10 && x < 14 && y >= 2 && y < 4
			if got := s.Get(x, y) == '#'; got != inside {
				t.Fatalf("cell (%d, %d) filled=%v, expected %v", x, y, got, inside)
			}
		}
	}
	if s.GetCell(10, 2).Color != core.ColorRed {
		t.Error("fill color lost")
	}
}

func TestScreenCanvasTinyRectStillVisible(t *testing.T) {
	s := core.NewScreen(80, 24)
	c := NewScreenCanvas(s)

	c.FillRect(core.NewRect(400, 300, 2, 2), '*', core.ColorWhite)
	if s.Get(40, 12) != '*' {
		t.Errorf("tiny rect not drawn:\n%s", s.String())
	}

	c.FillRect(core.NewRect(0, 0, 0, 10), '!', core.ColorWhite)
	if strings.ContainsRune(s.String(), '!') {
		t.Error("empty rect should draw nothing")
	}
}

func TestScreenCanvasClips(t *testing.T) {
	s := core.NewScreen(80, 24)
	c := NewScreenCanvas(s)

	c.FillRect(core.NewRect(-100, -100, 2000, 2000), '#', core.ColorRed)
	c.FillRect(core.NewRect(900, 700, 50, 50), '#', core.ColorRed)
	c.Text(790, 590, "overflowing text", core.ColorWhite)
}

func TestScreenCanvasText(t *testing.T) {
	s := core.NewScreen(80, 24)
	c := NewScreenCanvas(s)

	c.Text(100, 50, "HI", core.ColorWhite)
	if got := s.Row(2)[10:12]; got != "HI" {
		t.Errorf("Text drew %q at (10, 2)", got)
	}

	c.TextCentered(300, "MIDDLE", core.ColorWhite)
	if got := strings.TrimSpace(s.Row(12)); got != "MIDDLE" {
		t.Errorf("row 12 = %q", got)
	}
	if idx := strings.Index(s.Row(12), "MIDDLE"); idx != 37 {
		t.Errorf("MIDDLE starts at %d, expected 37", idx)
	}
}

func TestScreenCanvasBox(t *testing.T) {
	s := core.NewScreen(80, 24)
	c := NewScreenCanvas(s)

	c.Box(core.NewRect(0, 0, 100, 100), core.ColorWhite)
	if s.Get(0, 0) != '┌' || s.Get(9, 3) != '┘' {
		t.Errorf("box corners:\n%s", s.String())
	}
}
