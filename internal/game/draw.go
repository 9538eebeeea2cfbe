package game

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// blinkOn reports whether blinking text is visible at time t.
func blinkOn(t, interval float64) bool {
	if interval <= 0 {
		return true
	}
	return int(t/interval)%2 == 0
}

// drawPressAnyKey draws the blinking prompt near the bottom of the canvas.
func drawPressAnyKey(dst core.Canvas, t, interval float64) {
	if blinkOn(t, interval) {
		dst.TextCentered(core.DesignHeight-100, "Press any key", core.ColorBrightWhite)
	}
}

// drawHUD draws lives on the left and score on the right.
func drawHUD(dst core.Canvas, name string, lives, maxLives, value, high int) {
	hearts := make([]rune, 0, maxLives)
	for i := 0; i < maxLives; i++ {
		if i < lives {
			hearts = append(hearts, '♥')
		} else {
			hearts = append(hearts, '·')
		}
	}
	dst.Text(20, 20, string(hearts), core.ColorBrightRed)
	dst.TextCentered(20, name, core.ColorGray)

	scoreText := fmt.Sprintf("SCORE %d", value)
	highText := fmt.Sprintf("HI %d", high)
	dst.Text(core.DesignWidth-20-float64(len(scoreText))*10, 20, scoreText, core.ColorBrightWhite)
	dst.Text(core.DesignWidth-20-float64(len(highText))*10, 45, highText, core.ColorGray)
}
