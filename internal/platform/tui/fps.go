package tui

import (
	"time"

	"github.com/charmbracelet/log"
)

// perfWindow is how often frame statistics are logged.
const perfWindow = 5 * time.Second

// fpsMeter counts frames and logs the achieved rate at debug level.
type fpsMeter struct {
	log *log.Logger

	start   time.Time
	frames  int
	slowest float64
	fps     float64
}

func newFPSMeter(logger *log.Logger) *fpsMeter {
	return &fpsMeter{log: logger}
}

// Frame records one frame that advanced the game by dt seconds.
func (f *fpsMeter) Frame(now time.Time, dt float64) {
	if f.start.IsZero() {
		f.start = now
	}
	f.frames++
	if dt > f.slowest {
		f.slowest = dt
	}

	elapsed := now.Sub(f.start)
	if elapsed < perfWindow {
		return
	}
	f.fps = float64(f.frames) / elapsed.Seconds()
	f.log.Debug("perf", "fps", int(f.fps+0.5), "frames", f.frames,
		"slowest_ms", int(f.slowest*1000))

	f.start = now
	f.frames = 0
	f.slowest = 0
}

// FPS returns the rate measured over the last full window, or 0 before one.
func (f *fpsMeter) FPS() float64 {
	return f.fps
}
