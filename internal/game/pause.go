package game

import (
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/scene"
)

var pauseBox = core.NewRect(core.DesignWidth/2-160, core.DesignHeight/2-75, 320, 150)

// Pause is drawn over the frozen playing scene until dismissed.
type Pause struct {
	scene.Base
	env *Env
}

// NewPause creates the overlay.
func NewPause(env *Env) *Pause {
	return &Pause{env: env}
}

func (s *Pause) String() string { return "pause" }

func (s *Pause) HandleEvent(ev core.Event) {
	if ev.Kind != core.EventKeyDown {
		return
	}
	if ev.Has(core.ActionPause) || ev.Has(core.ActionConfirm) || ev.Has(core.ActionBack) {
		s.env.Scenes.Pop()
	}
}

func (s *Pause) Render(dst core.Canvas) {
	dst.FillRect(pauseBox, ' ', core.ColorDefault)
	dst.Box(pauseBox, core.ColorBrightWhite)
	dst.TextCentered(pauseBox.Y+45, "PAUSED", core.ColorBrightYellow)
	dst.TextCentered(pauseBox.Y+95, "p / enter to resume", core.ColorGray)
}
