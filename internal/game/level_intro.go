package game

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/level"
	"github.com/vovakirdan/tui-runner/internal/scene"
)

// LevelIntro is the "LEVEL N / Get Ready!" card shown before a level.
type LevelIntro struct {
	scene.Base

	env    *Env
	number int
	name   string
	t      float64
}

// NewLevelIntro creates the card for level number n.
func NewLevelIntro(env *Env, n int) *LevelIntro {
	return &LevelIntro{env: env, number: n}
}

func (s *LevelIntro) String() string { return fmt.Sprintf("level-intro(%d)", s.number) }

func (s *LevelIntro) OnEnter() {
	s.t = 0
	s.name = ""
	if s.env.Levels == nil {
		return
	}
	l := level.New()
	if err := s.env.Levels.Load(s.number, l); err == nil {
		s.name = l.Name
	}
}

// HandleEvent starts the level on any key; Back returns to the title.
func (s *LevelIntro) HandleEvent(ev core.Event) {
	if ev.Kind != core.EventKeyDown {
		return
	}
	if ev.Has(core.ActionBack) {
		s.env.Scenes.Replace(NewIntro(s.env))
		return
	}
	s.env.Scenes.Replace(NewPlaying(s.env, s.number))
}

func (s *LevelIntro) Update(dt float64) {
	s.t += dt
}

func (s *LevelIntro) Render(dst core.Canvas) {
	dst.Fill(' ', core.ColorDefault)
	dst.TextCentered(core.DesignHeight/2-60, fmt.Sprintf("LEVEL %d", s.number), core.ColorBrightYellow)
	if s.name != "" {
		dst.TextCentered(core.DesignHeight/2-20, s.name, core.ColorBrightCyan)
	}
	dst.TextCentered(core.DesignHeight/2+20, "Get Ready!", core.ColorBrightWhite)
	drawPressAnyKey(dst, s.t, s.env.Config.Screens.BlinkInterval)
}
