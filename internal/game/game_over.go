package game

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/actor"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/scene"
)

const (
	gameOverBlocks = 20
	wrapMargin     = 50.0

	// keyGrace is how long keys are ignored after the screen appears, so a
	// jump key still held or auto-repeating from the run cannot skip it.
	keyGrace = 0.5
)

var (
	winColors  = []core.Color{core.ColorGold, core.ColorBrightGreen, core.ColorBrightYellow}
	loseColors = []core.Color{core.ColorDarkRed, core.ColorDarkGray, core.ColorRed}
)

// Result is how a run ended. Finished is set only when the runner crossed
// the finish line; a run left with Back counts as won but not finished.
type Result struct {
	Won      bool
	Finished bool
	Score    int
	High     int
	Level    int
}

// NewHigh reports whether the run set the high score.
func (r Result) NewHigh() bool {
	return r.Score >= r.High && r.Score > 0
}

type drifter struct {
	body   *actor.Actor
	vx, vy float64
}

// GameOver shows the outcome over a shower of drifting blocks: rising
// fireworks after a win, falling debris after a loss.
type GameOver struct {
	scene.Base

	env     *Env
	result  Result
	blocks  []drifter
	gravity float64
	t       float64
}

// NewGameOver creates the outcome screen for a finished run.
func NewGameOver(env *Env, r Result) *GameOver {
	return &GameOver{env: env, result: r}
}

func (s *GameOver) String() string {
	if s.result.Won {
		return "game-over(won)"
	}
	return "game-over(lost)"
}

// Result returns the run outcome this screen shows.
func (s *GameOver) Result() Result { return s.result }

func (s *GameOver) OnEnter() {
	s.t = 0
	s.blocks = make([]drifter, gameOverBlocks)
	s.gravity = 100
	if s.result.Won {
		s.gravity = 50
	}

	for i := range s.blocks {
		fi := float64(i)
		size := 20 + float64(i%4)*10
		x := 50 + fi*60

		var d drifter
		if s.result.Won {
			d = drifter{
				body: actor.New(x, core.DesignHeight+size, size, actor.DefaultPhysics()),
				vx:   float64(i%3-1) * 30,
				vy:   -150 - fi*20,
			}
			d.body.SetColor(winColors[i%len(winColors)])
		} else {
			d = drifter{
				body: actor.New(x, -50, size, actor.DefaultPhysics()),
				vx:   float64(i%3-1) * 20,
				vy:   50 + fi*15,
			}
			d.body.SetColor(loseColors[i%len(loseColors)])
		}
		d.body.SetBreathOffset(fi * 0.5)
		s.blocks[i] = d
	}
}

// HandleEvent moves on to the next level after a finished level, else to
// the title.
func (s *GameOver) HandleEvent(ev core.Event) {
	if ev.Kind != core.EventKeyDown || s.t < keyGrace {
		return
	}
	s.env.Scenes.Replace(s.next(!ev.Has(core.ActionBack)))
}

func (s *GameOver) next(advance bool) scene.Scene {
	n := s.result.Level + 1
	if advance && s.result.Won && s.result.Finished && s.env.Levels != nil && s.env.Levels.Exists(n) {
		return NewLevelIntro(s.env, n)
	}
	return NewIntro(s.env)
}

func (s *GameOver) Update(dt float64) {
	s.t += dt
	if s.t >= s.env.Config.Screens.GameOverTimeout {
		s.t = 0
		s.env.Scenes.Replace(NewIntro(s.env))
		return
	}

	for i := range s.blocks {
		d := &s.blocks[i]
		d.vy += s.gravity * dt
		d.body.Move(d.vx*dt, d.vy*dt)
		if x := d.body.X(); x < -wrapMargin {
			d.body.SetPosition(core.DesignWidth+wrapMargin, d.body.Y())
		} else if x > core.DesignWidth+wrapMargin {
			d.body.SetPosition(-wrapMargin, d.body.Y())
		}
		d.body.Update(dt)
	}
}

func (s *GameOver) Render(dst core.Canvas) {
	dst.Fill(' ', core.ColorDefault)
	for _, d := range s.blocks {
		d.body.Render(dst)
	}

	title, sub, color := "GAME OVER", "Better luck next time", core.ColorBrightRed
	if s.result.Won {
		title, sub, color = "YOU WIN!", "Congratulations!", core.ColorGold
	}
	mid := core.DesignHeight / 2
	dst.TextCentered(mid-80, title, color)
	dst.TextCentered(mid-40, sub, core.ColorBrightWhite)
	dst.TextCentered(mid, fmt.Sprintf("SCORE: %d", s.result.Score), core.ColorBrightWhite)
	if s.result.NewHigh() {
		dst.TextCentered(mid+40, "NEW HIGH SCORE!", core.ColorBrightYellow)
	} else {
		dst.TextCentered(mid+40, fmt.Sprintf("HIGH SCORE: %d", s.result.High), core.ColorGray)
	}
	if s.t >= keyGrace {
		drawPressAnyKey(dst, s.t-keyGrace, s.env.Config.Screens.BlinkInterval)
	}
}
