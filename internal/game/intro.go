package game

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/actor"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/scene"
)

// Intro orbit layout, in design units.
const (
	introBlocks  = 6
	introCenterX = core.DesignWidth / 2
	introCenterY = 120.0
	introRadius  = 180.0
	introSize    = 24.0
)

var introColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
	core.ColorBrightYellow,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
}

// Intro is the title screen with a ring of breathing blocks.
type Intro struct {
	scene.Base

	env    *Env
	blocks []*actor.Actor
	t      float64
}

// NewIntro creates the title screen.
func NewIntro(env *Env) *Intro {
	return &Intro{env: env}
}

func (s *Intro) String() string { return "intro" }

func (s *Intro) OnEnter() {
	s.t = 0
	s.blocks = make([]*actor.Actor, introBlocks)
	for i := range s.blocks {
		b := actor.New(introCenterX, introCenterY, introSize, actor.DefaultPhysics())
		b.SetColor(introColors[i%len(introColors)])
		b.SetBreathOffset(float64(i))
		s.blocks[i] = b
	}
	s.place()
}

// HandleEvent starts level 1 on any key; Back leaves the game.
func (s *Intro) HandleEvent(ev core.Event) {
	if ev.Kind != core.EventKeyDown {
		return
	}
	if ev.Has(core.ActionBack) {
		s.env.Scenes.Pop()
		return
	}
	s.env.Scenes.Replace(NewLevelIntro(s.env, 1))
}

func (s *Intro) Update(dt float64) {
	s.t += dt
	for _, b := range s.blocks {
		b.Update(dt)
	}
	s.place()
}

// place moves every block along its own squashed orbit.
func (s *Intro) place() {
	n := float64(len(s.blocks))
	for i, b := range s.blocks {
		fi := float64(i)
		angle := s.t*(0.8+fi*0.2) + fi*2*math.Pi/n
		radius := introRadius + float64(i%2)*40
		b.SetPosition(introCenterX+math.Cos(angle)*radius, introCenterY+math.Sin(angle)*radius*0.5)
		b.ClampToScreen(core.DesignWidth, core.DesignHeight)
	}
}

func (s *Intro) Render(dst core.Canvas) {
	dst.Fill(' ', core.ColorDefault)
	for _, b := range s.blocks {
		b.Render(dst)
	}
	dst.TextCentered(core.DesignHeight/2, "RUNNER", core.ColorBrightYellow)
	dst.TextCentered(core.DesignHeight/2+40, "A Cool Adventure", core.ColorGray)
	drawPressAnyKey(dst, s.t, s.env.Config.Screens.BlinkInterval)
	dst.TextCentered(core.DesignHeight-50, "space/up: jump  p: pause  esc: quit", core.ColorGray)
}
