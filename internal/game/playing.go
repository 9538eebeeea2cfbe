package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/actor"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/level"
	"github.com/vovakirdan/tui-runner/internal/scene"
	"github.com/vovakirdan/tui-runner/internal/score"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

type playState int

const (
	stateRunning playState = iota
	stateDeathPaused
)

// deathOutcome is what happens when the death pause runs out.
type deathOutcome int

const (
	outcomeRestart deathOutcome = iota
	outcomeGameOver
)

// Playing is the auto-running level scene. The runner stays at a fixed
// screen X while the world scrolls by at a constant speed; the player only
// decides when to jump.
type Playing struct {
	scene.Base

	env    *Env
	log    *log.Logger
	number int

	level  *level.Level
	player *actor.Actor
	score  score.Score
	lives  *score.Lives

	distance   float64
	state      playState
	outcome    deathOutcome
	deathTimer float64
	finished   bool
	completed  bool // crossed the finish line
}

// NewPlaying creates the scene for level number n.
func NewPlaying(env *Env, n int) *Playing {
	return &Playing{
		env:    env,
		log:    env.logger("playing"),
		number: n,
		lives:  score.NewLives(env.Config.Player.Lives),
	}
}

func (p *Playing) String() string { return fmt.Sprintf("playing(%d)", p.number) }

// OnEnter loads the level and the high score and puts the runner at the start.
func (p *Playing) OnEnter() {
	p.level = level.New()
	if p.env.Levels != nil {
		if err := p.env.Levels.Load(p.number, p.level); err != nil {
			p.log.Warn("level load failed, using defaults", "level", p.number, "err", err)
		}
	}
	p.log.Info("level started", "level", p.number, "name", p.level.Name,
		"length", p.level.Length, "treasures", p.level.Remaining())

	if err := p.score.LoadHigh(p.env.HighScores); err != nil {
		p.log.Warn("high score unavailable", "err", err)
	}

	cfg := p.env.Config
	p.player = actor.New(cfg.Player.StartX, p.level.GroundY, cfg.Player.Width, actor.Physics{
		Gravity:      cfg.Physics.Gravity,
		JumpVelocity: cfg.Physics.JumpVelocity,
	})
	p.restart()

	// A key that opened this scene must not count as a jump.
	p.input().Reset()
}

// OnResume drops edges from the key that closed the pause overlay.
func (p *Playing) OnResume() {
	p.input().Reset()
}

// HandleEvent opens the pause overlay.
func (p *Playing) HandleEvent(ev core.Event) {
	if ev.Kind != core.EventKeyDown || p.finished || p.state != stateRunning {
		return
	}
	if ev.Has(core.ActionPause) {
		p.env.Scenes.Push(NewPause(p.env))
	}
}

// Update runs one frame of the level.
func (p *Playing) Update(dt float64) {
	if p.finished {
		return
	}
	if p.state == stateDeathPaused {
		p.updateDeathPause(dt)
		return
	}

	in := p.input()
	cfg := p.env.Config

	if in.JustPressed(core.ActionBack) {
		p.finish(true)
		return
	}
	if in.JustPressed(core.ActionJump) {
		p.player.Jump()
	}

	p.player.ApplyGravity(dt)

	worldX := p.worldX()
	half := cfg.Player.Width / 2
	left, right := worldX-half, worldX+half

	if !p.resolveLanding(left, right) {
		return
	}

	box := core.BottomAnchored(worldX, p.player.Y(), cfg.Player.Width, cfg.Player.Height)
	for _, o := range p.level.Obstacles {
		if box.Intersects(core.NewRect(o.X, o.Y, o.Width, o.Height)) {
			p.log.Debug("hit obstacle", "x", o.X, "distance", p.distance)
			p.loseLife()
			return
		}
	}

	cx, cy := box.Center()
	reach := half + cfg.Run.PickupBonus
	for i := range p.level.Treasures {
		t := &p.level.Treasures[i]
		if t.Collected {
			continue
		}
		if core.Distance(cx, cy, t.X, t.Y) < reach {
			t.Collected = true
			p.score.Add(t.Points)
			p.log.Debug("treasure collected", "points", t.Points, "score", p.score.Value())
		}
	}

	p.distance += cfg.Run.ScrollSpeed * dt
	p.score.RaiseTo(int(p.distance * cfg.Run.ScorePerDistance))

	if p.worldX() >= p.level.Length {
		p.completed = true
		p.finish(true)
		return
	}

	p.player.Update(dt)
}

// resolveLanding settles the runner on whatever is under its edges. It
// returns false when the runner fell off the screen and lost a life.
func (p *Playing) resolveLanding(left, right float64) bool {
	y, vy := p.player.Y(), p.player.VelocityY()
	l := p.level.PlatformSurfaceAt(left, y, vy)
	r := p.level.PlatformSurfaceAt(right, y, vy)

	switch {
	case l.OK || r.OK:
		surface := l.Y
		if r.OK && (!l.OK || r.Y > l.Y) {
			surface = r.Y
		}
		p.player.LandOn(surface)
	case p.level.HasGroundAt(left) || p.level.HasGroundAt(right):
		p.player.LandOn(p.level.GroundY)
	default:
		p.player.LeaveGround()
		if p.player.Y() > core.DesignHeight {
			p.log.Debug("fell into a gap", "distance", p.distance)
			p.loseLife()
			return false
		}
	}
	return true
}

func (p *Playing) loseLife() {
	p.lives.LoseLife()
	p.state = stateDeathPaused
	p.deathTimer = 0

	if p.lives.IsGameOver() {
		p.outcome = outcomeGameOver
		p.saveHigh()
	} else {
		p.outcome = outcomeRestart
	}
	p.log.Info("life lost", "lives", p.lives.Count(), "distance", int(p.distance))
}

func (p *Playing) updateDeathPause(dt float64) {
	p.deathTimer += dt
	if p.deathTimer < p.env.Config.Run.DeathPause {
		return
	}

	if p.outcome == outcomeGameOver {
		p.end(false)
		return
	}
	p.level.Reset()
	p.restart()
}

// restart puts the runner back at the start of the level, landed.
func (p *Playing) restart() {
	cfg := p.env.Config
	p.distance = 0
	p.state = stateRunning
	p.deathTimer = 0
	p.player.SetPosition(cfg.Player.StartX, p.level.GroundY)
	p.player.LandOn(p.level.GroundY)
}

// finish persists the high score and ends the run.
func (p *Playing) finish(won bool) {
	p.saveHigh()
	p.end(won)
}

func (p *Playing) end(won bool) {
	p.finished = true
	p.recordRun(won)
	p.log.Info("run finished", "level", p.number, "won", won, "completed", p.completed,
		"score", p.score.Value(), "high", p.score.High())

	p.env.Scenes.Replace(NewGameOver(p.env, Result{
		Won:      won,
		Finished: p.completed,
		Score:    p.score.Value(),
		High:     p.score.High(),
		Level:    p.number,
	}))
}

func (p *Playing) saveHigh() {
	if p.env.HighScores == nil {
		return
	}
	if err := p.score.SaveHigh(p.env.HighScores); err != nil {
		p.log.Warn("high score not saved", "err", err)
	}
}

func (p *Playing) recordRun(won bool) {
	if p.env.Runs == nil {
		return
	}
	_, err := p.env.Runs.SaveRun(storage.Run{
		Player:   p.env.Player,
		Level:    p.number,
		Score:    p.score.Value(),
		Won:      won,
		Distance: p.distance,
	})
	if err != nil {
		p.log.Warn("run not recorded", "err", err)
	}
}

func (p *Playing) worldX() float64 {
	return p.env.Config.Player.StartX + p.distance
}

func (p *Playing) input() *core.InputState {
	if p.env.Input == nil {
		p.env.Input = core.NewInputState()
	}
	return p.env.Input
}

// Render draws the world scrolled by the distance traveled, then the HUD.
func (p *Playing) Render(dst core.Canvas) {
	dst.Fill(' ', core.ColorDefault)
	if p.level == nil {
		return
	}
	scroll := p.distance

	for _, g := range p.level.Ground {
		r := core.NewRect(g.StartX-scroll, p.level.GroundY, g.EndX-g.StartX, core.DesignHeight-p.level.GroundY)
		dst.FillRect(r, '▓', core.ColorGreen)
	}
	for _, pl := range p.level.Platforms {
		dst.FillRect(core.NewRect(pl.X-scroll, pl.Y, pl.Width, pl.Height), '▬', core.ColorCyan)
	}
	for _, o := range p.level.Obstacles {
		dst.FillRect(core.NewRect(o.X-scroll, o.Y, o.Width, o.Height), '▲', core.ColorRed)
	}
	for _, t := range p.level.Treasures {
		if !t.Collected {
			dst.FillRect(core.NewRect(t.X-scroll-8, t.Y-8, 16, 16), '◆', core.ColorGold)
		}
	}
	finish := p.level.Length - scroll
	dst.FillRect(core.NewRect(finish, 0, 4, p.level.GroundY), '│', core.ColorBrightWhite)

	// The world scrolls under the runner, so it is drawn at its screen X.
	if p.player != nil {
		p.player.Render(dst)
	}

	drawHUD(dst, p.level.Name, p.lives.Count(), p.lives.Max(), p.score.Value(), p.score.High())

	if p.state == stateDeathPaused {
		msg := "OUCH!"
		if p.outcome == outcomeGameOver {
			msg = "NO LIVES LEFT"
		}
		dst.TextCentered(core.DesignHeight/2-50, msg, core.ColorBrightRed)
	}
}
