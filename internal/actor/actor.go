// Package actor implements the player body: bottom-anchored position,
// vertical physics with gravity and jumping, and a cosmetic breathing
// animation that scales the drawn size without touching the hitbox.
package actor

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Breathing animation parameters.
const (
	BreathAmount   = 0.2  // drawn size varies by +/- 20%
	breathHalfTime = 1.05 // seconds from smallest to largest
)

// Physics holds the vertical motion constants, in design units.
type Physics struct {
	Gravity      float64 // downward acceleration, units/s^2
	JumpVelocity float64 // initial vertical speed of a jump, negative is up
}

// DefaultPhysics returns the stock platformer tuning.
func DefaultPhysics() Physics {
	return Physics{
		Gravity:      1800,
		JumpVelocity: -750,
	}
}

// Actor is a square body anchored at its bottom-center point.
type Actor struct {
	x, y     float64 // bottom-center X, bottom Y
	vy       float64
	grounded bool

	size  float64
	color core.Color
	phys  Physics

	breath   *gween.Tween
	inhaling bool
}

// New creates an actor with its bottom-center at (x, y).
func New(x, y, size float64, phys Physics) *Actor {
	a := &Actor{
		x:     x,
		y:     y,
		size:  size,
		color: core.ColorBrightRed,
		phys:  phys,
	}
	a.startBreath(true)
	return a
}

// X returns the bottom-center X coordinate.
func (a *Actor) X() float64 { return a.x }

// Y returns the bottom Y coordinate.
func (a *Actor) Y() float64 { return a.y }

// VelocityY returns the vertical velocity.
func (a *Actor) VelocityY() float64 { return a.vy }

// Grounded reports whether the actor rests on a surface.
func (a *Actor) Grounded() bool { return a.grounded }

// Size returns the base (unanimated) size.
func (a *Actor) Size() float64 { return a.size }

// SetSize changes the base size.
func (a *Actor) SetSize(size float64) { a.size = size }

// Color returns the draw color.
func (a *Actor) Color() core.Color { return a.color }

// SetColor changes the draw color.
func (a *Actor) SetColor(c core.Color) { a.color = c }

// ApplyGravity integrates one step of explicit Euler. It runs regardless of
// the grounded flag; landing is resolved separately by LandOn.
func (a *Actor) ApplyGravity(dt float64) {
	a.vy += a.phys.Gravity * dt
	a.y += a.vy * dt
}

// Jump launches the actor upward. Ignored while airborne.
func (a *Actor) Jump() {
	if !a.grounded {
		return
	}
	a.vy = a.phys.JumpVelocity
	a.grounded = false
}

// LandOn snaps the actor onto a surface once its bottom has reached or
// passed surfaceY. Above the surface it only clears the grounded flag.
func (a *Actor) LandOn(surfaceY float64) {
	if a.y >= surfaceY {
		a.y = surfaceY
		a.vy = 0
		a.grounded = true
		return
	}
	a.grounded = false
}

// LeaveGround marks the actor as unsupported, e.g. after running off a ledge.
func (a *Actor) LeaveGround() {
	a.grounded = false
}

// Move translates the actor without any physics.
func (a *Actor) Move(dx, dy float64) {
	a.x += dx
	a.y += dy
}

// SetPosition places the bottom-center anchor.
func (a *Actor) SetPosition(x, y float64) {
	a.x = x
	a.y = y
}

// ClampToScreen keeps the drawn square on screen at its largest animated
// size. The anchor is bottom-center, so the bottom bound is the raw height.
func (a *Actor) ClampToScreen(w, h float64) {
	maxSize := a.size * (1 + BreathAmount)
	half := maxSize / 2

	a.x = core.ClampF(a.x, half, w-half)
	if a.y < maxSize {
		a.y = maxSize
	}
	if a.y > h {
		a.y = h
	}
}

// Bounds returns the unanimated hitbox.
func (a *Actor) Bounds() core.Rect {
	return core.BottomAnchored(a.x, a.y, a.size, a.size)
}

// Update advances the breathing animation.
func (a *Actor) Update(dt float64) {
	_, done := a.breath.Update(float32(dt))
	if done {
		a.startBreath(!a.inhaling)
	}
}

// Scale returns the current breathing multiplier in [1-BreathAmount, 1+BreathAmount].
func (a *Actor) Scale() float64 {
	v, _ := a.breath.Update(0)
	return float64(v)
}

// SetBreathOffset advances the animation so several actors breathe out of step.
func (a *Actor) SetBreathOffset(seconds float64) {
	for seconds > 0 {
		step := seconds
		if step > breathHalfTime {
			step = breathHalfTime
		}
		a.Update(step)
		seconds -= step
	}
}

// Render draws the breathing square, keeping the bottom-center fixed.
func (a *Actor) Render(dst core.Canvas) {
	s := a.size * a.Scale()
	dst.FillRect(core.BottomAnchored(a.x, a.y, s, s), '█', a.color)
}

func (a *Actor) startBreath(inhale bool) {
	lo, hi := float32(1-BreathAmount), float32(1+BreathAmount)
	if inhale {
		a.breath = gween.New(lo, hi, breathHalfTime, ease.InOutSine)
	} else {
		a.breath = gween.New(hi, lo, breathHalfTime, ease.InOutSine)
	}
	a.inhaling = inhale
}
