// Package config provides YAML-based game tuning for the runner: physics,
// the player body, run pacing and screen timers.
package config

import "fmt"

// GameConfig contains all gameplay tuning.
type GameConfig struct {
	Physics Physics `yaml:"physics"`
	Player  Player  `yaml:"player"`
	Run     Run     `yaml:"run"`
	Screens Screens `yaml:"screens"`
}

// Physics defines vertical motion in design units.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration, units/s^2
	JumpVelocity float64 `yaml:"jump_velocity"` // Negative = upward
}

// Player defines the runner's body and life budget.
type Player struct {
	StartX float64 `yaml:"start_x"` // Fixed screen X of the runner
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Lives  int     `yaml:"lives"` // Starting lives; the cap is two more
}

// Run defines auto-scroll pacing and scoring.
type Run struct {
	ScrollSpeed      float64 `yaml:"scroll_speed"`       // World units per second
	ScorePerDistance float64 `yaml:"score_per_distance"` // Score floor per world unit traveled
	DeathPause       float64 `yaml:"death_pause"`        // Seconds frozen after losing a life
	PickupBonus      float64 `yaml:"pickup_bonus"`       // Added to half the player width for treasure pickup
}

// Screens defines timers of the menu screens.
type Screens struct {
	GameOverTimeout float64 `yaml:"game_over_timeout"` // Seconds before returning to the intro
	BlinkInterval   float64 `yaml:"blink_interval"`    // Seconds per "press any key" blink phase
}

// Validate reports the first value that would make the game unplayable.
func (c GameConfig) Validate() error {
	switch {
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("config: physics.gravity must be positive, got %v", c.Physics.Gravity)
	case c.Physics.JumpVelocity >= 0:
		return fmt.Errorf("config: physics.jump_velocity must be negative, got %v", c.Physics.JumpVelocity)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	case c.Player.Lives <= 0:
		return fmt.Errorf("config: player.lives must be positive, got %d", c.Player.Lives)
	case c.Run.ScrollSpeed <= 0:
		return fmt.Errorf("config: run.scroll_speed must be positive, got %v", c.Run.ScrollSpeed)
	case c.Run.DeathPause < 0:
		return fmt.Errorf("config: run.death_pause must not be negative, got %v", c.Run.DeathPause)
	case c.Screens.GameOverTimeout <= 0:
		return fmt.Errorf("config: screens.game_over_timeout must be positive, got %v", c.Screens.GameOverTimeout)
	}
	return nil
}
