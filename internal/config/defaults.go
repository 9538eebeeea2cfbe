package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default runner configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Physics: Physics{
			Gravity:      1800,
			JumpVelocity: -750,
		},
		Player: Player{
			StartX: 150,
			Width:  40,
			Height: 40,
			Lives:  3,
		},
		Run: Run{
			ScrollSpeed:      250,
			ScorePerDistance: 0.1,
			DeathPause:       1.5,
			PickupBonus:      10,
		},
		Screens: Screens{
			GameOverTimeout: 10,
			BlinkInterval:   0.5,
		},
	}
}
