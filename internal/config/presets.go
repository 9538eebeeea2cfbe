package config

import "fmt"

// Preset represents a named difficulty. A preset is applied once before a
// run starts; the scroll speed stays constant for the whole run.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// Presets returns the known presets from easiest to hardest.
func Presets() []Preset {
	return []Preset{PresetEasy, PresetNormal, PresetHard}
}

// ParsePreset converts a CLI value to a preset. An empty string means no
// preset and leaves the loaded configuration alone.
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case "", PresetEasy, PresetNormal, PresetHard:
		return Preset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Player.Lives = 5
		cfg.Run.ScrollSpeed = cfg.Run.ScrollSpeed * 0.8
		cfg.Run.PickupBonus = cfg.Run.PickupBonus * 2
	case PresetHard:
		cfg.Player.Lives = 1
		cfg.Run.ScrollSpeed = cfg.Run.ScrollSpeed * 1.3
		cfg.Run.DeathPause = cfg.Run.DeathPause / 2
	}
}
