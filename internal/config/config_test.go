package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultGameConfig() {
		t.Errorf("embedded defaults = %+v\nhardcoded = %+v", cfg, DefaultGameConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultGameConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadCustomPathPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := []byte("run:\n  scroll_speed: 400\nplayer:\n  lives: 7\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Run.ScrollSpeed != 400 || cfg.Player.Lives != 7 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Physics.Gravity != 1800 || cfg.Player.Width != 40 {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(invalid, []byte("physics:\n  gravity: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "nope.yaml")},
		{"malformed", bad},
		{"invalid values", invalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(tc.path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if cfg != DefaultGameConfig() {
				t.Error("a failed load should still return usable defaults")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero gravity", func(c *GameConfig) { c.Physics.Gravity = 0 }},
		{"downward jump", func(c *GameConfig) { c.Physics.JumpVelocity = 10 }},
		{"zero width", func(c *GameConfig) { c.Player.Width = 0 }},
		{"no lives", func(c *GameConfig) { c.Player.Lives = 0 }},
		{"stopped scroll", func(c *GameConfig) { c.Run.ScrollSpeed = 0 }},
		{"negative pause", func(c *GameConfig) { c.Run.DeathPause = -1 }},
		{"no timeout", func(c *GameConfig) { c.Screens.GameOverTimeout = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestPresets(t *testing.T) {
	for _, p := range Presets() {
		got, err := ParsePreset(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}

	easy := DefaultGameConfig()
	ApplyPreset(&easy, PresetEasy)
	hard := DefaultGameConfig()
	ApplyPreset(&hard, PresetHard)
	normal := DefaultGameConfig()
	ApplyPreset(&normal, PresetNormal)

	if normal != DefaultGameConfig() {
		t.Error("normal preset should not change anything")
	}
	if !(easy.Run.ScrollSpeed < normal.Run.ScrollSpeed && normal.Run.ScrollSpeed < hard.Run.ScrollSpeed) {
		t.Errorf("scroll speeds not ordered: %v %v %v", easy.Run.ScrollSpeed, normal.Run.ScrollSpeed, hard.Run.ScrollSpeed)
	}
	if !(easy.Player.Lives > normal.Player.Lives && normal.Player.Lives > hard.Player.Lives) {
		t.Errorf("lives not ordered: %d %d %d", easy.Player.Lives, normal.Player.Lives, hard.Player.Lives)
	}
	for _, cfg := range []GameConfig{easy, hard} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset produced invalid config: %v", err)
		}
	}
}
