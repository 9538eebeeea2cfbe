package storage

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/score"
)

func TestSaveDataSlot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)

	data, err := OpenSaveData("runner-test")
	if err != nil {
		t.Skipf("save data unavailable here: %v", err)
	}
	slot := data.Slot("highscore")

	var fresh score.Score
	if err := fresh.LoadHigh(slot); err != nil {
		t.Fatalf("LoadHigh() on an empty slot failed: %v", err)
	}
	if fresh.High() != 0 {
		t.Errorf("High() = %d, expected 0", fresh.High())
	}

	var s score.Score
	s.Add(31337)
	if err := s.SaveHigh(slot); err != nil {
		t.Fatalf("SaveHigh() failed: %v", err)
	}

	var loaded score.Score
	if err := loaded.LoadHigh(data.Slot("highscore")); err != nil {
		t.Fatalf("LoadHigh() failed: %v", err)
	}
	if loaded.High() != 31337 {
		t.Errorf("High() = %d, expected 31337", loaded.High())
	}
}

func TestHighScoreKey(t *testing.T) {
	tests := []struct {
		player string
		want   string
	}{
		{"", "highscore"},
		{"alice", "highscore_alice"},
		{"Bob-2", "highscore_bob-2"},
		{"../etc/passwd", "highscore____etc_passwd"},
		{"jo sé", "highscore_jo_s__"},
	}

	for _, tc := range tests {
		if got := HighScoreKey(tc.player); got != tc.want {
			t.Errorf("HighScoreKey(%q) = %q, expected %q", tc.player, got, tc.want)
		}
	}
}
