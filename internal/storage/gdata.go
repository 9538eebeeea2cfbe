package storage

import (
	"fmt"
	"strings"

	"github.com/quasilyte/gdata"

	"github.com/vovakirdan/tui-runner/internal/score"
)

// SaveData is a per-user save directory managed by gdata.
type SaveData struct {
	m *gdata.Manager
}

// OpenSaveData opens (creating if needed) the save directory for appName.
func OpenSaveData(appName string) (*SaveData, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open save data: %w", err)
	}
	return &SaveData{m: m}, nil
}

// Slot returns a high-score slot stored as one gdata item.
func (d *SaveData) Slot(key string) score.BlobStore {
	return gdataSlot{m: d.m, key: key}
}

type gdataSlot struct {
	m   *gdata.Manager
	key string
}

// LoadBlob returns nil when the item has never been saved.
func (s gdataSlot) LoadBlob() ([]byte, error) {
	data, err := s.m.LoadItem(s.key)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load %s: %w", s.key, err)
	}
	return data, nil
}

func (s gdataSlot) SaveBlob(data []byte) error {
	if err := s.m.SaveItem(s.key, data); err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", s.key, err)
	}
	return nil
}

// HighScoreKey returns the slot key of a player's high score. Anything but
// ASCII letters, digits, '-' and '_' is replaced so the key is a safe file name.
func HighScoreKey(player string) string {
	if player == "" {
		return "highscore"
	}
	b := []byte(strings.ToLower(player))
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			b[i] = '_'
		}
	}
	return "highscore_" + string(b)
}
