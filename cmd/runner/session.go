package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/level"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/score"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

const (
	storeGdata  = "gdata"
	storeSQLite = "sqlite"

	saveDataApp = "tui-runner"
)

// newLogger opens the log file. Stderr belongs to the TUI while it runs.
func newLogger() (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	path := flagLogFile
	if path == "" {
		path = config.UserPath("runner.log")
	}
	if path == "" {
		return log.NewWithOptions(os.Stderr, log.Options{Level: lvl}), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
	})
	return logger, func() { f.Close() }, nil
}

// gameConfig loads tuning and applies the difficulty preset.
func gameConfig(logger *log.Logger) (config.GameConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.GameConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("config not loaded, using defaults", "path", flagConfig, "err", err)
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

func levelCatalog() *level.Catalog {
	if flagLevels != "" {
		return level.Dir(flagLevels)
	}
	return level.Builtin()
}

// session builds the options shared by local and SSH play. The returned
// cleanup closes the run history database.
func session(logger *log.Logger) (tui.Options, func(), error) {
	if flagStore != storeGdata && flagStore != storeSQLite {
		return tui.Options{}, nil, fmt.Errorf("unknown --store %q (want %s or %s)", flagStore, storeGdata, storeSQLite)
	}

	cfg, err := gameConfig(logger)
	if err != nil {
		return tui.Options{}, nil, err
	}

	opts := tui.Options{
		Config:  cfg,
		Levels:  levelCatalog(),
		Logger:  logger,
		Runtime: core.RuntimeConfig{TickRate: flagFPS},
	}
	cleanup := func() {}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run history disabled", "db", flagDBPath, "err", err)
	} else {
		opts.Runs = store
		cleanup = func() { store.Close() }
	}

	switch {
	case flagStore == storeSQLite && store != nil:
		opts.Slots = func(player string) score.BlobStore {
			return store.Blob(storage.HighScoreKey(player))
		}
	case flagStore == storeGdata:
		data, err := storage.OpenSaveData(saveDataApp)
		if err != nil {
			logger.Warn("save data unavailable, high scores kept in memory", "err", err)
			break
		}
		opts.Slots = func(player string) score.BlobStore {
			return data.Slot(storage.HighScoreKey(player))
		}
	default:
		logger.Warn("high scores kept in memory", "store", flagStore)
	}

	logger.Info("session configured", "levels", opts.Levels.Source(), "store", flagStore,
		"difficulty", flagDifficulty, "scroll_speed", cfg.Run.ScrollSpeed, "lives", cfg.Player.Lives)
	return opts, cleanup, nil
}
