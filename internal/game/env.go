// Package game contains the runner's scenes: the intro menu, the level
// intro card, the playing scene with its auto-runner, the pause overlay and
// the game-over screen. Scenes share one Env and move between each other
// through the scene.Requester it carries.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/level"
	"github.com/vovakirdan/tui-runner/internal/scene"
	"github.com/vovakirdan/tui-runner/internal/score"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// RunRecorder stores finished runs. *storage.Store implements it.
type RunRecorder interface {
	SaveRun(r storage.Run) (int64, error)
}

// Env is everything a scene needs from the outside. One Env exists per
// player session and outlives every scene in it.
type Env struct {
	Scenes     scene.Requester
	Input      *core.InputState
	Config     config.GameConfig
	Levels     *level.Catalog
	HighScores score.BlobStore // nil keeps the high score in memory only
	Runs       RunRecorder     // nil disables run history
	Player     string          // name recorded with each run
	Logger     *log.Logger
}

// Start returns the first scene of a session.
func Start(env *Env) scene.Scene {
	return NewIntro(env)
}

func (e *Env) logger(prefix string) *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger.WithPrefix(prefix)
}
