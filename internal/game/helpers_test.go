package game

import (
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/level"
	"github.com/vovakirdan/tui-runner/internal/scene"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

const frame = 1.0 / 60

// requests records scene transitions instead of applying them.
type requests struct {
	pushed   []scene.Scene
	pops     int
	replaced []scene.Scene
}

func (r *requests) Push(s scene.Scene)    { r.pushed = append(r.pushed, s) }
func (r *requests) Pop()                  { r.pops++ }
func (r *requests) Replace(s scene.Scene) { r.replaced = append(r.replaced, s) }

func (r *requests) lastReplace(t *testing.T) scene.Scene {
	t.Helper()
	if len(r.replaced) == 0 {
		t.Fatal("expected a replace request")
	}
	return r.replaced[len(r.replaced)-1]
}

type memBlob struct {
	data []byte
}

func (m *memBlob) LoadBlob() ([]byte, error)  { return m.data, nil }
func (m *memBlob) SaveBlob(data []byte) error { m.data = append([]byte(nil), data...); return nil }

type runLog struct {
	runs []storage.Run
}

func (l *runLog) SaveRun(r storage.Run) (int64, error) {
	l.runs = append(l.runs, r)
	return int64(len(l.runs)), nil
}

// nullCanvas accepts any drawing.
type nullCanvas struct {
	texts []string
}

func (c *nullCanvas) Fill(rune, core.Color)                   {}
func (c *nullCanvas) FillRect(core.Rect, rune, core.Color)    {}
func (c *nullCanvas) Box(core.Rect, core.Color)               {}
func (c *nullCanvas) Text(_, _ float64, s string, _ core.Color) { c.texts = append(c.texts, s) }
func (c *nullCanvas) TextCentered(_ float64, s string, _ core.Color) {
	c.texts = append(c.texts, s)
}

func (c *nullCanvas) has(s string) bool {
	for _, got := range c.texts {
		if got == s {
			return true
		}
	}
	return false
}

func newTestEnv(levels fstest.MapFS) (*Env, *requests) {
	req := &requests{}
	env := &Env{
		Scenes:     req,
		Input:      core.NewInputState(),
		Config:     config.DefaultGameConfig(),
		Levels:     level.NewCatalog(levels, "test"),
		HighScores: &memBlob{},
		Runs:       &runLog{},
		Player:     "tester",
	}
	return env, req
}

// step runs one host frame: the scene updates, then the input frame turns over.
func step(env *Env, s scene.Scene) {
	s.Update(frame)
	env.Input.BeginFrame()
}
