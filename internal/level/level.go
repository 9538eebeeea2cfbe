// Package level holds the level model the runner plays over: ground
// segments, floating platforms, collectible treasures and obstacles, all in
// world space. Levels are loaded from YAML or JSON files.
package level

import (
	"fmt"
	"os"
)

// Defaults applied when a document leaves a field out.
const (
	DefaultName    = "Unnamed Level"
	DefaultLength  = 2000.0
	DefaultGroundY = 500.0

	DefaultPlatformWidth  = 100.0
	DefaultPlatformHeight = 20.0
	DefaultTreasurePoints = 100
	DefaultObstacleWidth  = 30.0
	DefaultObstacleHeight = 40.0
)

// LandingTolerance is how far below a platform top (in design units) the
// actor's bottom may already be and still land on it.
const LandingTolerance = 15.0

// GroundSegment is a solid stretch of floor, inclusive on both ends.
type GroundSegment struct {
	StartX float64
	EndX   float64
}

// Platform is a floating surface; only its top edge is solid.
type Platform struct {
	X, Y          float64
	Width, Height float64
}

// Treasure is a collectible centered at (X, Y).
type Treasure struct {
	X, Y      float64
	Points    int
	Collected bool
}

// Obstacle is a deadly box with its top-left corner at (X, Y).
type Obstacle struct {
	X, Y          float64
	Width, Height float64
}

// Landing is the result of a platform query. OK is false when there is
// nothing to land on.
type Landing struct {
	Y  float64
	OK bool
}

// Level is the mutable runtime state of one level. Geometry is fixed after
// Load; only treasure collection changes during play.
type Level struct {
	Name      string
	Length    float64 // world X of the finish line
	GroundY   float64
	Ground    []GroundSegment
	Platforms []Platform
	Treasures []Treasure
	Obstacles []Obstacle

	initialTreasures []Treasure
}

// New returns a level with default values and no geometry.
func New() *Level {
	return &Level{
		Name:    DefaultName,
		Length:  DefaultLength,
		GroundY: DefaultGroundY,
	}
}

// Load reads a level file. The format is picked from the file extension.
// On failure the level keeps whatever it held before the call.
func (l *Level) Load(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("level: cannot read %s: %w", path, err)
	}

	if err := l.LoadBytes(data, format); err != nil {
		return fmt.Errorf("level: %s: %w", path, err)
	}
	return nil
}

// LoadBytes parses a level document. The document is decoded into a scratch
// value first, so a malformed document never leaves a half-loaded level.
func (l *Level) LoadBytes(data []byte, format Format) error {
	parsed, err := parse(data, format)
	if err != nil {
		return err
	}

	*l = parsed
	l.initialTreasures = append([]Treasure(nil), l.Treasures...)
	return nil
}

// HasGroundAt reports whether any ground segment covers worldX.
func (l *Level) HasGroundAt(worldX float64) bool {
	for _, seg := range l.Ground {
		if worldX >= seg.StartX && worldX <= seg.EndX {
			return true
		}
	}
	return false
}

// PlatformSurfaceAt finds a platform the actor can land on. Nothing is
// reported while the actor moves upward. Platforms are scanned in file
// order and the first one whose span covers worldX and whose top lies
// within LandingTolerance above bottomY wins.
func (l *Level) PlatformSurfaceAt(worldX, bottomY, velocityY float64) Landing {
	if velocityY < 0 {
		return Landing{}
	}

	for _, p := range l.Platforms {
		if worldX < p.X || worldX > p.X+p.Width {
			continue
		}
		if bottomY >= p.Y && bottomY <= p.Y+LandingTolerance {
			return Landing{Y: p.Y, OK: true}
		}
	}
	return Landing{}
}

// Reset restores every treasure to its loaded, uncollected state.
func (l *Level) Reset() {
	l.Treasures = append(l.Treasures[:0], l.initialTreasures...)
}

// Remaining returns the number of treasures not yet collected.
func (l *Level) Remaining() int {
	n := 0
	for _, t := range l.Treasures {
		if !t.Collected {
			n++
		}
	}
	return n
}

// String summarizes the level for logs.
func (l *Level) String() string {
	return fmt.Sprintf("%q length=%.0f ground=%d platforms=%d treasures=%d obstacles=%d",
		l.Name, l.Length, len(l.Ground), len(l.Platforms), len(l.Treasures), len(l.Obstacles))
}
