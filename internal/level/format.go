package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a level document encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ErrUnsupportedFormat is returned for files with an unknown extension.
var ErrUnsupportedFormat = errors.New("level: unsupported file format")

// Extensions returns the supported level file extensions.
func Extensions() []string {
	return []string{".yaml", ".yml", ".json"}
}

// FormatFromPath picks the document format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// fileLevel is the on-disk layout. Optional numbers are pointers so a missing
// key can be told apart from an explicit zero.
type fileLevel struct {
	Name      *string        `yaml:"name" json:"name"`
	Length    *float64       `yaml:"length" json:"length"`
	GroundY   *float64       `yaml:"groundY" json:"groundY"`
	Ground    []fileSegment  `yaml:"ground" json:"ground"`
	Platforms []filePlatform `yaml:"platforms" json:"platforms"`
	Treasures []fileTreasure `yaml:"treasures" json:"treasures"`
	Obstacles []fileObstacle `yaml:"obstacles" json:"obstacles"`
}

type fileSegment struct {
	Start float64 `yaml:"start" json:"start"`
	End   float64 `yaml:"end" json:"end"`
}

type filePlatform struct {
	X      float64  `yaml:"x" json:"x"`
	Y      float64  `yaml:"y" json:"y"`
	Width  *float64 `yaml:"width" json:"width"`
	Height *float64 `yaml:"height" json:"height"`
}

type fileTreasure struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Points *int    `yaml:"points" json:"points"`
}

type fileObstacle struct {
	X      float64  `yaml:"x" json:"x"`
	Y      float64  `yaml:"y" json:"y"`
	Width  *float64 `yaml:"width" json:"width"`
	Height *float64 `yaml:"height" json:"height"`
}

// parse decodes a document and fills in defaults.
func parse(data []byte, format Format) (Level, error) {
	var fl fileLevel

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &fl); err != nil {
			return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
		}
	case FormatJSON:
		// Unmarshal rejects anything after the first value.
		if err := json.Unmarshal(data, &fl); err != nil {
			return Level{}, fmt.Errorf("json unmarshal: %w", err)
		}
	default:
		return Level{}, ErrUnsupportedFormat
	}

	lvl := Level{
		Name:    orString(fl.Name, DefaultName),
		Length:  orFloat(fl.Length, DefaultLength),
		GroundY: orFloat(fl.GroundY, DefaultGroundY),
	}

	for _, s := range fl.Ground {
		lvl.Ground = append(lvl.Ground, GroundSegment{StartX: s.Start, EndX: s.End})
	}
	for _, p := range fl.Platforms {
		lvl.Platforms = append(lvl.Platforms, Platform{
			X:      p.X,
			Y:      p.Y,
			Width:  orFloat(p.Width, DefaultPlatformWidth),
			Height: orFloat(p.Height, DefaultPlatformHeight),
		})
	}
	for _, t := range fl.Treasures {
		points := DefaultTreasurePoints
		if t.Points != nil {
			points = *t.Points
		}
		lvl.Treasures = append(lvl.Treasures, Treasure{X: t.X, Y: t.Y, Points: points})
	}
	for _, o := range fl.Obstacles {
		lvl.Obstacles = append(lvl.Obstacles, Obstacle{
			X:      o.X,
			Y:      o.Y,
			Width:  orFloat(o.Width, DefaultObstacleWidth),
			Height: orFloat(o.Height, DefaultObstacleHeight),
		})
	}

	return lvl, nil
}

func orString(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func orFloat(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
