// Package config provides YAML-based configuration loading for the
// shape matching round.
package config

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/shapematch/internal/core"
)

// MatchConfig contains all configuration for a round.
type MatchConfig struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Display  DisplayConfig  `yaml:"display"`
	Tokens   []TokenConfig  `yaml:"tokens"`
}

// CanvasConfig defines the logical drawing area.
type CanvasConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"` // Image path; empty means solid canvas
}

// GameplayConfig defines countdown and matching rules.
type GameplayConfig struct {
	Duration       time.Duration `yaml:"duration"`
	ShapeSize      int           `yaml:"shape_size"`      // Half-size of shapes and pick regions
	MatchThreshold int           `yaml:"match_threshold"` // Per-axis drop tolerance
}

// DisplayConfig defines presentation parameters.
type DisplayConfig struct {
	Hold        time.Duration `yaml:"hold"` // How long the game over frame stays up
	Shear       int           `yaml:"shear"`
	SlotColor   string        `yaml:"slot_color"`
	PlacedColor string        `yaml:"placed_color"`
}

// PointConfig is a canvas coordinate.
type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Point converts to a core.Point.
func (p PointConfig) Point() core.Point {
	return core.Pt(p.X, p.Y)
}

// TokenConfig describes one catalog entry.
type TokenConfig struct {
	Name   string      `yaml:"name"`
	Kind   string      `yaml:"kind"`
	Color  string      `yaml:"color"`
	Source PointConfig `yaml:"source"`
	Target PointConfig `yaml:"target"`
}

// Overrides holds command-line overrides applied on top of a loaded config.
// Zero values leave the config untouched.
type Overrides struct {
	Duration       time.Duration
	MatchThreshold int
	Background     string
	NoBackground   bool
}

// Apply modifies cfg with the non-zero overrides.
func (o Overrides) Apply(cfg *MatchConfig) {
	if o.Duration > 0 {
		cfg.Gameplay.Duration = o.Duration
	}
	if o.MatchThreshold > 0 {
		cfg.Gameplay.MatchThreshold = o.MatchThreshold
	}
	if o.Background != "" {
		cfg.Canvas.Background = o.Background
	}
	if o.NoBackground {
		cfg.Canvas.Background = ""
	}
}

// ParseColor parses a hex color such as "#a359fc".
func ParseColor(s string) (core.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return core.ColorDefault, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return core.RGB(r, g, b), nil
}
