package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/match.yaml
var defaultMatchYAML []byte

// Hardcoded catalog, kept in step with defaults/match.yaml.
var (
	defaultNames  = []string{"Circle", "Square", "Triangle", "Trapezium", "Rhombus", "Parallelogram"}
	defaultKinds  = []string{"circle", "square", "triangle", "trapezium", "rhombus", "parallelogram"}
	defaultColors = []string{"#a359fc", "#30c887", "#00d4ff", "#0f7efe", "#cb3c8e", "#2ba104"}
)

// DefaultMatchConfig returns the default round configuration.
func DefaultMatchConfig() MatchConfig {
	tokens := make([]TokenConfig, len(defaultNames))
	for i, name := range defaultNames {
		// Two rows of three in the source area
		source := PointConfig{X: 270 + i*200, Y: 90}
		if i >= 3 {
			source = PointConfig{X: 270 + (i-3)*200, Y: 210}
		}
		tokens[i] = TokenConfig{
			Name:   name,
			Kind:   defaultKinds[i],
			Color:  defaultColors[i],
			Source: source,
			Target: PointConfig{X: 100 + i*140, Y: 400},
		}
	}

	return MatchConfig{
		Canvas: CanvasConfig{
			Width:      900,
			Height:     600,
			Background: "bg.jpg",
		},
		Gameplay: GameplayConfig{
			Duration:       12 * time.Second,
			ShapeSize:      50,
			MatchThreshold: 50,
		},
		Display: DisplayConfig{
			Hold:        3 * time.Second,
			Shear:       20,
			SlotColor:   "#3c3c3c",
			PlacedColor: "#00c800",
		},
		Tokens: tokens,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMatchYAML
}
