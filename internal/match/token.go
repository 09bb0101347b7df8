// Package match implements the timed shape matching round: the pointer
// interaction state machine, the countdown, and per-frame rendering.
// It has no Bubble Tea dependency; the platform feeds it pointer events
// and ticks.
package match

import (
	"fmt"

	"github.com/vovakirdan/shapematch/internal/config"
	"github.com/vovakirdan/shapematch/internal/core"
	"github.com/vovakirdan/shapematch/internal/shapes"
)

// Token is a named shape the player drags to its target slot.
type Token struct {
	Name   string
	Kind   shapes.Kind
	Color  core.Color
	Pos    core.Point // Current center
	Home   core.Point // Center in the source area
	Target core.Point // Center of the target slot
	Placed bool
}

// CatalogFromConfig builds the token catalog in configuration order.
func CatalogFromConfig(cfg config.MatchConfig) ([]Token, error) {
	tokens := make([]Token, 0, len(cfg.Tokens))
	for _, tc := range cfg.Tokens {
		c, err := config.ParseColor(tc.Color)
		if err != nil {
			return nil, fmt.Errorf("match: token %q: %w", tc.Name, err)
		}
		tokens = append(tokens, Token{
			Name:   tc.Name,
			Kind:   shapes.Kind(tc.Kind),
			Color:  c,
			Pos:    tc.Source.Point(),
			Home:   tc.Source.Point(),
			Target: tc.Target.Point(),
		})
	}
	return tokens, nil
}
