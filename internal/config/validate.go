package config

import (
	"fmt"

	"github.com/vovakirdan/shapematch/internal/shapes"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that cfg describes a playable round.
func Validate(cfg MatchConfig) error {
	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_CANVAS",
			Message: fmt.Sprintf("canvas must be positive, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height),
		}
	}

	if cfg.Gameplay.Duration <= 0 {
		return ValidationError{
			Code:    "INVALID_DURATION",
			Message: fmt.Sprintf("duration must be positive, got %s", cfg.Gameplay.Duration),
		}
	}

	if cfg.Gameplay.ShapeSize <= 0 || cfg.Gameplay.MatchThreshold <= 0 {
		return ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("shape_size and match_threshold must be positive, got %d and %d", cfg.Gameplay.ShapeSize, cfg.Gameplay.MatchThreshold),
		}
	}

	if cfg.Display.Hold < 0 {
		return ValidationError{
			Code:    "INVALID_DURATION",
			Message: fmt.Sprintf("hold must not be negative, got %s", cfg.Display.Hold),
		}
	}

	for _, c := range []string{cfg.Display.SlotColor, cfg.Display.PlacedColor} {
		if _, err := ParseColor(c); err != nil {
			return ValidationError{Code: "INVALID_COLOR", Message: err.Error()}
		}
	}

	return validateTokens(cfg.Tokens)
}

// validateTokens checks the catalog: non-empty, unique names, known kinds, valid colors.
func validateTokens(tokens []TokenConfig) error {
	if len(tokens) == 0 {
		return ValidationError{
			Code:    "EMPTY_CATALOG",
			Message: "at least one token is required",
		}
	}

	known := make(map[shapes.Kind]bool)
	for _, k := range shapes.Kinds() {
		known[k] = true
	}

	seen := make(map[string]bool)
	for i, tok := range tokens {
		if tok.Name == "" {
			return ValidationError{
				Code:    "MISSING_NAME",
				Message: fmt.Sprintf("token %d has no name", i),
			}
		}
		if seen[tok.Name] {
			return ValidationError{
				Code:    "DUPLICATE_TOKEN",
				Message: fmt.Sprintf("token %q appears more than once", tok.Name),
			}
		}
		seen[tok.Name] = true

		if !known[shapes.Kind(tok.Kind)] {
			return ValidationError{
				Code:    "UNKNOWN_KIND",
				Message: fmt.Sprintf("token %q has unknown kind %q", tok.Name, tok.Kind),
			}
		}
		if _, err := ParseColor(tok.Color); err != nil {
			return ValidationError{
				Code:    "INVALID_COLOR",
				Message: fmt.Sprintf("token %q: %v", tok.Name, err),
			}
		}
	}

	return nil
}
