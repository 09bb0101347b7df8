package core

import "time"

// RuntimeConfig contains configuration passed to the game loop at start.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a round.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int           // Tokens placed so far
	Total     int           // Tokens in the catalog
	Remaining time.Duration // Countdown left, never negative
	GameOver  bool          // Whether the round has finished
}

// StepResult is returned by Game.Tick() after each frame.
type StepResult struct {
	State GameState
	Ended bool // True only on the tick the round finished
}
