package match

import (
	"fmt"
	"time"

	"github.com/vovakirdan/shapematch/internal/background"
	"github.com/vovakirdan/shapematch/internal/config"
	"github.com/vovakirdan/shapematch/internal/core"
	"github.com/vovakirdan/shapematch/internal/shapes"
)

// GameID identifies this game in score storage.
const GameID = "shapes"

// Game is one timed round: a Session driven by a Clock, plus everything
// needed to draw it.
type Game struct {
	cfg     config.MatchConfig
	catalog []Token
	drawers []shapes.DrawFunc // Parallel to catalog
	bg      *background.Background

	slotColor   core.Color
	placedColor core.Color

	session *Session
	clock   *Clock
	now     time.Time // Time of the latest tick
}

// RoundResult summarizes a finished round.
type RoundResult struct {
	Score   int
	Placed  int
	Total   int
	Reason  EndReason
	Elapsed time.Duration
}

// New creates a game from cfg. bg may be nil for a solid canvas.
// The countdown starts immediately; Start restarts it.
func New(cfg config.MatchConfig, bg *background.Background) (*Game, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("match: %w", err)
	}

	catalog, err := CatalogFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	drawers := make([]shapes.DrawFunc, len(catalog))
	for i, t := range catalog {
		d, err := shapes.Drawer(t.Kind, cfg.Display.Shear)
		if err != nil {
			return nil, fmt.Errorf("match: token %q: %w", t.Name, err)
		}
		drawers[i] = d
	}

	slot, err := config.ParseColor(cfg.Display.SlotColor)
	if err != nil {
		return nil, fmt.Errorf("match: slot color: %w", err)
	}
	placed, err := config.ParseColor(cfg.Display.PlacedColor)
	if err != nil {
		return nil, fmt.Errorf("match: placed color: %w", err)
	}

	if bg == nil {
		bg = background.Solid()
	}

	g := &Game{
		cfg:         cfg,
		catalog:     catalog,
		drawers:     drawers,
		bg:          bg,
		slotColor:   slot,
		placedColor: placed,
	}
	g.Start(time.Now())
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Shape Match"
}

// Start resets tokens and score and starts the countdown at now.
func (g *Game) Start(now time.Time) {
	g.session = NewSession(g.catalog, Rules{
		ShapeSize:      g.cfg.Gameplay.ShapeSize,
		MatchThreshold: g.cfg.Gameplay.MatchThreshold,
	})
	g.clock = NewClock(now, g.cfg.Gameplay.Duration)
	g.now = now
}

// Tick advances the countdown. Ended is set on the tick that finishes the
// round, after which pointer input is ignored.
func (g *Game) Tick(now time.Time) core.StepResult {
	if now.After(g.now) {
		g.now = now
	}
	ended := g.clock.Tick(g.now)
	if ended {
		g.session.Finish()
	}
	return core.StepResult{State: g.State(), Ended: ended}
}

// Cancel ends the round early. Reports whether this call ended it.
func (g *Game) Cancel(now time.Time) bool {
	if now.After(g.now) {
		g.now = now
	}
	if !g.clock.Cancel(g.now) {
		return false
	}
	g.session.Finish()
	return true
}

// Handle forwards a pointer event to the session.
func (g *Game) Handle(ev core.PointerEvent) Interaction {
	return g.session.Handle(ev)
}

// Finished reports whether the round is over.
func (g *Game) Finished() bool {
	return g.clock.Phase() == PhaseFinished
}

// Session exposes the interaction state for inspection.
func (g *Game) Session() *Session {
	return g.session
}

// Canvas returns the logical canvas size.
func (g *Game) Canvas() (w, h int) {
	return g.cfg.Canvas.Width, g.cfg.Canvas.Height
}

// Hold returns how long the game over frame should stay on screen.
func (g *Game) Hold() time.Duration {
	return g.cfg.Display.Hold
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score(),
		Total:     len(g.catalog),
		Remaining: g.clock.Remaining(g.now),
		GameOver:  g.Finished(),
	}
}

// Result summarizes the round so far.
func (g *Game) Result() RoundResult {
	return RoundResult{
		Score:   g.session.Score(),
		Placed:  g.session.PlacedCount(),
		Total:   len(g.catalog),
		Reason:  g.clock.Reason(),
		Elapsed: g.clock.Elapsed(g.now),
	}
}
