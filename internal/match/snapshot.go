package match

import "time"

// Snapshot captures the complete round state for tests.
type Snapshot struct {
	Phase     Phase
	Reason    EndReason
	Score     int
	Remaining time.Duration
	Tokens    []Token
	Dragging  string // Name of the dragged token, empty if none
}

// Snapshot returns the current round snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:     g.clock.Phase(),
		Reason:    g.clock.Reason(),
		Score:     g.session.Score(),
		Remaining: g.clock.Remaining(g.now),
		Tokens:    g.session.Tokens(),
	}
	if d, ok := g.session.Drag(); ok {
		snap.Dragging = g.session.tokens[d.Token].Name
	}
	return snap
}
