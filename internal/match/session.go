package match

import (
	"github.com/vovakirdan/shapematch/internal/core"
)

// Rules are the geometric parameters of picking and matching.
type Rules struct {
	ShapeSize      int // Half-width of the square pick region around a token
	MatchThreshold int // Per-axis distance below which a drop matches
}

// DragSession records the token under pointer control.
type DragSession struct {
	Token  int        // Index into the catalog
	Offset core.Point // Pointer minus token center at pick-up
}

// Outcome describes what a pointer event did.
type Outcome int

const (
	OutcomeNone    Outcome = iota // Nothing to do
	OutcomePicked                 // A drag started
	OutcomeMoved                  // The dragged token followed the pointer
	OutcomeMatched                // Drop landed on the target and locked
	OutcomeMissed                 // Drop was too far; token left where released
	OutcomeIgnored                // Round is over; input is gated
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomePicked:
		return "picked"
	case OutcomeMoved:
		return "moved"
	case OutcomeMatched:
		return "matched"
	case OutcomeMissed:
		return "missed"
	case OutcomeIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Interaction is the result of handling one pointer event.
type Interaction struct {
	Outcome Outcome
	Token   string // Name of the affected token, if any
}

// Session is the mutable state of one round: token placement, the
// optional drag and the score.
//
// Invariants: a placed token sits exactly on its target and is never
// picked again; the drag, if any, refers to an unplaced token; score
// equals the number of placed tokens.
type Session struct {
	rules    Rules
	tokens   []Token
	drag     *DragSession
	score    int
	finished bool
}

// NewSession starts a session with every token unplaced at home.
func NewSession(catalog []Token, rules Rules) *Session {
	tokens := make([]Token, len(catalog))
	for i, t := range catalog {
		t.Pos = t.Home
		t.Placed = false
		tokens[i] = t
	}
	return &Session{rules: rules, tokens: tokens}
}

// Clone returns an independent copy of the session.
func (s *Session) Clone() *Session {
	c := *s
	c.tokens = append([]Token(nil), s.tokens...)
	if s.drag != nil {
		d := *s.drag
		c.drag = &d
	}
	return &c
}

// Apply returns the session that results from ev without modifying s.
func Apply(s *Session, ev core.PointerEvent) (*Session, Interaction) {
	next := s.Clone()
	return next, next.Handle(ev)
}

// Handle applies a pointer event in place.
func (s *Session) Handle(ev core.PointerEvent) Interaction {
	if s.finished {
		return Interaction{Outcome: OutcomeIgnored}
	}

	switch e := ev.(type) {
	case core.PointerDown:
		return s.pick(e.At)
	case core.PointerMove:
		return s.move(e.At)
	case core.PointerUp:
		return s.drop()
	}
	return Interaction{}
}

// pick opens a drag on the first unplaced token, in catalog order, whose
// pick region contains at. A drag already in progress is kept.
func (s *Session) pick(at core.Point) Interaction {
	if s.drag != nil {
		return Interaction{}
	}
	for i := range s.tokens {
		t := &s.tokens[i]
		if t.Placed {
			continue
		}
		if at.Near(t.Pos, s.rules.ShapeSize) {
			s.drag = &DragSession{Token: i, Offset: at.Sub(t.Pos)}
			return Interaction{Outcome: OutcomePicked, Token: t.Name}
		}
	}
	return Interaction{}
}

func (s *Session) move(at core.Point) Interaction {
	if s.drag == nil {
		return Interaction{}
	}
	t := &s.tokens[s.drag.Token]
	t.Pos = at.Sub(s.drag.Offset)
	return Interaction{Outcome: OutcomeMoved, Token: t.Name}
}

// drop evaluates the dragged token against its target and closes the drag.
// The release coordinates are not used; the token is wherever the last
// move left it.
func (s *Session) drop() Interaction {
	if s.drag == nil {
		return Interaction{}
	}
	t := &s.tokens[s.drag.Token]
	s.drag = nil

	if !t.Pos.Near(t.Target, s.rules.MatchThreshold) {
		return Interaction{Outcome: OutcomeMissed, Token: t.Name}
	}
	t.Placed = true
	t.Pos = t.Target
	s.score++
	return Interaction{Outcome: OutcomeMatched, Token: t.Name}
}

// Finish gates all further input. An open drag is dropped without being
// evaluated, leaving the token where it is.
func (s *Session) Finish() {
	s.finished = true
	s.drag = nil
}

// Finished reports whether input is gated.
func (s *Session) Finished() bool {
	return s.finished
}

// Score returns the number of successful placements.
func (s *Session) Score() int {
	return s.score
}

// Tokens returns a copy of all tokens in catalog order.
func (s *Session) Tokens() []Token {
	return append([]Token(nil), s.tokens...)
}

// Token returns the token with the given name.
func (s *Session) Token(name string) (Token, bool) {
	for _, t := range s.tokens {
		if t.Name == name {
			return t, true
		}
	}
	return Token{}, false
}

// Drag returns the open drag, if any.
func (s *Session) Drag() (DragSession, bool) {
	if s.drag == nil {
		return DragSession{}, false
	}
	return *s.drag, true
}

// PlacedCount counts placed tokens.
func (s *Session) PlacedCount() int {
	n := 0
	for _, t := range s.tokens {
		if t.Placed {
			n++
		}
	}
	return n
}
