package match

import (
	"math"
	"time"
)

// Phase is the countdown state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseFinished
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	if p == PhaseFinished {
		return "finished"
	}
	return "running"
}

// EndReason records why a round finished.
type EndReason string

const (
	EndNone      EndReason = ""
	EndTimeout   EndReason = "timeout"
	EndCancelled EndReason = "cancelled"
)

// Clock is the round countdown. Running -> Finished is one-way.
type Clock struct {
	start      time.Time
	total      time.Duration
	phase      Phase
	reason     EndReason
	finishedAt time.Time
}

// NewClock starts a countdown of total at start.
func NewClock(start time.Time, total time.Duration) *Clock {
	return &Clock{start: start, total: total}
}

// Remaining returns max(0, total - elapsed). After the round finishes it is
// frozen at the value it had when it finished.
func (c *Clock) Remaining(now time.Time) time.Duration {
	if c.phase == PhaseFinished {
		now = c.finishedAt
	}
	left := c.total - now.Sub(c.start)
	if left < 0 {
		return 0
	}
	return left
}

// Tick advances the clock to now and reports whether this tick finished
// the round.
func (c *Clock) Tick(now time.Time) bool {
	if c.phase == PhaseFinished {
		return false
	}
	if c.Remaining(now) <= 0 {
		c.finish(now, EndTimeout)
		return true
	}
	return false
}

// Cancel finishes the round early. Reports false if it had already finished.
func (c *Clock) Cancel(now time.Time) bool {
	if c.phase == PhaseFinished {
		return false
	}
	c.finish(now, EndCancelled)
	return true
}

func (c *Clock) finish(now time.Time, reason EndReason) {
	c.phase = PhaseFinished
	c.reason = reason
	c.finishedAt = now
}

// Phase returns the current phase.
func (c *Clock) Phase() Phase {
	return c.phase
}

// Reason returns why the round finished, or EndNone while running.
func (c *Clock) Reason() EndReason {
	return c.reason
}

// Elapsed returns time since start, frozen once finished.
func (c *Clock) Elapsed(now time.Time) time.Duration {
	if c.phase == PhaseFinished {
		now = c.finishedAt
	}
	return now.Sub(c.start)
}

// SecondsLeft rounds a remaining duration up to whole seconds for display,
// so a fresh 12s countdown shows 12 until a full second has passed.
func SecondsLeft(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}
