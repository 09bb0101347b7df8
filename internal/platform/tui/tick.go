// Package tui provides the Bubble Tea integration for shapematch.
// It owns the terminal loop, maps keys and mouse cells to game input and
// drives the round clock.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game clock tick.
type TickMsg time.Time

// holdDoneMsg ends the game over hold.
type holdDoneMsg struct{}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// holdCmd fires once after the game over frame has been shown for d.
func holdCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return holdDoneMsg{}
	})
}
