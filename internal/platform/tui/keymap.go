package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shapematch/internal/core"
	"github.com/vovakirdan/shapematch/internal/shapes"
)

// GameKeyMap defines the key bindings available during a round.
type GameKeyMap struct {
	Cancel key.Binding
	Quit   key.Binding
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "end round"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// MapKey translates a key message to an action (may be ActionNone).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Cancel):
		return core.ActionCancel
	}
	return core.ActionNone
}

// MapMouse translates a mouse message in terminal cells to a pointer event
// in canvas coordinates. Presses of buttons other than the left one are
// not pointer events.
func MapMouse(msg tea.MouseMsg, vp shapes.Viewport) (core.PointerEvent, bool) {
	if vp.Empty() {
		return nil, false
	}
	at := vp.ToCanvas(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil, false
		}
		return core.PointerDown{At: at}, true
	case tea.MouseActionMotion:
		return core.PointerMove{At: at}, true
	case tea.MouseActionRelease:
		return core.PointerUp{At: at}, true
	}
	return nil, false
}
