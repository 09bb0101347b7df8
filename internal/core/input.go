package core

// Action represents a semantic key action, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionCancel        // Esc - end the round early
	ActionQuit          // Q, Ctrl+C - exit immediately
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionCancel:
		return "Cancel"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerEvent is one step of the pointer lifecycle, in canvas coordinates.
// The concrete types are PointerDown, PointerMove and PointerUp.
type PointerEvent interface {
	Pos() Point
	pointerEvent()
}

// PointerDown is a primary button press.
type PointerDown struct{ At Point }

// PointerMove is pointer motion, with or without a button held.
type PointerMove struct{ At Point }

// PointerUp is a primary button release.
type PointerUp struct{ At Point }

func (e PointerDown) Pos() Point { return e.At }
func (e PointerMove) Pos() Point { return e.At }
func (e PointerUp) Pos() Point   { return e.At }

func (PointerDown) pointerEvent() {}
func (PointerMove) pointerEvent() {}
func (PointerUp) pointerEvent()   {}

func (e PointerDown) String() string { return "down" + e.At.String() }
func (e PointerMove) String() string { return "move" + e.At.String() }
func (e PointerUp) String() string   { return "up" + e.At.String() }
