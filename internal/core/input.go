package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, left half of the play surface
	ActionRight          // Right arrow, D, right half of the play surface
	ActionStop           // Down arrow, S - release both directions
	ActionStart          // Enter, Space - leave the start screen
	ActionRestart        // R, Space - restart after game over
	ActionMute           // M - toggle sound
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStop:
		return "Stop"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Intent is the horizontal movement wish sampled once per frame.
// Multiple sources may write it between frames; the last writer wins.
type Intent struct {
	Left  bool
	Right bool
}

// Direction folds the intent into -1, 0 or 1. Holding both cancels out.
func (in Intent) Direction() float64 {
	d := 0.0
	if in.Left {
		d--
	}
	if in.Right {
		d++
	}
	return d
}

// Moving reports whether any direction is held.
func (in Intent) Moving() bool {
	return in.Left || in.Right
}
