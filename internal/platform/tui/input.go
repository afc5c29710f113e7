package tui

import (
	"time"

	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// DefaultHold is how long one key press keeps its direction held.
const DefaultHold = 220 * time.Millisecond

// HeldInput is the shared movement intent record.
//
// Terminals report key presses but not releases, so a press holds its
// direction for the hold window and auto-repeat keeps extending it. A mouse
// press on either half of the playfield stands in for a touch and holds
// until the button is released. Writers overwrite each other; the frame
// reads whatever was written last.
type HeldInput struct {
	hold time.Duration
	now  func() time.Time

	leftUntil  time.Time
	rightUntil time.Time
	pointer    int // -1 left, 1 right, 0 released
}

// NewHeldInput creates an input record with the given hold window.
func NewHeldInput(hold time.Duration) *HeldInput {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &HeldInput{hold: hold, now: time.Now}
}

// Press applies a movement action at time at. Pressing one direction
// releases the other.
func (h *HeldInput) Press(action core.Action, at time.Time) {
	switch action {
	case core.ActionLeft:
		h.leftUntil = at.Add(h.hold)
		h.rightUntil = time.Time{}
		h.pointer = 0
	case core.ActionRight:
		h.rightUntil = at.Add(h.hold)
		h.leftUntil = time.Time{}
		h.pointer = 0
	case core.ActionStop:
		h.Release()
	}
}

// PointerDown holds the left direction when x is left of center and the
// right direction otherwise.
func (h *HeldInput) PointerDown(x, center int) {
	h.leftUntil = time.Time{}
	h.rightUntil = time.Time{}
	if x < center {
		h.pointer = -1
	} else {
		h.pointer = 1
	}
}

// PointerUp releases a pointer hold.
func (h *HeldInput) PointerUp() {
	h.pointer = 0
}

// Release drops every held direction.
func (h *HeldInput) Release() {
	h.leftUntil = time.Time{}
	h.rightUntil = time.Time{}
	h.pointer = 0
}

// IntentAt returns the intent as of time at.
func (h *HeldInput) IntentAt(at time.Time) core.Intent {
	return core.Intent{
		Left:  h.pointer < 0 || at.Before(h.leftUntil),
		Right: h.pointer > 0 || at.Before(h.rightUntil),
	}
}

// Intent implements core.InputSource.
func (h *HeldInput) Intent() core.Intent {
	return h.IntentAt(h.now())
}
