package tui

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last
// press or auto-repeat.
const DefaultHoldWindow = 150 * time.Millisecond

// heldKeys turns terminal key events, which only report presses, into a
// per-frame snapshot of held actions.
type heldKeys struct {
	until map[core.Action]time.Time
	hold  time.Duration
}

func newHeldKeys(hold time.Duration) *heldKeys {
	return &heldKeys{
		until: make(map[core.Action]time.Time),
		hold:  hold,
	}
}

// Press marks an action held until now+hold. Opposite directions cancel.
func (h *heldKeys) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
	h.until[a] = now.Add(h.hold)
}

// Frame returns the actions still held at now and forgets expired ones.
func (h *heldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, t := range h.until {
		if now.Before(t) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	return frame
}
