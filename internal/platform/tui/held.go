package tui

import (
	"time"

	"github.com/vovakirdan/zombie-survival/internal/core"
)

// HeldKeys emulates held movement keys on a terminal, which reports presses
// and auto-repeats but never releases. A key stays held until window passes
// without another press of it. Pressing the opposite direction on the same
// axis releases it at once.
type HeldKeys struct {
	window  time.Duration
	pressed map[core.Key]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{
		window:  window,
		pressed: make(map[core.Key]time.Time, len(core.AllKeys)),
	}
}

// Press records a press of k at now.
func (h *HeldKeys) Press(k core.Key, now time.Time) {
	delete(h.pressed, opposite(k))
	h.pressed[k] = now
}

// Keys returns the set held at now and forgets expired presses.
func (h *HeldKeys) Keys(now time.Time) core.Keys {
	var held core.Keys
	for k, at := range h.pressed {
		if now.Sub(at) >= h.window {
			delete(h.pressed, k)
			continue
		}
		held = held.With(k)
	}
	return held
}

// Release forgets every press.
func (h *HeldKeys) Release() {
	clear(h.pressed)
}

func opposite(k core.Key) core.Key {
	switch k {
	case core.KeyUp:
		return core.KeyDown
	case core.KeyDown:
		return core.KeyUp
	case core.KeyLeft:
		return core.KeyRight
	case core.KeyRight:
		return core.KeyLeft
	default:
		return 0
	}
}
