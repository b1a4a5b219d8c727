package survival

import (
	"time"

	"github.com/vovakirdan/zombie-survival/internal/core"
)

// Advance moves pos toward target at speed units per second for elapsed time.
// The step is not clamped to the remaining distance, so a long elapsed time
// can carry pos past the target. A pos already on the target stays put.
func Advance(pos, target core.Vec2, speed float64, elapsed time.Duration) core.Vec2 {
	delta := target.Sub(pos)
	if delta.Len() == 0 {
		return pos
	}
	return pos.Add(delta.Normalize().Scale(speed * elapsed.Seconds()))
}

// MovePlayer displaces pos along each axis of every held key.
// Keys combine additively: a diagonal moves speed on both axes, so it
// covers √2 times the ground of a straight move.
func MovePlayer(pos core.Vec2, held core.Keys, speed float64, elapsed time.Duration) core.Vec2 {
	step := speed * elapsed.Seconds()
	if held.Has(core.KeyUp) {
		pos.Y -= step
	}
	if held.Has(core.KeyDown) {
		pos.Y += step
	}
	if held.Has(core.KeyLeft) {
		pos.X -= step
	}
	if held.Has(core.KeyRight) {
		pos.X += step
	}
	return pos
}
