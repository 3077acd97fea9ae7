// Package interp holds the two most recent snapshots and the interpolation
// factor between them.
package interp

import (
	"math"

	"github.com/automoto/pongview/shared/gamemath"
	"github.com/automoto/pongview/shared/messages"
)

// Buffer keeps the previous and current snapshot. Previous is what the view
// interpolates from, Current is what it interpolates toward.
//
// Invariant: Current.ArrivalTimestamp >= Previous.ArrivalTimestamp.
type Buffer struct {
	Previous messages.Snapshot
	Current  messages.Snapshot
}

// Initialize stamps s with now and makes it both previous and current, so
// rendering resolves to exactly s until the next push.
func (b *Buffer) Initialize(s messages.Snapshot, now float64) {
	s.ArrivalTimestamp = now
	b.Previous = s
	b.Current = s
}

// Push stamps s and shifts it in. A snapshot whose id differs from the
// current one is a discontinuity: both slots take s and Push reports true.
func (b *Buffer) Push(s messages.Snapshot, now float64) (reset bool) {
	// Arrival stamps never go backwards, even if the clock does.
	s.ArrivalTimestamp = math.Max(now, b.Current.ArrivalTimestamp)

	if s.ID != b.Current.ID {
		b.Previous = s
		b.Current = s
		return true
	}

	b.Previous = b.Current
	b.Current = s
	return false
}

// Factor returns how far the render moment t lies between Previous and
// Current, normalized by the nominal update interval and clamped to [0, 1].
// A non-positive interval snaps to the latest state.
func (b *Buffer) Factor(t, interval float64) float64 {
	if !(interval > 0) {
		return 1
	}
	return gamemath.Clamp01((t - b.Current.ArrivalTimestamp) / interval)
}

// Paddles returns both paddle offsets interpolated by f.
func (b *Buffer) Paddles(f float64) (player1, player2 float64) {
	return gamemath.Lerp(b.Previous.Player1, b.Current.Player1, f),
		gamemath.Lerp(b.Previous.Player2, b.Current.Player2, f)
}

// Ball returns the ball position interpolated by f.
func (b *Buffer) Ball(f float64) messages.Point {
	return gamemath.LerpPoint(b.Previous.Ball, b.Current.Ball, f)
}
