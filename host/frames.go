package host

import (
	"time"

	"github.com/automoto/pongview/render"
)

// FrameFunc draws one frame at render time t (ms).
type FrameFunc func(t float64, s render.Surface)

// Scheduler grants frame requests. Each request is served once, on the next
// repaint; a callback that wants another frame must request again.
type Scheduler interface {
	RequestFrame(fn FrameFunc)
}

// FrameQueue is the Scheduler driven by the game's Draw.
type FrameQueue struct {
	pending []FrameFunc
	spare   []FrameFunc
}

func (q *FrameQueue) RequestFrame(fn FrameFunc) {
	q.pending = append(q.pending, fn)
}

// Pending reports how many requests wait for the next repaint.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Fire runs every request made before this repaint. Requests made by the
// callbacks themselves wait for the next Fire.
func (q *FrameQueue) Fire(t float64, s render.Surface) int {
	run := q.pending
	q.pending = q.spare[:0]

	for i, fn := range run {
		fn(t, s)
		run[i] = nil
	}
	q.spare = run[:0]
	return len(run)
}

// Clock returns the current time in ms.
type Clock func() float64

// NewMonotonicClock returns a clock counting ms since its creation.
func NewMonotonicClock() Clock {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start)) / float64(time.Millisecond)
	}
}
