package view

import (
	"github.com/automoto/pongview/host"
	"github.com/automoto/pongview/render"
)

// Loop is the handle of a running frame loop. The loop has no stopping
// condition of its own; whoever owns it must Cancel it on teardown.
type Loop struct {
	live   bool
	frames int
}

// Cancel stops the loop. The pending frame request, if any, still fires but
// draws nothing and does not request another frame.
func (l *Loop) Cancel() {
	l.live = false
}

func (l *Loop) Running() bool {
	return l.live
}

// Frames returns how many frames the loop has drawn.
func (l *Loop) Frames() int {
	return l.frames
}

// Start begins the self-rescheduling frame loop over the board's current
// world. Each frame draws and then requests exactly one more frame.
func (b *Board) Start() *Loop {
	l := &Loop{live: true}
	world := b.world

	var frame host.FrameFunc
	frame = func(t float64, s render.Surface) {
		if !l.live {
			return
		}
		Frame(world, t, s)
		l.frames++
		if l.live {
			b.sched.RequestFrame(frame)
		}
	}
	b.sched.RequestFrame(frame)
	return l
}
