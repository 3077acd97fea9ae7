package network

import (
	"github.com/automoto/pongview/host"
	"github.com/automoto/pongview/shared/messages"
)

type delayedEvent struct {
	due float64
	ev  messages.Event
}

// Delayed holds every event of an inner feed for a fixed latency before
// releasing it. Order is preserved.
type Delayed struct {
	feed    Feed
	latency float64
	clock   host.Clock
	queue   []delayedEvent
}

var _ Feed = (*Delayed)(nil)

// NewDelayed wraps feed with latency ms of extra delay. A non-positive
// latency passes events straight through.
func NewDelayed(feed Feed, latency float64, clock host.Clock) *Delayed {
	return &Delayed{feed: feed, latency: latency, clock: clock}
}

func (d *Delayed) Drain() []messages.Event {
	if d.latency <= 0 {
		return d.feed.Drain()
	}

	now := d.clock()
	for _, ev := range d.feed.Drain() {
		d.queue = append(d.queue, delayedEvent{due: now + d.latency, ev: ev})
	}

	n := 0
	for n < len(d.queue) && d.queue[n].due <= now {
		n++
	}
	if n == 0 {
		return nil
	}

	out := make([]messages.Event, n)
	for i := range out {
		out[i] = d.queue[i].ev
	}
	d.queue = append(d.queue[:0], d.queue[n:]...)
	return out
}

// Pending reports how many events are held back.
func (d *Delayed) Pending() int {
	return len(d.queue)
}
