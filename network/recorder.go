package network

import (
	"encoding/json"
	"io"

	"github.com/automoto/pongview/host"
	"github.com/automoto/pongview/shared/messages"
)

// Recorder passes events through from an inner feed and writes each one as
// a replay line, stamped with its offset from the first Drain.
type Recorder struct {
	feed  Feed
	enc   *json.Encoder
	clock host.Clock

	start   float64
	started bool
	err     error
}

var _ Feed = (*Recorder)(nil)

func NewRecorder(feed Feed, w io.Writer, clock host.Clock) *Recorder {
	return &Recorder{feed: feed, enc: json.NewEncoder(w), clock: clock}
}

// Drain returns the inner feed's events. Recording stops at the first write
// error; events keep flowing.
func (r *Recorder) Drain() []messages.Event {
	now := r.clock()
	if !r.started {
		r.start = now
		r.started = true
	}

	events := r.feed.Drain()
	if r.err != nil {
		return events
	}
	for _, ev := range events {
		ev.At = now - r.start
		if err := r.enc.Encode(ev); err != nil {
			r.err = err
			break
		}
	}
	return events
}

// Err returns the write error that stopped recording, if any.
func (r *Recorder) Err() error {
	return r.err
}
