package network

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	cfg "github.com/automoto/pongview/config"
	"github.com/automoto/pongview/host"
	"github.com/automoto/pongview/shared/messages"
)

// Replay plays back a recorded channel. Each line of a recording is one
// envelope; its "at" field is the offset in ms from the first Drain.
type Replay struct {
	events []messages.Event
	next   int

	clock   host.Clock
	start   float64
	started bool
}

var _ Feed = (*Replay)(nil)

// OpenReplay loads the recording at path.
func OpenReplay(path string, clock host.Clock) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := LoadReplay(f, clock)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// LoadReplay reads a JSON-lines recording. Blank lines are skipped; any other
// line that is not a valid envelope fails the load.
func LoadReplay(r io.Reader, clock host.Clock) (*Replay, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), int(cfg.Network.ReadLimit))

	var events []messages.Event
	line := 0
	for sc.Scan() {
		line++
		data := bytes.TrimSpace(sc.Bytes())
		if len(data) == 0 {
			continue
		}
		ev, err := messages.DecodeEvent(data)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].At < events[j].At
	})

	return &Replay{events: events, clock: clock}, nil
}

// Drain returns the events whose offset has passed. The first call starts
// the playback clock.
func (r *Replay) Drain() []messages.Event {
	now := r.clock()
	if !r.started {
		r.start = now
		r.started = true
	}
	elapsed := now - r.start

	from := r.next
	for r.next < len(r.events) && r.events[r.next].At <= elapsed {
		r.next++
	}
	if from == r.next {
		return nil
	}
	return r.events[from:r.next]
}

// Done reports whether every event has been released.
func (r *Replay) Done() bool {
	return r.next >= len(r.events)
}

// Len returns the number of recorded events.
func (r *Replay) Len() int {
	return len(r.events)
}
