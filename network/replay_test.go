package network

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/automoto/pongview/shared/messages"
)

type stepClock struct {
	now float64
}

func (c *stepClock) Now() float64 {
	return c.now
}

type sliceFeed struct {
	batches [][]messages.Event
}

func (f *sliceFeed) Drain() []messages.Event {
	if len(f.batches) == 0 {
		return nil
	}
	out := f.batches[0]
	f.batches = f.batches[1:]
	return out
}

const recording = `
{"event":"mount","role":"board","dataset":{"client":{}},"at":0}
{"event":"update","role":"board","at":100}

{"event":"update","role":"board","at":50}
{"event":"destroy","role":"board","at":200}
`

func TestReplayReleasesByOffset(t *testing.T) {
	clock := &stepClock{now: 5000}
	r, err := LoadReplay(strings.NewReader(recording), clock.Now)
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 4 {
		t.Fatalf("expected 4 events; got %d", r.Len())
	}

	type spec struct {
		now     float64
		expAt   []float64
		expDone bool
	}
	specs := []spec{
		{5000, []float64{0}, false},
		{5049, nil, false},
		{5050, []float64{50}, false},
		{5150, []float64{100}, false},
		{5300, []float64{200}, true},
		{6000, nil, true},
	}

	for index, s := range specs {
		clock.now = s.now
		got := r.Drain()
		if len(got) != len(s.expAt) {
			t.Fatalf("[spec %d] expected %d events; got %+v", index, len(s.expAt), got)
		}
		for i := range got {
			if got[i].At != s.expAt[i] {
				t.Fatalf("[spec %d] expected offset %v; got %v", index, s.expAt[i], got[i].At)
			}
		}
		if r.Done() != s.expDone {
			t.Fatalf("[spec %d] expected done=%t", index, s.expDone)
		}
	}
}

func TestLoadReplayRejectsBadLines(t *testing.T) {
	_, err := LoadReplay(strings.NewReader("{\"event\":\"mount\",\"role\":\"board\"}\n{\"event\":\"mount\"}\n"), (&stepClock{}).Now)
	if !errors.Is(err, messages.ErrMissingField) {
		t.Fatalf("expected missing role error; got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected the failing line in the error; got %v", err)
	}

	if _, err := OpenReplay("does/not/exist.jsonl", (&stepClock{}).Now); err == nil {
		t.Fatal("expected missing file error")
	}
}

func TestDelayedHoldsEventsForLatency(t *testing.T) {
	clock := &stepClock{}
	inner := &sliceFeed{batches: [][]messages.Event{
		{{Kind: messages.EventMount, Role: "board"}},
		{{Kind: messages.EventUpdate, Role: "board"}, {Kind: messages.EventUpdate, Role: "board", At: 1}},
	}}
	d := NewDelayed(inner, 100, clock.Now)

	if got := d.Drain(); len(got) != 0 {
		t.Fatalf("expected nothing before the latency; got %+v", got)
	}
	clock.now = 50
	if got := d.Drain(); len(got) != 0 || d.Pending() != 3 {
		t.Fatalf("expected 3 held events; got %+v pending %d", got, d.Pending())
	}
	clock.now = 100
	got := d.Drain()
	if len(got) != 1 || got[0].Kind != messages.EventMount {
		t.Fatalf("expected the mount; got %+v", got)
	}
	clock.now = 150
	got = d.Drain()
	if len(got) != 2 || got[0].At != 0 || got[1].At != 1 {
		t.Fatalf("expected both updates in order; got %+v", got)
	}
	if d.Pending() != 0 {
		t.Fatalf("expected an empty queue; got %d", d.Pending())
	}
}

func TestDelayedWithoutLatencyPassesThrough(t *testing.T) {
	inner := &sliceFeed{batches: [][]messages.Event{{{Kind: messages.EventMount, Role: "board"}}}}
	d := NewDelayed(inner, 0, (&stepClock{}).Now)
	if got := d.Drain(); len(got) != 1 {
		t.Fatalf("expected pass-through; got %+v", got)
	}
}

func TestRecorderWritesReplayableLines(t *testing.T) {
	clock := &stepClock{now: 1000}
	inner := &sliceFeed{batches: [][]messages.Event{
		{{Kind: messages.EventMount, Role: "board"}},
		nil,
		{{Kind: messages.EventUpdate, Role: "board"}},
	}}
	var out bytes.Buffer
	rec := NewRecorder(inner, &out, clock.Now)

	rec.Drain()
	clock.now = 1040
	rec.Drain()
	clock.now = 1080
	if got := rec.Drain(); len(got) != 1 || got[0].At != 0 {
		t.Fatalf("expected the live event unchanged; got %+v", got)
	}
	if rec.Err() != nil {
		t.Fatal(rec.Err())
	}

	replay, err := LoadReplay(&out, clock.Now)
	if err != nil {
		t.Fatal(err)
	}
	if replay.Len() != 2 || replay.events[1].At != 80 {
		t.Fatalf("expected update recorded at 80; got %+v", replay.events)
	}
}
