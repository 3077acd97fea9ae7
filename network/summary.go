package network

import "github.com/automoto/pongview/shared/messages"

// EventSummary aggregates the events of one role and kind in a recording.
type EventSummary struct {
	Role  string
	Kind  messages.EventKind
	Count int
	First float64 // offset of the first event, ms
	Last  float64 // offset of the last event, ms
}

// MeanGap returns the average ms between consecutive events, or 0 when there
// are fewer than two.
func (s EventSummary) MeanGap() float64 {
	if s.Count < 2 {
		return 0
	}
	return (s.Last - s.First) / float64(s.Count-1)
}

// Summarize groups events by role and kind, in order of first appearance.
func Summarize(events []messages.Event) []EventSummary {
	type key struct {
		role string
		kind messages.EventKind
	}

	index := make(map[key]int)
	var out []EventSummary
	for _, ev := range events {
		k := key{ev.Role, ev.Kind}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, EventSummary{Role: ev.Role, Kind: ev.Kind, First: ev.At})
		}
		out[i].Count++
		out[i].Last = ev.At
	}
	return out
}

// Events returns every recorded event in playback order.
func (r *Replay) Events() []messages.Event {
	return r.events
}
