package messages

import (
	"encoding/json"
	"fmt"
)

// EventKind is the lifecycle event carried by an envelope.
type EventKind string

const (
	EventMount   EventKind = "mount"
	EventUpdate  EventKind = "update"
	EventDestroy EventKind = "destroy"
)

// Dataset keys read by the board hook.
const (
	KeyClient    = "client"
	KeyConstants = "constants"
)

// Dataset holds the serialized attributes of a hooked element.
type Dataset map[string]json.RawMessage

// Data returns the raw attribute stored under key.
func (d Dataset) Data(key string) ([]byte, bool) {
	v, ok := d[key]
	if !ok || len(v) == 0 {
		return nil, false
	}
	return v, true
}

// Event is one lifecycle envelope delivered by the channel.
type Event struct {
	Kind    EventKind `json:"event"`
	Role    string    `json:"role"`
	Dataset Dataset   `json:"dataset,omitempty"`

	// At is the offset in ms from the start of a recording. Live channels
	// leave it zero.
	At float64 `json:"at,omitempty"`
}

// DecodeEvent parses one envelope. Dataset contents are not validated here;
// hooks decode the attributes they need.
func DecodeEvent(data []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}

	switch ev.Kind {
	case EventMount, EventUpdate, EventDestroy:
	case "":
		return Event{}, fmt.Errorf("event kind: %w", ErrMissingField)
	default:
		return Event{}, fmt.Errorf("event kind %q: %w", ev.Kind, ErrInvalidField)
	}
	if ev.Role == "" {
		return Event{}, fmt.Errorf("event role: %w", ErrMissingField)
	}
	return ev, nil
}
