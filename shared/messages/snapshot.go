// Package messages defines the JSON wire contract between the authority and
// the board view: snapshots, render constants and lifecycle event envelopes.
// It must stay free of ebiten so the wire types can be used headless.
package messages

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissingField marks a payload that parsed as JSON but lacks a required field.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidField marks a field whose value cannot be used.
	ErrInvalidField = errors.New("invalid field")
)

// Point is a position on the field.
type Point struct {
	X, Y float64
}

// SnapshotID identifies a round. Numeric and string ids are both accepted and
// compared by their literal text.
type SnapshotID string

// Snapshot is one state push from the authority.
type Snapshot struct {
	Player1 float64
	Player2 float64
	Ball    Point
	ID      SnapshotID
	Sound   bool

	// ArrivalTimestamp is assigned by the client (ms on the monotonic clock)
	// and is never part of the wire payload.
	ArrivalTimestamp float64
}

type wirePoint struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type wireSnapshot struct {
	Player1 *float64        `json:"player1"`
	Player2 *float64        `json:"player2"`
	Ball    *wirePoint      `json:"ball"`
	ID      json.RawMessage `json:"id"`
	Sound   *bool           `json:"sound"`
}

// DecodeSnapshot parses and validates a snapshot payload. A missing sound flag
// reads as false; every other field is required.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var w wireSnapshot
	if err := json.Unmarshal(data, &w); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}

	switch {
	case w.Player1 == nil:
		return Snapshot{}, fmt.Errorf("snapshot player1: %w", ErrMissingField)
	case w.Player2 == nil:
		return Snapshot{}, fmt.Errorf("snapshot player2: %w", ErrMissingField)
	case w.Ball == nil || w.Ball.X == nil || w.Ball.Y == nil:
		return Snapshot{}, fmt.Errorf("snapshot ball: %w", ErrMissingField)
	}

	id, err := decodeID(w.ID)
	if err != nil {
		return Snapshot{}, err
	}

	s := Snapshot{
		Player1: *w.Player1,
		Player2: *w.Player2,
		Ball:    Point{X: *w.Ball.X, Y: *w.Ball.Y},
		ID:      id,
	}
	if w.Sound != nil {
		s.Sound = *w.Sound
	}
	return s, nil
}

func decodeID(raw json.RawMessage) (SnapshotID, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", fmt.Errorf("snapshot id: %w", ErrMissingField)
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("snapshot id: %w", err)
		}
		return SnapshotID(s), nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("snapshot id %s: %w", raw, ErrInvalidField)
	}
	return SnapshotID(n.String()), nil
}
