package messages

import (
	"encoding/json"
	"fmt"
)

// Constants are the render constants sent once with the mount event.
type Constants struct {
	FieldWidth     float64
	FieldHeight    float64
	WallWidth      float64
	BallRadius     float64
	PaddleLength   float64
	UpdateInterval float64 // nominal ms between snapshots

	// PaddleHeight is the distance of each paddle from its field edge.
	// Zero means the payload did not carry one.
	PaddleHeight float64
}

type wireConstants struct {
	FieldWidth     *float64 `json:"field_width"`
	FieldHeight    *float64 `json:"field_height"`
	WallWidth      *float64 `json:"wall_width"`
	BallRadius     *float64 `json:"ball_radius"`
	PaddleLength   *float64 `json:"paddle_length"`
	UpdateInterval *float64 `json:"update_interval"`
	PaddleHeight   *float64 `json:"paddle_height"`
}

// DecodeConstants parses and validates a constants payload.
func DecodeConstants(data []byte) (Constants, error) {
	var w wireConstants
	if err := json.Unmarshal(data, &w); err != nil {
		return Constants{}, fmt.Errorf("decode constants: %w", err)
	}

	required := []struct {
		name string
		v    *float64
	}{
		{"field_width", w.FieldWidth},
		{"field_height", w.FieldHeight},
		{"wall_width", w.WallWidth},
		{"ball_radius", w.BallRadius},
		{"paddle_length", w.PaddleLength},
		{"update_interval", w.UpdateInterval},
	}
	for _, r := range required {
		if r.v == nil {
			return Constants{}, fmt.Errorf("constants %s: %w", r.name, ErrMissingField)
		}
	}

	if *w.FieldWidth <= 0 || *w.FieldHeight <= 0 {
		return Constants{}, fmt.Errorf("constants field %vx%v: %w", *w.FieldWidth, *w.FieldHeight, ErrInvalidField)
	}

	c := Constants{
		FieldWidth:     *w.FieldWidth,
		FieldHeight:    *w.FieldHeight,
		WallWidth:      *w.WallWidth,
		BallRadius:     *w.BallRadius,
		PaddleLength:   *w.PaddleLength,
		UpdateInterval: *w.UpdateInterval,
	}
	if w.PaddleHeight != nil {
		c.PaddleHeight = *w.PaddleHeight
	}
	return c, nil
}
