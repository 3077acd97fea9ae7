package gamemath

import (
	"math"

	"github.com/automoto/pongview/shared/messages"
)

// Lerp blends a toward b by f. The (1-f)*a + f*b form returns a exactly at
// f=0 and b exactly at f=1.
func Lerp(a, b, f float64) float64 {
	return (1-f)*a + f*b
}

// LerpPoint interpolates each coordinate independently.
func LerpPoint(a, b messages.Point, f float64) messages.Point {
	return messages.Point{
		X: Lerp(a.X, b.X, f),
		Y: Lerp(a.Y, b.Y, f),
	}
}

// Clamp01 clamps v to [0, 1]. NaN clamps to 1.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 1
	}
	return math.Max(0, math.Min(v, 1))
}
