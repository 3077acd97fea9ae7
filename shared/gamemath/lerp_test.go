package gamemath

import (
	"math"
	"testing"

	"github.com/automoto/pongview/shared/messages"
)

func TestLerpEndpointsAreExact(t *testing.T) {
	type spec struct {
		a, b float64
	}
	specs := []spec{
		{0, 1},
		{100, 120},
		{0.1, 0.7},
		{-3.3, 1e9},
		{1e-12, 3.141592653589793},
		{320, 330},
	}

	for index, s := range specs {
		if got := Lerp(s.a, s.b, 0); got != s.a {
			t.Fatalf("[spec %d] expected Lerp(%v, %v, 0) == %v; got %v", index, s.a, s.b, s.a, got)
		}
		if got := Lerp(s.a, s.b, 1); got != s.b {
			t.Fatalf("[spec %d] expected Lerp(%v, %v, 1) == %v; got %v", index, s.a, s.b, s.b, got)
		}
	}
}

func TestLerpMidpoint(t *testing.T) {
	if got := Lerp(100, 120, 0.5); got != 110 {
		t.Fatalf("expected 110; got %v", got)
	}
}

func TestLerpPoint(t *testing.T) {
	a := messages.Point{X: 320, Y: 240}
	b := messages.Point{X: 330, Y: 200}

	got := LerpPoint(a, b, 0.5)
	if got.X != 325 || got.Y != 220 {
		t.Fatalf("expected {325 220}; got %+v", got)
	}
	if got := LerpPoint(a, b, 0); got != a {
		t.Fatalf("expected %+v at f=0; got %+v", a, got)
	}
	if got := LerpPoint(a, b, 1); got != b {
		t.Fatalf("expected %+v at f=1; got %+v", b, got)
	}
}

func TestClamp01(t *testing.T) {
	type spec struct {
		in, exp float64
	}
	specs := []spec{
		{-5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{7, 1},
		{math.Inf(1), 1},
		{math.Inf(-1), 0},
		{math.NaN(), 1},
	}

	for index, s := range specs {
		if got := Clamp01(s.in); got != s.exp {
			t.Fatalf("[spec %d] expected Clamp01(%v) == %v; got %v", index, s.in, s.exp, got)
		}
	}
}
