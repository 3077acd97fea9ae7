// Package stats estimates event rates over rolling one-second windows.
package stats

// DefaultSpan is the window length in ms.
const DefaultSpan = 1000.0

// Window counts events and turns them into a per-second rate whenever more
// than Span ms have passed since Anchor.
type Window struct {
	Count  int
	Anchor float64
	Rate   float64
	Span   float64
}

// NewWindow returns a window anchored at now.
func NewWindow(now, span float64) Window {
	return Window{Anchor: now, Span: span}
}

// Add counts one event.
func (w *Window) Add() {
	w.Count++
}

// Observe rolls the window if t lies past its end. The anchor advances by the
// measured elapsed time rather than being set to t.
func (w *Window) Observe(t float64) (rolled bool) {
	span := w.Span
	if span <= 0 {
		span = DefaultSpan
	}

	elapsed := t - w.Anchor
	if elapsed <= span {
		return false
	}

	w.Rate = float64(w.Count) * 1000 / elapsed
	w.Count = 0
	w.Anchor += elapsed
	return true
}
