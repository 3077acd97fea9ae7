// Package rendertest provides a render.Surface that records draw calls.
package rendertest

import (
	"fmt"
	"image/color"
	"strings"
)

// Op is one recorded draw call together with the shadow blur in effect.
type Op struct {
	Kind      string // clear, rect, circle, stroke, text
	X, Y      float32
	W, H      float32
	R         float32
	LineWidth float32
	Text      string
	Color     color.Color
	Shadow    float32
}

func (o Op) String() string {
	switch o.Kind {
	case "circle":
		return fmt.Sprintf("circle(%g,%g r=%g shadow=%g)", o.X, o.Y, o.R, o.Shadow)
	case "text":
		return fmt.Sprintf("text(%q at %g,%g shadow=%g)", o.Text, o.X, o.Y, o.Shadow)
	case "clear":
		return "clear"
	}
	return fmt.Sprintf("%s(%g,%g %gx%g shadow=%g)", o.Kind, o.X, o.Y, o.W, o.H, o.Shadow)
}

// Recorder implements render.Surface.
type Recorder struct {
	Ops    []Op
	shadow float32
}

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: "clear", Shadow: r.shadow})
}

func (r *Recorder) SetShadow(_ color.Color, blur float32) {
	r.shadow = blur
}

func (r *Recorder) FillRect(x, y, w, h float32, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", X: x, Y: y, W: w, H: h, Color: c, Shadow: r.shadow})
}

func (r *Recorder) FillCircle(cx, cy, rad float32, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "circle", X: cx, Y: cy, R: rad, Color: c, Shadow: r.shadow})
}

func (r *Recorder) StrokeRect(x, y, w, h, lineWidth float32, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke", X: x, Y: y, W: w, H: h, LineWidth: lineWidth, Color: c, Shadow: r.shadow})
}

func (r *Recorder) Text(s string, x, y float32, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "text", X: x, Y: y, Text: s, Color: c, Shadow: r.shadow})
}

// Reset drops recorded ops but keeps the current shadow state.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Kind returns every recorded op of the given kind, in order.
func (r *Recorder) Kind(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) String() string {
	parts := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		parts[i] = op.String()
	}
	return strings.Join(parts, " ")
}
