// Package render defines the drawing surface the board is painted on. The
// ebiten implementation lives in render/canvas; render/rendertest records
// calls for tests.
package render

import "image/color"

// Surface is a 2D drawing target in field coordinates.
//
// SetShadow sets the glow used by every following fill or stroke until it is
// changed again. A zero blur turns the glow off.
type Surface interface {
	Clear()
	SetShadow(c color.Color, blur float32)
	FillRect(x, y, w, h float32, c color.Color)
	FillCircle(cx, cy, r float32, c color.Color)
	StrokeRect(x, y, w, h, lineWidth float32, c color.Color)
	// Text draws s with its top-left corner at (x, y).
	Text(s string, x, y float32, c color.Color)
}
