// Package canvas implements render.Surface on top of an ebiten image.
package canvas

import (
	"image/color"

	cfg "github.com/automoto/pongview/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// glowStrength is the combined alpha of all glow layers relative to the glow colour.
const glowStrength = 0.6

// Canvas draws onto an ebiten image. Glow is approximated with concentric
// translucent copies of each shape, outermost first.
type Canvas struct {
	dst    *ebiten.Image
	face   font.Face
	ascent int
	layers int

	shadow     color.NRGBA
	shadowBlur float32
}

// New wraps dst. face is used for every Text call.
func New(dst *ebiten.Image, face font.Face) *Canvas {
	layers := cfg.Render.GlowLayers
	if layers < 1 {
		layers = 1
	}
	return &Canvas{
		dst:    dst,
		face:   face,
		ascent: face.Metrics().Ascent.Ceil(),
		layers: layers,
	}
}

// Reset points the canvas at a new frame image, keeping font and glow state.
func (c *Canvas) Reset(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) Clear() {
	c.dst.Clear()
}

func (c *Canvas) SetShadow(clr color.Color, blur float32) {
	c.shadow = color.NRGBAModel.Convert(clr).(color.NRGBA)
	c.shadowBlur = blur
}

func (c *Canvas) FillRect(x, y, w, h float32, clr color.Color) {
	c.glow(func(grow float32, gc color.Color) {
		vector.FillRect(c.dst, x-grow, y-grow, w+2*grow, h+2*grow, gc, true)
	})
	vector.FillRect(c.dst, x, y, w, h, clr, false)
}

func (c *Canvas) FillCircle(cx, cy, r float32, clr color.Color) {
	c.glow(func(grow float32, gc color.Color) {
		vector.DrawFilledCircle(c.dst, cx, cy, r+grow, gc, true)
	})
	vector.DrawFilledCircle(c.dst, cx, cy, r, clr, true)
}

func (c *Canvas) StrokeRect(x, y, w, h, lineWidth float32, clr color.Color) {
	c.glow(func(grow float32, gc color.Color) {
		vector.StrokeRect(c.dst, x, y, w, h, lineWidth+2*grow, gc, true)
	})
	vector.StrokeRect(c.dst, x, y, w, h, lineWidth, clr, true)
}

func (c *Canvas) Text(s string, x, y float32, clr color.Color) {
	text.Draw(c.dst, s, c.face, int(x), int(y)+c.ascent, clr)
}

// glow draws the current shadow as layers around a shape. Nothing is drawn
// while the blur is zero.
func (c *Canvas) glow(draw func(grow float32, clr color.Color)) {
	if c.shadowBlur <= 0 || c.shadow.A == 0 {
		return
	}

	perLayer := float64(c.shadow.A) * glowStrength / float64(c.layers)
	for i := c.layers; i >= 1; i-- {
		grow := c.shadowBlur * float32(i) / float32(c.layers)
		layer := c.shadow
		layer.A = uint8(perLayer)
		draw(grow, layer)
	}
}
