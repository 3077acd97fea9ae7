package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GlowData stores the glow blur of ball and paddles. Tween is non-nil while a
// hit flare is easing back to the steady blur.
type GlowData struct {
	Blur  float32
	Tween *gween.Tween
}

var Glow = donburi.NewComponentType[GlowData]()
