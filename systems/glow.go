package systems

import (
	"github.com/automoto/pongview/components"
	cfg "github.com/automoto/pongview/config"
	"github.com/automoto/pongview/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// FlareGlow restarts the hit flare: the glow jumps to HitGlowBlur and eases
// back to the steady blur.
func FlareGlow(w donburi.World) {
	entry, ok := tags.Board.First(w)
	if !ok {
		return
	}

	glow := components.Glow.Get(entry)
	glow.Blur = cfg.Render.HitGlowBlur
	glow.Tween = gween.New(cfg.Render.HitGlowBlur, cfg.Render.GlowBlur, cfg.Render.HitGlowSeconds, ease.OutQuad)
}

// AdvanceGlow steps the flare by the time since the previous frame.
func AdvanceGlow(w donburi.World, t float64) {
	entry, ok := tags.Board.First(w)
	if !ok {
		return
	}

	st := components.Stats.Get(entry)
	dt := float32((t - st.LastFrame) / 1000)
	st.LastFrame = t
	if dt < 0 {
		dt = 0
	}

	glow := components.Glow.Get(entry)
	if glow.Tween == nil {
		return
	}
	blur, finished := glow.Tween.Update(dt)
	glow.Blur = blur
	if finished {
		glow.Blur = cfg.Render.GlowBlur
		glow.Tween = nil
	}
}
