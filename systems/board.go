package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pongview/archetypes"
	"github.com/automoto/pongview/components"
	cfg "github.com/automoto/pongview/config"
	"github.com/automoto/pongview/interp"
	"github.com/automoto/pongview/render"
	"github.com/automoto/pongview/shared/messages"
	"github.com/automoto/pongview/stats"
	"github.com/automoto/pongview/tags"
	"github.com/yohamta/donburi"
)

// DrawBoard paints one frame of the board at render time t (ms).
//
// Walls and the info overlay are drawn with the glow off, ball and paddles
// with it on. The order matters: the glow is surface state and would
// otherwise bleed onto the static geometry.
func DrawBoard(w donburi.World, s render.Surface, t float64) {
	entry, ok := tags.Board.First(w)
	if !ok {
		return
	}
	buf := components.Snapshots.Get(entry)
	field := components.Field.Get(entry)
	st := components.Stats.Get(entry)
	glow := components.Glow.Get(entry)

	factor := buf.Factor(t, field.UpdateInterval)

	s.Clear()

	s.SetShadow(color.Transparent, 0)
	drawWalls(s, field)
	drawInfo(s, field, st, t)

	s.SetShadow(cfg.Render.GlowColor, glow.Blur)
	drawBall(s, field, buf, factor)
	drawPaddles(s, field, buf, factor)
}

func drawWalls(s render.Surface, field *messages.Constants) {
	size := float32(field.WallWidth)
	height := float32(field.FieldHeight)
	s.FillRect(0, 0, size, height, cfg.Render.WallColor)
	s.FillRect(float32(field.FieldWidth)-size, 0, size, height, cfg.Render.WallColor)
}

// drawInfo counts the frame, rolls both rate windows and prints them just
// past the left wall.
func drawInfo(s render.Surface, field *messages.Constants, st *components.StatsData, t float64) {
	st.Frames.Add()
	st.Frames.Observe(t)
	st.Updates.Observe(t)

	s.Text(InfoText(st), float32(field.WallWidth+1), float32(cfg.Render.InfoOffsetY), cfg.Render.InfoColor)
}

// InfoText formats the overlay line.
func InfoText(st *components.StatsData) string {
	return fmt.Sprintf("ups: %.1f fps: %.1f", st.Updates.Rate, st.Frames.Rate)
}

func drawBall(s render.Surface, field *messages.Constants, buf *interp.Buffer, factor float64) {
	ball := buf.Ball(factor)
	s.FillCircle(float32(ball.X), float32(ball.Y), float32(field.BallRadius), cfg.Render.BallColor)
}

// drawPaddles draws both paddles as stroked bars centred on their offsets.
// Player one sits near the bottom edge, player two near the top.
func drawPaddles(s render.Surface, field *messages.Constants, buf *interp.Buffer, factor float64) {
	player1, player2 := buf.Paddles(factor)
	thickness := cfg.Render.PaddleThickness
	inset := PaddleInset(field)
	barLength := field.PaddleLength - thickness

	s.StrokeRect(
		float32(player1-barLength/2),
		float32(field.FieldHeight-inset-thickness/2),
		float32(barLength),
		float32(thickness),
		float32(thickness),
		cfg.Render.PaddleColor,
	)
	s.StrokeRect(
		float32(player2-barLength/2),
		float32(inset-thickness/2),
		float32(barLength),
		float32(thickness),
		float32(thickness),
		cfg.Render.PaddleColor,
	)
}

// PaddleInset returns how far each paddle sits from its edge.
func PaddleInset(field *messages.Constants) float64 {
	if field.PaddleHeight > 0 {
		return field.PaddleHeight
	}
	return cfg.Render.PaddleInset
}

// SpawnBoard creates the board entity with s as both previous and current
// snapshot and rate windows anchored at now.
func SpawnBoard(w donburi.World, s messages.Snapshot, field messages.Constants, now float64) *donburi.Entry {
	entry := archetypes.Board.Spawn(w)

	components.Snapshots.Get(entry).Initialize(s, now)
	components.Field.SetValue(entry, field)
	components.Stats.SetValue(entry, components.StatsData{
		Frames:    stats.NewWindow(now, cfg.Stats.WindowMillis),
		Updates:   stats.NewWindow(now, cfg.Stats.WindowMillis),
		LastFrame: now,
	})
	components.Glow.SetValue(entry, components.GlowData{Blur: cfg.Render.GlowBlur})
	return entry
}

// PushSnapshot shifts s into the board and counts one update. It reports
// whether the push reset interpolation and whether a board exists at all.
func PushSnapshot(w donburi.World, s messages.Snapshot, now float64) (reset, ok bool) {
	entry, ok := tags.Board.First(w)
	if !ok {
		return false, false
	}

	reset = components.Snapshots.Get(entry).Push(s, now)
	components.Stats.Get(entry).Updates.Add()
	return reset, true
}
