package systems

import (
	"testing"

	"github.com/automoto/pongview/components"
	cfg "github.com/automoto/pongview/config"
	"github.com/automoto/pongview/render/rendertest"
	"github.com/automoto/pongview/shared/messages"
	"github.com/yohamta/donburi"
)

func testField() messages.Constants {
	return messages.Constants{
		FieldWidth:     800,
		FieldHeight:    600,
		WallWidth:      12,
		BallRadius:     5,
		PaddleLength:   100,
		UpdateInterval: 40,
	}
}

func testSnapshot(p1, p2, x, y float64, id string) messages.Snapshot {
	return messages.Snapshot{Player1: p1, Player2: p2, Ball: messages.Point{X: x, Y: y}, ID: messages.SnapshotID(id)}
}

func TestDrawBoardWithoutBoardIsNoop(t *testing.T) {
	rec := &rendertest.Recorder{}
	DrawBoard(donburi.NewWorld(), rec, 10)
	AdvanceGlow(donburi.NewWorld(), 10)
	if len(rec.Ops) != 0 {
		t.Fatalf("expected no draw calls; got %s", rec)
	}

	if _, ok := PushSnapshot(donburi.NewWorld(), testSnapshot(0, 0, 0, 0, "1"), 0); ok {
		t.Fatal("expected push without a board to report !ok")
	}
}

func TestDrawBoardGeometry(t *testing.T) {
	type spec struct {
		paddleHeight float64
		expInset     float64
	}

	specs := []spec{
		{0, cfg.Render.PaddleInset},
		{35, 35},
	}

	for index, s := range specs {
		field := testField()
		field.PaddleHeight = s.paddleHeight

		w := donburi.NewWorld()
		SpawnBoard(w, testSnapshot(400, 300, 400, 300, "1"), field, 0)
		rec := &rendertest.Recorder{}
		DrawBoard(w, rec, 0)

		walls := rec.Kind("rect")
		if len(walls) != 2 || walls[1].X != 788 || walls[1].H != 600 {
			t.Fatalf("[spec %d] unexpected walls %s", index, rec)
		}

		th := cfg.Render.PaddleThickness
		strokes := rec.Kind("stroke")
		if got, exp := strokes[0].Y, float32(600-s.expInset-th/2); got != exp {
			t.Fatalf("[spec %d] expected player1 y %v; got %v", index, exp, got)
		}
		if got, exp := strokes[1].Y, float32(s.expInset-th/2); got != exp {
			t.Fatalf("[spec %d] expected player2 y %v; got %v", index, exp, got)
		}
		if strokes[0].W != float32(100-th) || strokes[0].LineWidth != float32(th) {
			t.Fatalf("[spec %d] unexpected paddle bar %s", index, strokes[0])
		}
		if strokes[0].X != float32(400-(100-th)/2) {
			t.Fatalf("[spec %d] expected player1 centred on 400; got %s", index, strokes[0])
		}
	}
}

func TestPushSnapshotCountsUpdates(t *testing.T) {
	w := donburi.NewWorld()
	entry := SpawnBoard(w, testSnapshot(0, 0, 0, 0, "1"), testField(), 100)

	reset, ok := PushSnapshot(w, testSnapshot(10, 0, 0, 0, "1"), 120)
	if !ok || reset {
		t.Fatalf("expected a plain push; got reset=%t ok=%t", reset, ok)
	}
	reset, _ = PushSnapshot(w, testSnapshot(20, 0, 0, 0, "2"), 140)
	if !reset {
		t.Fatal("expected id change to reset interpolation")
	}

	st := components.Stats.Get(entry)
	if st.Updates.Count != 2 {
		t.Fatalf("expected 2 counted updates; got %d", st.Updates.Count)
	}
	if st.Updates.Anchor != 100 || st.Frames.Anchor != 100 {
		t.Fatalf("expected windows anchored at mount; got %+v", st)
	}
}

func TestDrawBoardInterpolatesAcrossInterval(t *testing.T) {
	w := donburi.NewWorld()
	SpawnBoard(w, testSnapshot(100, 200, 0, 0, "1"), testField(), 0)
	PushSnapshot(w, testSnapshot(140, 160, 40, 80, "1"), 1000)

	type spec struct {
		t    float64
		expX float32
		expY float32
	}
	specs := []spec{
		{990, 0, 0},
		{1000, 0, 0},
		{1010, 10, 20},
		{1020, 20, 40},
		{1040, 40, 80},
		{2000, 40, 80},
	}

	rec := &rendertest.Recorder{}
	for index, s := range specs {
		rec.Reset()
		DrawBoard(w, rec, s.t)
		ball := rec.Kind("circle")[0]
		if ball.X != s.expX || ball.Y != s.expY {
			t.Fatalf("[spec %d] expected ball at %v,%v; got %s", index, s.expX, s.expY, ball)
		}
	}
}

func TestGlowFlare(t *testing.T) {
	w := donburi.NewWorld()
	entry := SpawnBoard(w, testSnapshot(0, 0, 0, 0, "1"), testField(), 0)
	glow := components.Glow.Get(entry)

	if glow.Blur != cfg.Render.GlowBlur || glow.Tween != nil {
		t.Fatalf("expected steady glow at spawn; got %+v", glow)
	}

	FlareGlow(w)
	if glow.Blur != cfg.Render.HitGlowBlur || glow.Tween == nil {
		t.Fatalf("expected flare; got %+v", glow)
	}

	prev := glow.Blur
	for ts := 16.0; glow.Tween != nil; ts += 16 {
		if ts > 2000 {
			t.Fatal("flare never settled")
		}
		AdvanceGlow(w, ts)
		if glow.Blur > prev {
			t.Fatalf("expected blur to ease down; %v after %v", glow.Blur, prev)
		}
		prev = glow.Blur
	}
	if glow.Blur != cfg.Render.GlowBlur {
		t.Fatalf("expected steady blur after flare; got %v", glow.Blur)
	}

	// A later hit restarts the flare.
	FlareGlow(w)
	AdvanceGlow(w, 2100)
	FlareGlow(w)
	if glow.Blur != cfg.Render.HitGlowBlur {
		t.Fatalf("expected restarted flare; got %v", glow.Blur)
	}
}
