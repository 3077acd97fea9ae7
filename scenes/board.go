package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/pongview/assets"
	cfg "github.com/automoto/pongview/config"
	"github.com/automoto/pongview/host"
	"github.com/automoto/pongview/network"
	"github.com/automoto/pongview/render/canvas"
	"github.com/automoto/pongview/systems"
	"github.com/automoto/pongview/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
	"golang.org/x/image/font"
)

const layerBoard ecs.LayerID = 0

// BoardScene hosts the board hook. Update drains the feed into the hook
// registry; Draw grants the pending frame requests.
type BoardScene struct {
	ecs  *ecs.ECS
	once sync.Once

	feed     network.Feed
	status   func() string
	registry *host.Registry
	frames   *host.FrameQueue
	clock    host.Clock
	canvas   *canvas.Canvas
	sfx      *assets.SFX
	settings *systems.SettingsStore
	log      *zap.SugaredLogger

	err error
}

// BoardSceneConfig carries the scene's collaborators. Status, SFX and
// Settings are optional.
type BoardSceneConfig struct {
	Feed     network.Feed
	Status   func() string
	Clock    host.Clock
	Face     font.Face
	SFX      *assets.SFX
	Settings *systems.SettingsStore
	Log      *zap.SugaredLogger
}

func NewBoardScene(c BoardSceneConfig) *BoardScene {
	bs := &BoardScene{
		feed:     c.Feed,
		status:   c.Status,
		registry: host.NewRegistry(c.Log.Named("host")),
		frames:   &host.FrameQueue{},
		clock:    c.Clock,
		canvas:   canvas.New(nil, c.Face),
		sfx:      c.SFX,
		settings: c.Settings,
		log:      c.Log,
	}

	bs.registry.Register(cfg.Network.BoardRole, func() host.Hook {
		opts := []view.Option{view.WithLogger(c.Log.Named("board"))}
		if c.SFX != nil {
			opts = append(opts, view.WithCue(c.SFX))
		}
		return view.NewBoard(bs.frames, bs.clock, opts...)
	})
	return bs
}

// Update returns the first mount failure; the game stops on it.
func (bs *BoardScene) Update() error {
	bs.once.Do(bs.configure)
	bs.ecs.Update()
	return bs.err
}

func (bs *BoardScene) Draw(screen *ebiten.Image) {
	if bs.ecs == nil {
		screen.Fill(color.Black)
		return
	}
	bs.ecs.Draw(screen)
}

// Layout sizes the screen to the mounted field, or the configured window
// before anything is mounted.
func (bs *BoardScene) Layout() (int, int) {
	if b, ok := bs.board(); ok {
		if field, ok := b.Field(); ok {
			return int(field.FieldWidth), int(field.FieldHeight)
		}
	}
	return cfg.C.Width, cfg.C.Height
}

// Close tears down every mounted hook.
func (bs *BoardScene) Close() {
	bs.registry.DestroyAll()
}

func (bs *BoardScene) configure() {
	bs.ecs = ecs.NewECS(donburi.NewWorld())

	bs.ecs.AddSystem(bs.updateFeed)
	bs.ecs.AddSystem(bs.updateMute)

	bs.ecs.AddRenderer(layerBoard, bs.drawFrames)
}

func (bs *BoardScene) updateFeed(_ *ecs.ECS) {
	if bs.err != nil {
		return
	}
	for _, ev := range bs.feed.Drain() {
		if err := bs.registry.Dispatch(ev); err != nil {
			bs.log.Errorw("mount failed", "role", ev.Role, "err", err)
			bs.err = err
			return
		}
	}
}

// updateMute toggles sound effects on M and persists the choice.
func (bs *BoardScene) updateMute(_ *ecs.ECS) {
	if bs.sfx == nil || !inpututil.IsKeyJustPressed(ebiten.KeyM) {
		return
	}

	bs.sfx.SetMuted(!bs.sfx.Muted())
	bs.log.Infow("sound toggled", "muted", bs.sfx.Muted())

	err := bs.settings.Save(systems.SavedSettings{
		SFXVolume: bs.sfx.Volume(),
		Muted:     bs.sfx.Muted(),
	})
	if err != nil {
		bs.log.Warnw("could not persist mute", "err", err)
	}
}

func (bs *BoardScene) drawFrames(_ *ecs.ECS, screen *ebiten.Image) {
	bs.canvas.Reset(screen)
	if bs.frames.Fire(bs.clock(), bs.canvas) > 0 {
		return
	}

	// Nothing is mounted yet.
	bs.canvas.Clear()
	msg := "waiting for board"
	if bs.status != nil {
		msg = fmt.Sprintf("%s (%s)", msg, bs.status())
	}
	bs.canvas.Text(msg, 10, 10, cfg.Render.InfoColor)
}

func (bs *BoardScene) board() (*view.Board, bool) {
	h, ok := bs.registry.Mounted(cfg.Network.BoardRole)
	if !ok {
		return nil, false
	}
	b, ok := h.(*view.Board)
	return b, ok
}
