// Package cmd implements the pongview commands.
package cmd

import (
	"github.com/automoto/pongview/assets"
	cfg "github.com/automoto/pongview/config"
	"github.com/automoto/pongview/fonts"
	"github.com/automoto/pongview/host"
	"github.com/automoto/pongview/network"
	"github.com/automoto/pongview/scenes"
	"github.com/automoto/pongview/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

const appName = "pongview"

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Layout() (int, int)
}

// Game adapts the board scene to ebiten.
type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.scene.Layout()
}

type gameOptions struct {
	feed   network.Feed
	clock  host.Clock
	status func() string
}

func run(ctx *cli.Context, log *zap.SugaredLogger, opts gameOptions) error {
	settings, err := systems.OpenSettings(appName, log)
	if err != nil {
		log.Warnw("could not initialize persistence", "err", err)
	}
	saved := settings.Load()

	if err := fonts.LoadMono(cfg.Render.InfoFontSize); err != nil {
		return err
	}

	sfx := assets.NewSFX(audio.NewContext(cfg.Audio.SampleRate), log)
	sfx.SetVolume(saved.SFXVolume)
	sfx.SetMuted(saved.Muted || ctx.GlobalBool("mute"))
	sfx.PreloadAll()

	scene := scenes.NewBoardScene(scenes.BoardSceneConfig{
		Feed:     opts.feed,
		Status:   opts.status,
		Clock:    opts.clock,
		Face:     fonts.Mono.Get(),
		SFX:      sfx,
		Settings: settings,
		Log:      log,
	})
	defer scene.Close()

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(&Game{scene: scene})
}
