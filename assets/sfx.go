package assets

import (
	cfg "github.com/automoto/pongview/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
)

// SFX plays configured sound effects. Every Play starts a fresh player, so a
// hit that lands while the previous one is still ringing plays again on top.
type SFX struct {
	loader *AudioLoader
	volume float64
	muted  bool
	log    *zap.SugaredLogger
}

// NewSFX creates the effect player. ebiten allows one audio context per
// process, so callers create it once and share it.
func NewSFX(ctx *audio.Context, log *zap.SugaredLogger) *SFX {
	return &SFX{
		loader: NewAudioLoader(ctx),
		volume: cfg.Audio.DefaultSFXVol,
		log:    log,
	}
}

// PreloadAll decodes every configured effect. Failures are logged; the
// effect is retried lazily on first play.
func (s *SFX) PreloadAll() {
	for id, path := range cfg.Sound.SFXPaths {
		if err := s.loader.PreloadSFX(path); err != nil {
			s.log.Warnw("preload sfx failed", "sound", id, "err", err)
		}
	}
}

// Play starts the effect and returns without waiting for it to finish.
func (s *SFX) Play(id cfg.SoundID) error {
	if s.muted || s.volume <= 0 {
		return nil
	}

	path, ok := cfg.Sound.SFXPaths[id]
	if !ok {
		return nil
	}

	player, err := s.loader.LoadSFX(path)
	if err != nil {
		return err
	}

	volume := s.volume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
	return nil
}

// SetVolume changes the effect volume (0.0 - 1.0).
func (s *SFX) SetVolume(v float64) {
	s.volume = v
}

func (s *SFX) Volume() float64 {
	return s.volume
}

func (s *SFX) SetMuted(m bool) {
	s.muted = m
}

func (s *SFX) Muted() bool {
	return s.muted
}
