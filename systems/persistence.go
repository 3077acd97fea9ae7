package systems

import (
	"encoding/json"

	cfg "github.com/automoto/pongview/config"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume float64 `json:"sfxVolume"`
	Muted     bool    `json:"muted"`
}

// DefaultSettings returns the settings used before anything was saved.
func DefaultSettings() SavedSettings {
	return SavedSettings{SFXVolume: cfg.Audio.DefaultSFXVol}
}

// SettingsStore persists SavedSettings with gdata. A nil store loads defaults
// and saves nothing.
type SettingsStore struct {
	manager *gdata.Manager
	log     *zap.SugaredLogger
}

// OpenSettings opens the settings store for appName.
func OpenSettings(appName string, log *zap.SugaredLogger) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, err
	}
	return &SettingsStore{manager: m, log: log}, nil
}

// Load returns the saved settings, or defaults when none were saved or the
// stored data cannot be read.
func (s *SettingsStore) Load() SavedSettings {
	if s == nil || s.manager == nil {
		return DefaultSettings()
	}

	data, err := s.manager.LoadItem(settingsKey)
	if err != nil {
		s.log.Warnw("could not load settings", "err", err)
		return DefaultSettings()
	}
	settings, err := DecodeSettings(data)
	if err != nil {
		s.log.Warnw("could not parse saved settings", "err", err)
		return DefaultSettings()
	}
	return settings
}

// Save writes settings to disk
func (s *SettingsStore) Save(settings SavedSettings) error {
	if s == nil || s.manager == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	if err := s.manager.SaveItem(settingsKey, data); err != nil {
		s.log.Warnw("could not save settings", "err", err)
		return err
	}
	return nil
}

// DecodeSettings parses stored settings. Empty data yields defaults.
func DecodeSettings(data []byte) (SavedSettings, error) {
	settings := DefaultSettings()
	if len(data) == 0 {
		return settings, nil
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), err
	}
	return settings, nil
}
