package config

import (
	"context"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
)

// PreferencesStore persists preferences in the [preferences] table of
// config.toml.
type PreferencesStore struct {
	manager *Manager
}

var _ port.PreferencesStore = (*PreferencesStore)(nil)

// NewPreferencesStore creates a store backed by manager.
func NewPreferencesStore(manager *Manager) *PreferencesStore {
	return &PreferencesStore{manager: manager}
}

// LoadPreferences returns the preferences of the current configuration.
func (s *PreferencesStore) LoadPreferences(context.Context) (entity.Preferences, error) {
	return PreferencesFromConfig(s.manager.Get()), nil
}

// SavePreferences writes p, leaving the rest of the file untouched.
func (s *PreferencesStore) SavePreferences(_ context.Context, p entity.Preferences) error {
	cfg := s.manager.Get()
	cfg.Preferences = PreferencesConfig{
		Language:        p.Language,
		AutoUpdateCheck: p.AutoUpdateCheck,
		Notifications:   p.Notifications,
	}
	return s.manager.Save(cfg)
}

// PreferencesFromConfig extracts the preferences record from cfg.
func PreferencesFromConfig(cfg *Config) entity.Preferences {
	lang := cfg.Preferences.Language
	if lang == "" {
		lang = entity.LanguageAuto
	}
	return entity.Preferences{
		Language:        lang,
		AutoUpdateCheck: cfg.Preferences.AutoUpdateCheck,
		Notifications:   cfg.Preferences.Notifications,
	}
}
