package config

import (
	"context"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/dumb-messenger/internal/logging"
)

// Watch starts following the config file. Edits made outside the
// application are re-read and handed to the OnConfigChange subscribers;
// a file that fails to parse or validate is ignored. Calling Watch twice
// is harmless.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	log := logging.FromContext(ctx)

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Stringer("op", e.Op).Str("file", e.Name).Msg("config file changed")

		cfg, changed, err := m.applyFileChange()
		if err != nil {
			log.Warn().Err(err).Msg("config reload failed, keeping previous values")
			return
		}
		if changed {
			m.publish(cfg)
		}
	})
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

// OnConfigChange registers fn for external edits of the config file.
// fn receives its own copy of the new configuration.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// applyFileChange re-reads the file. The write performed by our own Save is
// absorbed without notifying anyone.
func (m *Manager) applyFileChange() (Config, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return Config{}, false, err
	}
	if m.skipNextReload {
		m.skipNextReload = false
		return Config{}, false, nil
	}

	previous := m.config
	if err := m.unmarshalLocked(); err != nil {
		m.config = previous
		return Config{}, false, err
	}
	return *m.config, true, nil
}

func (m *Manager) publish(cfg Config) {
	m.mu.RLock()
	subscribers := append([]func(*Config){}, m.callbacks...)
	m.mu.RUnlock()

	for _, fn := range subscribers {
		snapshot := cfg
		fn(&snapshot)
	}
}
