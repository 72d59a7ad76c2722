package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const envPrefix = "DUMB_MESSENGER"

// Manager owns the configuration file and the in-memory Config.
type Manager struct {
	mu             sync.RWMutex
	config         *Config
	viper          *viper.Viper
	configDir      string
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a manager for the XDG configuration directory.
func NewManager() (*Manager, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return NewManagerWithDir(dir), nil
}

// NewManagerWithDir creates a manager reading config.toml from dir.
func NewManagerWithDir(dir string) *Manager {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Short aliases shared with the logger bootstrap.
	_ = v.BindEnv("logging.level", envPrefix+"_LOG_LEVEL")
	_ = v.BindEnv("logging.format", envPrefix+"_LOG_FORMAT")

	return &Manager{
		viper:     v,
		configDir: dir,
		config:    DefaultConfig(),
	}
}

// ConfigFile returns the path of the managed config.toml.
func (m *Manager) ConfigFile() string {
	return filepath.Join(m.configDir, configFileName)
}

// Load reads the configuration, writing a default file when none exists.
// On error the manager keeps serving defaults so callers can continue.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			m.config = DefaultConfig()
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if err := m.createDefaultConfig(); err != nil {
			return err
		}
	}

	return m.unmarshalLocked()
}

func (m *Manager) unmarshalLocked() error {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		m.config = DefaultConfig()
		return fmt.Errorf("failed to parse config: %w", err)
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		m.config = DefaultConfig()
		return fmt.Errorf("invalid config: %w", err)
	}
	m.config = cfg
	return nil
}

// createDefaultConfig writes the defaults so users have a file to edit.
func (m *Manager) createDefaultConfig() error {
	path := m.ConfigFile()
	if err := WriteConfigOrdered(DefaultConfig(), path); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read default config: %w", err)
	}
	return nil
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cfg := *m.config
	return &cfg
}

// Save validates and writes cfg, then makes it current.
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	next := *cfg
	normalizeConfig(&next)
	if err := validateConfig(&next); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := WriteConfigOrdered(&next, m.ConfigFile()); err != nil {
		return err
	}
	m.skipNextReload = m.watching
	m.config = &next

	if !m.watching {
		if err := m.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to reload saved config: %w", err)
		}
	}
	return nil
}

func (m *Manager) setDefaults() {
	d := DefaultConfig()

	m.viper.SetDefault("app.url", d.App.URL)

	m.viper.SetDefault("preferences.language", d.Preferences.Language)
	m.viper.SetDefault("preferences.auto_update_check", d.Preferences.AutoUpdateCheck)
	m.viper.SetDefault("preferences.notifications", d.Preferences.Notifications)

	m.viper.SetDefault("notifications.cooldown_ms", d.Notifications.CooldownMs)
	m.viper.SetDefault("notifications.idle_title", d.Notifications.IdleTitle)

	m.viper.SetDefault("badge.poll_interval_ms", d.Badge.PollIntervalMs)

	m.viper.SetDefault("update.interval_hours", d.Update.IntervalHours)
	m.viper.SetDefault("update.feed_url", d.Update.FeedURL)

	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)
	m.viper.SetDefault("logging.file", d.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", d.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", d.Logging.MaxAgeDays)

	m.viper.SetDefault("database.path", d.Database.Path)
}

var (
	globalManager *Manager
	globalOnce    sync.Once
	globalErr     error
)

// Init loads the process-wide configuration once.
func Init() error {
	globalOnce.Do(func() {
		globalManager, globalErr = NewManager()
		if globalErr != nil {
			return
		}
		globalErr = globalManager.Load()
	})
	return globalErr
}

// Get returns the process-wide configuration, or defaults before Init.
func Get() *Config {
	if globalManager == nil {
		return DefaultConfig()
	}
	return globalManager.Get()
}

// GetManager returns the process-wide manager, nil before Init.
func GetManager() *Manager {
	return globalManager
}
