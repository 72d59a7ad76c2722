// Package config loads, watches and writes the TOML configuration file.
package config

// Config is the complete on-disk configuration.
type Config struct {
	App           AppConfig           `mapstructure:"app" toml:"app"`
	Preferences   PreferencesConfig   `mapstructure:"preferences" toml:"preferences"`
	Notifications NotificationsConfig `mapstructure:"notifications" toml:"notifications"`
	Badge         BadgeConfig         `mapstructure:"badge" toml:"badge"`
	Update        UpdateConfig        `mapstructure:"update" toml:"update"`
	Logging       LoggingConfig       `mapstructure:"logging" toml:"logging"`
	Database      DatabaseConfig      `mapstructure:"database" toml:"database"`
}

// AppConfig holds the wrapped web application settings.
type AppConfig struct {
	// URL is loaded into the main window at startup.
	URL string `mapstructure:"url" toml:"url"`
}

// PreferencesConfig is the user-facing preferences record, edited from the
// application menu.
type PreferencesConfig struct {
	// Language is a BCP 47 tag, or "auto" to follow the system locale.
	Language        string `mapstructure:"language" toml:"language"`
	AutoUpdateCheck bool   `mapstructure:"auto_update_check" toml:"auto_update_check"`
	Notifications   bool   `mapstructure:"notifications" toml:"notifications"`
}

// NotificationsConfig tunes the notification debouncer.
type NotificationsConfig struct {
	CooldownMs int    `mapstructure:"cooldown_ms" toml:"cooldown_ms"`
	IdleTitle  string `mapstructure:"idle_title" toml:"idle_title"`
}

// BadgeConfig tunes the host-side title poll.
type BadgeConfig struct {
	PollIntervalMs int `mapstructure:"poll_interval_ms" toml:"poll_interval_ms"`
}

// UpdateConfig controls the release feed check.
type UpdateConfig struct {
	IntervalHours int    `mapstructure:"interval_hours" toml:"interval_hours"`
	FeedURL       string `mapstructure:"feed_url" toml:"feed_url"`
}

// LoggingConfig controls the application logger.
type LoggingConfig struct {
	Level      string `mapstructure:"level" toml:"level"`
	Format     string `mapstructure:"format" toml:"format"`
	File       bool   `mapstructure:"file" toml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days"`
}

// DatabaseConfig locates the SQLite state database.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}
