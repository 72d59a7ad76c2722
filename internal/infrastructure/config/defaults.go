package config

const (
	// DefaultAppURL is the page wrapped by the main window.
	DefaultAppURL = "https://www.messenger.com/"
	// DefaultFeedURL is the latest-release endpoint of the project.
	DefaultFeedURL = "https://api.github.com/repos/bnema/dumb-messenger/releases/latest"

	defaultCooldownMs     = 1000
	defaultIdleTitle      = "Messenger"
	defaultPollIntervalMs = 1000
	defaultUpdateHours    = 4
)

// DefaultConfig returns the configuration written on first start.
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			URL: DefaultAppURL,
		},
		Preferences: PreferencesConfig{
			Language:        "auto",
			AutoUpdateCheck: true,
			Notifications:   true,
		},
		Notifications: NotificationsConfig{
			CooldownMs: defaultCooldownMs,
			IdleTitle:  defaultIdleTitle,
		},
		Badge: BadgeConfig{
			PollIntervalMs: defaultPollIntervalMs,
		},
		Update: UpdateConfig{
			IntervalHours: defaultUpdateHours,
			FeedURL:       DefaultFeedURL,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			File:       false,
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 7,
		},
	}
}
