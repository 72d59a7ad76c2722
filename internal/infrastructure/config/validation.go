package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/dumb-messenger/internal/logging"
)

// validateConfig checks value ranges. Errors are joined so the user sees
// every problem at once.
func validateConfig(cfg *Config) error {
	var errs []error

	if cfg.Notifications.CooldownMs <= 0 {
		errs = append(errs, fmt.Errorf("notifications.cooldown_ms must be positive, got %d", cfg.Notifications.CooldownMs))
	}
	if cfg.Badge.PollIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("badge.poll_interval_ms must be positive, got %d", cfg.Badge.PollIntervalMs))
	}
	if cfg.Update.IntervalHours <= 0 {
		errs = append(errs, fmt.Errorf("update.interval_hours must be positive, got %d", cfg.Update.IntervalHours))
	}
	if err := validateHTTPURL("app.url", cfg.App.URL); err != nil {
		errs = append(errs, err)
	}
	if err := validateHTTPURL("update.feed_url", cfg.Update.FeedURL); err != nil {
		errs = append(errs, err)
	}
	if _, ok := logging.ParseLevel(cfg.Logging.Level); !ok {
		errs = append(errs, fmt.Errorf("logging.level %q is not one of trace, debug, info, warn, error", cfg.Logging.Level))
	}
	switch strings.ToLower(cfg.Logging.Format) {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q is not one of json, console", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}

func validateHTTPURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("%s must be an http(s) URL, got %q", key, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s has no host: %q", key, raw)
	}
	return nil
}

// normalizeConfig fills values left empty by hand-edited files.
func normalizeConfig(cfg *Config) {
	defaults := DefaultConfig()

	if strings.TrimSpace(cfg.App.URL) == "" {
		cfg.App.URL = defaults.App.URL
	}
	if strings.TrimSpace(cfg.Update.FeedURL) == "" {
		cfg.Update.FeedURL = defaults.Update.FeedURL
	}
	if strings.TrimSpace(cfg.Preferences.Language) == "" {
		cfg.Preferences.Language = defaults.Preferences.Language
	}
	if cfg.Notifications.IdleTitle == "" {
		cfg.Notifications.IdleTitle = defaults.Notifications.IdleTitle
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
	cfg.Logging.Format = strings.ToLower(cfg.Logging.Format)
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaults.Logging.Format
	}
}
