// Package logging builds the zerolog loggers used across the application.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return newLogger(cfg, consoleOrJSON(cfg, os.Stderr))
}

// NewWithFile creates a logger writing to stderr and to a rotated file in
// dir. The returned closer flushes and closes the file.
func NewWithFile(cfg Config, dir string, rotation RotationConfig) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}
	rotator, err := NewLogRotator(dir, rotation)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	// The file always gets JSON so it stays greppable.
	out := zerolog.MultiLevelWriter(consoleOrJSON(cfg, os.Stderr), rotator)
	return newLogger(cfg, out), rotator, nil
}

// ConfigFromValues builds a Config from the textual level and format used in
// the config file and environment. Unknown values keep the defaults.
func ConfigFromValues(level, format string) Config {
	cfg := DefaultConfig()
	if lvl, ok := ParseLevel(level); ok {
		cfg.Level = lvl
	}
	switch strings.ToLower(format) {
	case "json", "console":
		cfg.Format = strings.ToLower(format)
	}
	return cfg
}

// ParseLevel maps trace, debug, info, warn and error to zerolog levels.
func ParseLevel(level string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	default:
		return zerolog.InfoLevel, false
	}
}

func consoleOrJSON(cfg Config, w io.Writer) io.Writer {
	if cfg.Format == "json" {
		return w
	}
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: cfg.TimeFormat,
	}
}

func newLogger(cfg Config, out io.Writer) zerolog.Logger {
	return zerolog.New(out).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}
