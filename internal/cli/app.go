// Package cli holds the dependencies shared by the command line entry points.
package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/dumb-messenger/internal/cli/styles"
	"github.com/bnema/dumb-messenger/internal/domain/build"
	"github.com/bnema/dumb-messenger/internal/infrastructure/config"
	"github.com/bnema/dumb-messenger/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dumb-messenger/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	// Set when the configuration could not be read; defaults are in use.
	ConfigErr error

	ctx       context.Context
	logCloser io.Closer

	dbOnce sync.Once
	db     *sql.DB
	dbErr  error
}

// Options tune NewApp.
type Options struct {
	// FileLog tees the logger into the rotated log file when enabled in the
	// config. Short-lived commands leave it off.
	FileLog bool
}

// NewApp loads the configuration and builds the logger.
func NewApp(opts Options) (*App, error) {
	app := &App{}

	if err := config.Init(); err != nil {
		app.ConfigErr = err
	}
	app.ConfigManager = config.GetManager()
	app.Config = config.Get()
	app.Theme = styles.NewTheme()

	logger, closer := newLogger(app.Config, opts.FileLog)
	app.logCloser = closer
	app.ctx = logging.WithContext(context.Background(), logger)

	if app.ConfigErr != nil {
		logger.Warn().Err(app.ConfigErr).Msg("failed to load config, using defaults")
	}
	return app, nil
}

func newLogger(cfg *config.Config, fileLog bool) (zerolog.Logger, io.Closer) {
	logCfg := logging.ConfigFromValues(cfg.Logging.Level, cfg.Logging.Format)
	logCfg.TimeFormat = "15:04:05"

	if !fileLog || !cfg.Logging.File {
		return logging.New(logCfg), nil
	}

	dir, err := config.GetLogDir()
	if err != nil {
		logger := logging.New(logCfg)
		logger.Warn().Err(err).Msg("cannot resolve log directory, file logging disabled")
		return logger, nil
	}

	rotation := logging.DefaultRotationConfig()
	if cfg.Logging.MaxSizeMB > 0 {
		rotation.MaxSizeMB = cfg.Logging.MaxSizeMB
	}
	if cfg.Logging.MaxBackups > 0 {
		rotation.MaxBackups = cfg.Logging.MaxBackups
	}
	if cfg.Logging.MaxAgeDays > 0 {
		rotation.MaxAgeDays = cfg.Logging.MaxAgeDays
	}

	logger, closer, err := logging.NewWithFile(logCfg, dir, rotation)
	if err != nil {
		logger = logging.New(logCfg)
		logger.Warn().Err(err).Msg("failed to open log file, file logging disabled")
		return logger, nil
	}
	return logger, closer
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// DatabasePath returns the configured database file, or the XDG default.
func (a *App) DatabasePath() (string, error) {
	if a.Config.Database.Path != "" {
		return a.Config.Database.Path, nil
	}
	return config.GetDatabaseFile()
}

// Database opens the state database on first use.
func (a *App) Database() (*sql.DB, error) {
	a.dbOnce.Do(func() {
		path, err := a.DatabasePath()
		if err != nil {
			a.dbErr = fmt.Errorf("resolve database path: %w", err)
			return
		}
		a.db, a.dbErr = sqlite.NewConnection(a.ctx, path)
	})
	return a.db, a.dbErr
}

// Close releases all resources.
func (a *App) Close() error {
	var errs []error
	if a.db != nil {
		errs = append(errs, sqlite.Close(a.db))
	}
	if a.logCloser != nil {
		errs = append(errs, a.logCloser.Close())
	}
	return errors.Join(errs...)
}
