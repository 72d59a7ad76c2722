package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/dumb-messenger/assets"
	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/application/usecase"
	"github.com/bnema/dumb-messenger/internal/cli"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
	"github.com/bnema/dumb-messenger/internal/domain/navigation"
	"github.com/bnema/dumb-messenger/internal/infrastructure/badge"
	"github.com/bnema/dumb-messenger/internal/infrastructure/browser"
	"github.com/bnema/dumb-messenger/internal/infrastructure/config"
	"github.com/bnema/dumb-messenger/internal/infrastructure/desktop"
	"github.com/bnema/dumb-messenger/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dumb-messenger/internal/infrastructure/updater"
	"github.com/bnema/dumb-messenger/internal/logging"
	"github.com/bnema/dumb-messenger/internal/ui"
	"github.com/bnema/dumb-messenger/internal/ui/mainloop"
	"github.com/bnema/dumb-messenger/internal/ui/theme"
)

const notifierAppName = "Dumb Messenger"

// exitCode carries the GTK exit status out of the root command.
var exitCode int

func runGUI(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	initialURL := ""
	if len(args) == 1 {
		initialURL, err = validateInitialURL(args[0])
		if err != nil {
			return err
		}
	}
	devTools, _ := cmd.Flags().GetBool("devtools")

	ctx := a.Ctx()
	log := logging.FromContext(ctx)
	log.Info().
		Str("version", a.BuildInfo.Version).
		Str("commit", a.BuildInfo.Commit).
		Str("build_date", a.BuildInfo.BuildDate).
		Msg("starting dumb-messenger")

	if err := config.EnsureDirectories(); err != nil {
		log.Warn().Err(err).Msg("failed to create application directories")
	}

	deps, err := buildUIDependencies(ctx, a, initialURL, devTools)
	if err != nil {
		return err
	}

	gui, err := ui.New(deps)
	if err != nil {
		log.Error().Err(err).Msg("failed to create application")
		exitCode = 1
		return nil
	}
	setupSignalHandler(ctx, gui)

	exitCode = gui.Run(ctx, os.Args[:1])
	return nil
}

func init() {
	rootCmd.Flags().Bool("devtools", false, "enable the web inspector")
}

// validateInitialURL accepts only pages the main window may render.
func validateInitialURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid url %q", raw)
	}
	if u.Scheme != "https" {
		return "", fmt.Errorf("only https urls are supported: %q", raw)
	}
	if navigation.Classify(u.Host, u.Path) == entity.NavigationExternal {
		return "", fmt.Errorf("%s is not a Messenger page", u.Host)
	}
	return u.String(), nil
}

func buildUIDependencies(ctx context.Context, a *cli.App, initialURL string, devTools bool) (*ui.Dependencies, error) {
	log := logging.FromContext(ctx)
	cfg := a.Config

	prefsUC := usecase.NewManagePreferencesUseCase(ctx, preferencesStore(a))
	geometryUC := usecase.NewWindowGeometryUseCase(geometryStore(ctx, a))

	renderer, err := badge.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("create badge renderer: %w", err)
	}

	opener := browser.NewOpener()
	containUC := usecase.NewContainNavigationUseCase(opener)
	checker := updater.NewGitHubChecker(cfg.Update.FeedURL)
	checkUC := usecase.NewCheckUpdateUseCase(checker, a.BuildInfo)

	notifier := desktop.NewNotifier(logging.WithComponent(ctx, "notifier"), notifierAppName)
	launcher := desktop.NewLauncherEntry(logging.WithComponent(ctx, "launcher"))

	dataDir, err := config.GetWebKitDataDir()
	if err != nil {
		log.Warn().Err(err).Msg("cannot resolve webkit data directory")
	}
	cacheDir, err := config.GetWebKitCacheDir()
	if err != nil {
		log.Warn().Err(err).Msg("cannot resolve webkit cache directory")
	}

	return &ui.Dependencies{
		Ctx:             ctx,
		Config:          cfg,
		ConfigManager:   a.ConfigManager,
		BuildInfo:       a.BuildInfo,
		InitialURL:      initialURL,
		Theme:           theme.NewManager(),
		UserScript:      assets.ObserverScript,
		WebKitDataDir:   dataDir,
		WebKitCacheDir:  cacheDir,
		DeveloperExtras: devTools,
		PrefsUC:         prefsUC,
		GeometryUC:      geometryUC,
		ContainUC:       containUC,
		CheckUpdateUC:   checkUC,
		Notifier:        notifier,
		Launcher:        launcher,
		BadgeRenderer:   renderer,
		Opener:          opener,
	}, nil
}

// preferencesStore falls back to an in-memory store when no config manager
// is available, so menu toggles still work for the session.
func preferencesStore(a *cli.App) port.PreferencesStore {
	if a.ConfigManager == nil {
		return &memoryPreferences{prefs: config.PreferencesFromConfig(a.Config)}
	}
	return config.NewPreferencesStore(a.ConfigManager)
}

// geometryStore opens the state database. Without it the geometry lives in
// memory for the session and the defaults apply at the next start.
func geometryStore(ctx context.Context, a *cli.App) port.GeometryStore {
	db, err := a.Database()
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("state database unavailable, window geometry will not persist")
		return &memoryGeometry{}
	}
	return sqlite.NewWindowStateRepository(db, sqlite.MainWindow)
}

func setupSignalHandler(ctx context.Context, gui *ui.App) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
		mainloop.IdlePost(gui.Quit)
	}()
}

type memoryPreferences struct {
	prefs entity.Preferences
}

func (m *memoryPreferences) LoadPreferences(context.Context) (entity.Preferences, error) {
	return m.prefs, nil
}

func (m *memoryPreferences) SavePreferences(_ context.Context, p entity.Preferences) error {
	m.prefs = p
	return nil
}

type memoryGeometry struct {
	g     entity.Geometry
	saved bool
}

func (m *memoryGeometry) Load(context.Context) (entity.Geometry, error) {
	if !m.saved {
		return entity.Geometry{}, port.ErrNotFound
	}
	return m.g, nil
}

func (m *memoryGeometry) Save(_ context.Context, g entity.Geometry) error {
	m.g, m.saved = g, true
	return nil
}
