package ui

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/application/usecase"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
	"github.com/bnema/dumb-messenger/internal/domain/i18n"
	"github.com/bnema/dumb-messenger/internal/infrastructure/config"
	"github.com/bnema/dumb-messenger/internal/infrastructure/webkit"
	"github.com/bnema/dumb-messenger/internal/infrastructure/webkit/bridge"
	"github.com/bnema/dumb-messenger/internal/logging"
	"github.com/bnema/dumb-messenger/internal/ui/component"
	"github.com/bnema/dumb-messenger/internal/ui/coordinator"
	"github.com/bnema/dumb-messenger/internal/ui/mainloop"
	"github.com/bnema/dumb-messenger/internal/ui/window"
)

const (
	// AppID is the application identifier for GTK. It doubles as the
	// desktop entry ID so notifications and the launcher badge are
	// attributed to the window.
	AppID = "com.github.bnema.dumbmessenger"

	// geometrySaveDelay batches the resize events of one drag into one write.
	geometrySaveDelay = 500 * time.Millisecond

	titleMessageType = "title"
)

// App wraps the GTK Application and manages the shell lifecycle.
type App struct {
	deps       *Dependencies
	gtkApp     *gtk.Application
	mainWindow *window.MainWindow
	webView    *webkit.WebView
	router     *bridge.Router

	// Main loop helpers
	coalescer *mainloop.Coalescer
	scheduler *mainloop.Scheduler

	// Widgets
	badgeIndicator *component.BadgeIndicator
	appMenu        *component.AppMenu
	prompt         *component.PromptOverlay
	popups         map[*window.PopupWindow]*webkit.WebView

	// Coordinators
	badgeCoord  *coordinator.BadgeCoordinator
	notifyCoord *coordinator.NotificationCoordinator
	navCoord    *coordinator.NavigationCoordinator
	updateCoord *coordinator.UpdateCoordinator
	menuCoord   *coordinator.MenuCoordinator

	geometryTimer port.Timer

	// lifecycle
	ctx    context.Context
	cancel context.CancelCauseFunc
}

// New creates a new App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancelCause(deps.Ctx)

	return &App{
		deps:      deps,
		router:    bridge.NewRouter(ctx),
		coalescer: mainloop.NewCoalescer(mainloop.IdlePost),
		scheduler: mainloop.NewScheduler(),
		popups:    make(map[*window.PopupWindow]*webkit.WebView),
		ctx:       ctx,
		cancel:    cancel,
	}, nil
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating GTK application")

	a.gtkApp = gtk.NewApplication(AppID, gio.ApplicationFlagsNone)
	if a.gtkApp == nil {
		log.Error().Msg("failed to create GTK application")
		return 1
	}

	a.gtkApp.ConnectActivate(func() {
		a.onActivate(a.ctx)
	})
	a.gtkApp.ConnectShutdown(func() {
		a.onShutdown(a.ctx)
	})

	log.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(args)
}

// onActivate is called when the GTK application is activated. A second
// launch activates the running instance, which only raises its window.
func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)

	if a.mainWindow != nil && !a.mainWindow.IsDestroyed() {
		log.Debug().Msg("already running, presenting main window")
		a.mainWindow.Present()
		return
	}
	log.Debug().Msg("GTK application activated")

	if a.deps.Theme != nil {
		a.deps.Theme.ApplyToDisplay(ctx, gdk.DisplayGetDefault())
	}
	a.initNetworkSession(ctx)

	if err := a.createMainWindow(ctx); err != nil {
		log.Error().Err(err).Msg("failed to create main window")
		a.gtkApp.Quit()
		return
	}
	a.initComponents()
	a.initCoordinators(ctx)

	if err := a.createWebView(ctx); err != nil {
		log.Error().Err(err).Msg("failed to create web view")
		a.gtkApp.Quit()
		return
	}
	a.initMenu(ctx)

	a.finalizeActivation(ctx)
}

func (a *App) initNetworkSession(ctx context.Context) {
	log := logging.FromContext(ctx)

	dataDir, cacheDir := a.deps.WebKitDataDir, a.deps.WebKitCacheDir
	if dataDir == "" || cacheDir == "" {
		var err error
		if dataDir, err = config.GetWebKitDataDir(); err == nil {
			cacheDir, err = config.GetWebKitCacheDir()
		}
		if err != nil {
			log.Warn().Err(err).Msg("cannot resolve webkit directories, logins will not persist")
			return
		}
	}
	if err := webkit.InitPersistentSession(ctx, dataDir, cacheDir); err != nil {
		log.Warn().Err(err).Msg("failed to create persistent session, logins will not persist")
	}
}

func (a *App) createMainWindow(ctx context.Context) error {
	mw, err := window.New(ctx, a.gtkApp)
	if err != nil {
		return err
	}
	a.mainWindow = mw

	g := a.deps.GeometryUC.Load(ctx)
	mw.ApplyGeometry(g)

	mw.OnGeometryChanged(func(g entity.Geometry) {
		a.scheduleGeometrySave(ctx, g)
	})
	mw.OnClose(func() {
		a.closeMainWindow(ctx)
	})
	return nil
}

func (a *App) initComponents() {
	a.badgeIndicator = component.NewBadgeIndicator()
	a.mainWindow.PackStart(a.badgeIndicator.Widget())

	a.prompt = component.NewPromptOverlay()
	a.mainWindow.AddOverlay(a.prompt.Widget())
}

// initCoordinators initializes all coordinators and wires their callbacks.
func (a *App) initCoordinators(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("initializing coordinators")

	cfg := a.deps.Config
	table := i18n.Resolve(a.deps.PrefsUC.Current().Language)

	a.badgeCoord = coordinator.NewBadgeCoordinator(coordinator.BadgeCoordinatorDeps{
		Renderer:     a.deps.BadgeRenderer,
		View:         a.badgeIndicator,
		Launcher:     a.deps.Launcher,
		Window:       a.mainWindow,
		Post:         a.coalescer.Post,
		Scheduler:    a.scheduler,
		PollInterval: time.Duration(cfg.Badge.PollIntervalMs) * time.Millisecond,
	})
	if err := a.router.Register(titleMessageType, a.badgeCoord.TitleMessageHandler()); err != nil {
		log.Error().Err(err).Msg("failed to register title handler")
	}

	a.notifyCoord = coordinator.NewNotificationCoordinator(coordinator.NotificationCoordinatorDeps{
		Notifier:  a.deps.Notifier,
		Window:    a.mainWindow,
		Launcher:  a.deps.Launcher,
		Post:      mainloop.IdlePost,
		Scheduler: a.scheduler,
		Config: usecase.TitleNotifierConfig{
			Cooldown:  time.Duration(cfg.Notifications.CooldownMs) * time.Millisecond,
			IdleTitle: cfg.Notifications.IdleTitle,
			Summary:   table.T(i18n.MsgNewMessage),
		},
		Enabled: func() bool { return a.deps.PrefsUC.Current().Notifications },
	})
	a.mainWindow.OnActiveChanged(func(active bool) {
		a.notifyCoord.OnActiveChanged(ctx, active)
	})

	a.updateCoord = coordinator.NewUpdateCoordinator(coordinator.UpdateCoordinatorDeps{
		CheckUC: a.deps.CheckUpdateUC,
		Opener:  a.deps.Opener,
		Presenter: &updatePresenter{
			prompt: a.prompt,
			table:  a.table,
		},
		Post:     mainloop.IdlePost,
		Enabled:  func() bool { return a.deps.PrefsUC.Current().AutoUpdateCheck },
		Interval: time.Duration(cfg.Update.IntervalHours) * time.Hour,
	})
}

func (a *App) createWebView(ctx context.Context) error {
	wv, err := webkit.NewWebView(ctx, webkit.Config{
		UserScript:      a.deps.UserScript,
		Router:          a.router,
		DeveloperExtras: a.deps.DeveloperExtras,
	})
	if err != nil {
		return err
	}
	a.webView = wv
	a.mainWindow.SetContent(wv.Widget())

	a.navCoord = coordinator.NewNavigationCoordinator(coordinator.NavigationCoordinatorDeps{
		ContainUC: a.deps.ContainUC,
		Main:      wv,
		Window:    a.mainWindow,
		Popups:    a,
		Post:      mainloop.IdlePost,
	})

	wv.OnTitleChanged(func(title string) {
		a.mainWindow.SetTitle(title)
		a.badgeCoord.OnTitleChanged(ctx, title)
		a.notifyCoord.OnTitleChanged(ctx, title)
	})
	a.containView(ctx, wv)
	wv.OnLoadFailed(func(_ string, err error) {
		a.showLoadError(err)
	})
	return nil
}

func (a *App) initMenu(ctx context.Context) {
	a.appMenu = component.NewAppMenu(a.gtkApp, func(action entity.MenuAction, value string) {
		a.menuCoord.Dispatch(ctx, action, value)
	})
	a.mainWindow.PackEnd(a.appMenu.Widget())

	a.menuCoord = coordinator.NewMenuCoordinator(coordinator.MenuCoordinatorDeps{
		Prefs: a.deps.PrefsUC,
		View:  a.appMenu,
		Page:  a.webView,
		OnCheckUpdates: func(ctx context.Context) {
			a.updateCoord.CheckNow(ctx)
		},
		OnAbout: func() {
			component.ShowAbout(&a.mainWindow.Window().Window, a.deps.BuildInfo)
		},
		OnQuit: a.Quit,
		OnLanguage: func(table *i18n.Table) {
			a.notifyCoord.SetLanguage(table)
		},
	})
	a.menuCoord.Attach(mainloop.IdlePost)
}

func (a *App) finalizeActivation(ctx context.Context) {
	log := logging.FromContext(ctx)

	url := a.deps.StartURL()
	if err := a.webView.LoadURL(url); err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to load start page")
	}

	a.mainWindow.Show()
	log.Info().Str("url", url).Msg("main window displayed")

	a.badgeCoord.StartPolling(ctx, a.webView)
	a.updateCoord.Start(ctx)
	a.initConfigWatcher(ctx)
}

// containView routes the navigations and window requests of wv through the
// navigation coordinator.
func (a *App) containView(ctx context.Context, wv *webkit.WebView) {
	wv.OnNavigation(func(req webkit.NavigationRequest) bool {
		return a.navCoord.HandleNavigation(ctx, req.URL, req.NewWindow)
	})
	wv.OnCreate(func(req webkit.NavigationRequest) *webkit.WebView {
		popup, _ := a.navCoord.HandleCreate(ctx, wv, req.URL).(*webkit.WebView)
		return popup
	})
}

// OpenPopup creates the view for a login popup requested by opener and hosts
// it in a popup window. WebKit loads the request itself; the window is shown
// once the view is ready.
func (a *App) OpenPopup(ctx context.Context, opener coordinator.PageView, url string) coordinator.PageView {
	log := logging.FromContext(ctx)

	related, ok := opener.(*webkit.WebView)
	if !ok {
		log.Error().Msg("popup requested by an unknown view")
		return nil
	}
	wv, err := webkit.NewRelatedWebView(ctx, related)
	if err != nil {
		log.Error().Err(err).Msg("failed to create popup web view")
		return nil
	}
	pw, err := window.NewPopupWindow(a.mainWindow, wv.Widget())
	if err != nil {
		wv.Destroy()
		log.Error().Err(err).Msg("failed to create popup window")
		return nil
	}
	a.popups[pw] = wv

	wv.OnTitleChanged(pw.SetTitle)
	a.containView(ctx, wv)
	wv.OnReadyToShow(pw.Show)
	// The login flow closes its window when done.
	wv.OnClose(pw.Close)
	pw.OnClose(func() {
		wv.Destroy()
		delete(a.popups, pw)
		log.Debug().Msg("popup closed")
	})

	log.Debug().Str("url", url).Msg("popup opened")
	return wv
}

var _ coordinator.PopupOpener = (*App)(nil)

func (a *App) showLoadError(err error) {
	t := a.table()
	a.prompt.Show(component.Prompt{
		Kind:  component.PromptError,
		Title: t.T(i18n.MsgLoadFailedTitle),
		Body:  err.Error(),
		Actions: []component.PromptAction{
			{Label: t.T(i18n.MsgDismiss)},
			{Label: t.T(i18n.MsgReload), Suggested: true, OnClick: func() { a.webView.Reload(a.ctx) }},
		},
	})
}

func (a *App) table() *i18n.Table {
	return i18n.Resolve(a.deps.PrefsUC.Current().Language)
}

func (a *App) scheduleGeometrySave(ctx context.Context, g entity.Geometry) {
	if a.geometryTimer != nil {
		a.geometryTimer.Stop()
	}
	a.geometryTimer = a.scheduler.AfterFunc(geometrySaveDelay, func() {
		a.deps.GeometryUC.Track(ctx, g)
	})
}

// closeMainWindow saves the placement and quits. Popups do not outlive the
// main window.
func (a *App) closeMainWindow(ctx context.Context) {
	if a.geometryTimer != nil {
		a.geometryTimer.Stop()
		a.geometryTimer = nil
	}
	a.deps.GeometryUC.Track(ctx, a.mainWindow.Geometry())

	for pw := range a.popups {
		pw.Close()
	}
	a.gtkApp.Quit()
}

// onShutdown is called when the GTK application is shutting down.
func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application shutting down")

	// Cancel context to signal all goroutines
	a.cancel(errors.New("application shutdown"))

	if a.badgeCoord != nil {
		a.badgeCoord.Stop()
	}
	if a.notifyCoord != nil {
		a.notifyCoord.Close()
	}
	a.coalescer.Destroy()

	a.deps.GeometryUC.Flush(ctx)

	if a.webView != nil {
		a.webView.Destroy()
	}
	for _, c := range []any{a.deps.Notifier, a.deps.Launcher} {
		if closer, ok := c.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close session bus client")
			}
		}
	}

	log.Info().Msg("application shutdown complete")
}

// initConfigWatcher pushes external edits of the preferences into the
// session. Changes arrive on the watcher goroutine.
func (a *App) initConfigWatcher(ctx context.Context) {
	log := logging.FromContext(ctx)

	manager := a.deps.ConfigManager
	if manager == nil {
		log.Debug().Msg("no config manager available, skipping watcher")
		return
	}

	if err := manager.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to start config watcher")
		return
	}

	manager.OnConfigChange(func(newCfg *config.Config) {
		prefs := config.PreferencesFromConfig(newCfg)
		mainloop.IdlePost(func() {
			log.Debug().Msg("preferences changed on disk")
			a.deps.PrefsUC.Replace(prefs)
		})
	})

	log.Debug().Msg("config watcher initialized")
}

// MainWindow returns the main window.
func (a *App) MainWindow() *window.MainWindow {
	return a.mainWindow
}

// Quit closes the main window, which saves state and quits.
func (a *App) Quit() {
	if a.mainWindow != nil && !a.mainWindow.IsDestroyed() {
		a.mainWindow.Close()
		return
	}
	if a.gtkApp != nil {
		a.gtkApp.Quit()
	}
}
