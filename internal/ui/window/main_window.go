// Package window provides GTK window implementations.
package window

import (
	"context"
	"sync/atomic"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/dumb-messenger/internal/domain/entity"
	"github.com/bnema/dumb-messenger/internal/logging"
)

const windowTitle = "Messenger"

// MainWindow is the single application window: a header bar with the badge
// indicator and the menu button, and an overlay holding the web view.
type MainWindow struct {
	window         *gtk.ApplicationWindow
	header         *gtk.HeaderBar
	contentOverlay *gtk.Overlay

	// Compositors such as Wayland hide the window position; the restored
	// one is echoed back so it survives a save.
	restoredX *int
	restoredY *int

	onGeometry func(entity.Geometry)
	onActive   func(bool)
	onClose    func()

	destroyed atomic.Bool
	logger    zerolog.Logger
}

// New creates the main window. The window is not shown until Show.
func New(ctx context.Context, app *gtk.Application) (*MainWindow, error) {
	log := logging.FromContext(ctx)

	mw := &MainWindow{
		logger: log.With().Str("component", "main-window").Logger(),
	}

	mw.window = gtk.NewApplicationWindow(app)
	if mw.window == nil {
		return nil, ErrWindowCreationFailed
	}
	mw.window.SetTitle(windowTitle)
	mw.window.SetDefaultSize(entity.DefaultWindowWidth, entity.DefaultWindowHeight)
	mw.window.SetSizeRequest(entity.MinWindowWidth, entity.MinWindowHeight)

	mw.header = gtk.NewHeaderBar()
	if mw.header == nil {
		mw.window.Destroy()
		return nil, ErrWidgetCreationFailed("header")
	}
	mw.window.SetTitlebar(mw.header)

	mw.contentOverlay = gtk.NewOverlay()
	if mw.contentOverlay == nil {
		mw.window.Destroy()
		return nil, ErrWidgetCreationFailed("contentOverlay")
	}
	mw.contentOverlay.SetHExpand(true)
	mw.contentOverlay.SetVExpand(true)
	mw.window.SetChild(mw.contentOverlay)

	mw.connectSignals()

	mw.logger.Debug().Msg("main window created")
	return mw, nil
}

func (mw *MainWindow) connectSignals() {
	emitGeometry := func() {
		if mw.destroyed.Load() || mw.onGeometry == nil {
			return
		}
		mw.onGeometry(mw.Geometry())
	}
	for _, prop := range []string{"default-width", "default-height", "maximized", "fullscreened"} {
		mw.window.NotifyProperty(prop, emitGeometry)
	}

	mw.window.NotifyProperty("is-active", func() {
		if mw.destroyed.Load() || mw.onActive == nil {
			return
		}
		mw.onActive(mw.window.IsActive())
	})

	mw.window.ConnectCloseRequest(func() bool {
		if mw.onClose != nil {
			mw.onClose()
		}
		// Let GTK destroy the window.
		return false
	})
}

// ApplyGeometry restores a stored placement. Must run before Show.
func (mw *MainWindow) ApplyGeometry(g entity.Geometry) {
	g = g.Normalized()
	mw.restoredX, mw.restoredY = g.X, g.Y
	mw.window.SetDefaultSize(g.Width, g.Height)
	if g.Maximized {
		mw.window.Maximize()
	}
	if g.Fullscreen {
		mw.window.Fullscreen()
	}
}

// Geometry returns the current placement.
func (mw *MainWindow) Geometry() entity.Geometry {
	width, height := mw.window.DefaultSize()
	return entity.Geometry{
		X:          mw.restoredX,
		Y:          mw.restoredY,
		Width:      width,
		Height:     height,
		Maximized:  mw.window.IsMaximized(),
		Fullscreen: mw.window.IsFullscreen(),
	}
}

// OnGeometryChanged registers fn for resize and state changes.
func (mw *MainWindow) OnGeometryChanged(fn func(entity.Geometry)) {
	mw.onGeometry = fn
}

// OnActiveChanged registers fn for focus changes of the toplevel.
func (mw *MainWindow) OnActiveChanged(fn func(active bool)) {
	mw.onActive = fn
}

// OnClose registers fn to run when the user closes the window.
func (mw *MainWindow) OnClose(fn func()) {
	mw.onClose = fn
}

// IsActive reports whether the window has input focus.
func (mw *MainWindow) IsActive() bool {
	if mw.destroyed.Load() {
		return false
	}
	return mw.window.IsActive()
}

// Window returns the underlying GTK window.
func (mw *MainWindow) Window() *gtk.ApplicationWindow {
	return mw.window
}

// SetContent places widget under every overlay.
func (mw *MainWindow) SetContent(widget gtk.Widgetter) {
	mw.contentOverlay.SetChild(widget)
}

// AddOverlay adds a widget on top of the content.
func (mw *MainWindow) AddOverlay(widget gtk.Widgetter) {
	if mw.contentOverlay != nil && widget != nil {
		mw.contentOverlay.AddOverlay(widget)
	}
}

// PackStart adds widget to the leading side of the header bar.
func (mw *MainWindow) PackStart(widget gtk.Widgetter) {
	mw.header.PackStart(widget)
}

// PackEnd adds widget to the trailing side of the header bar.
func (mw *MainWindow) PackEnd(widget gtk.Widgetter) {
	mw.header.PackEnd(widget)
}

// Show presents the window.
func (mw *MainWindow) Show() {
	if !mw.destroyed.Load() {
		mw.window.Present()
	}
}

// Present restores the window from the tray or another workspace and
// focuses it.
func (mw *MainWindow) Present() {
	if mw.destroyed.Load() {
		return
	}
	if mw.window.IsVisible() {
		mw.window.Present()
		return
	}
	mw.window.SetVisible(true)
	mw.window.Present()
}

// SetTitle updates the window title.
func (mw *MainWindow) SetTitle(title string) {
	if mw.destroyed.Load() {
		return
	}
	const maxTitleLen = 255
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}
	if title == "" {
		title = windowTitle
	}
	mw.window.SetTitle(title)
}

// Close requests the window to close, running the close handler.
func (mw *MainWindow) Close() {
	if !mw.destroyed.Load() {
		mw.window.Close()
	}
}

// IsDestroyed reports whether Destroy was called.
func (mw *MainWindow) IsDestroyed() bool {
	return mw.destroyed.Load()
}

// Destroy marks the window as gone and releases it.
func (mw *MainWindow) Destroy() {
	if !mw.destroyed.CompareAndSwap(false, true) {
		return
	}
	mw.onGeometry = nil
	mw.onActive = nil
	mw.onClose = nil
	mw.window.Destroy()
}

// WindowError represents a window-related error.
type WindowError struct {
	Message string
}

func (e WindowError) Error() string {
	return e.Message
}

// Error constants.
var (
	ErrWindowCreationFailed = WindowError{Message: "failed to create application window"}
)

// ErrWidgetCreationFailed creates an error for widget creation failure.
func ErrWidgetCreationFailed(name string) error {
	return WindowError{Message: "failed to create widget: " + name}
}
