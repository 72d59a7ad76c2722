package window

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

const (
	popupWidth  = 520
	popupHeight = 680
)

// PopupWindow hosts a login popup opened by the page. It is transient for
// the main window and returns focus to it when closed.
type PopupWindow struct {
	window  *gtk.Window
	parent  *MainWindow
	onClose func()
	closed  bool
}

// NewPopupWindow creates a popup showing content.
func NewPopupWindow(parent *MainWindow, content gtk.Widgetter) (*PopupWindow, error) {
	win := gtk.NewWindow()
	if win == nil {
		return nil, ErrWidgetCreationFailed("popup")
	}

	pw := &PopupWindow{window: win, parent: parent}
	if parent != nil && !parent.IsDestroyed() {
		win.SetTransientFor(&parent.Window().Window)
		win.SetApplication(parent.Window().Application())
	}
	win.SetDefaultSize(popupWidth, popupHeight)
	win.SetTitle(windowTitle)
	win.SetChild(content)

	win.ConnectCloseRequest(func() bool {
		pw.finish()
		return false
	})
	return pw, nil
}

// OnClose registers fn to run once the popup is gone.
func (pw *PopupWindow) OnClose(fn func()) {
	pw.onClose = fn
}

// SetTitle mirrors the page title.
func (pw *PopupWindow) SetTitle(title string) {
	if !pw.closed && title != "" {
		pw.window.SetTitle(title)
	}
}

// Show presents the popup.
func (pw *PopupWindow) Show() {
	if !pw.closed {
		pw.window.Present()
	}
}

// Close closes the popup, for example after the page called window.close().
func (pw *PopupWindow) Close() {
	if pw.closed {
		return
	}
	pw.finish()
	pw.window.Destroy()
}

func (pw *PopupWindow) finish() {
	if pw.closed {
		return
	}
	pw.closed = true
	if pw.onClose != nil {
		pw.onClose()
	}
	if pw.parent != nil {
		pw.parent.Present()
	}
}
