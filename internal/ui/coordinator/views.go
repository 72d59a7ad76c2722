// Package coordinator connects the use cases to the window. Coordinators
// talk to widgets through the narrow interfaces below and post every widget
// update to the GTK main loop.
package coordinator

import (
	"context"

	"github.com/bnema/dumb-messenger/internal/application/usecase"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
)

// PostFunc schedules fn on the GTK main loop.
type PostFunc func(fn func())

// BadgeView displays the unread badge in the window.
type BadgeView interface {
	Apply(ctx context.Context, update entity.BadgeUpdate)
}

// LauncherBadge mirrors the unread count and attention state on the
// desktop launcher.
type LauncherBadge interface {
	SetCount(ctx context.Context, count int) error
	SetUrgent(ctx context.Context, urgent bool) error
}

// TitleSource returns the current page title.
type TitleSource interface {
	Title() string
}

// WindowHandle is the part of the main window the coordinators need.
type WindowHandle interface {
	Present()
	IsActive() bool
	IsDestroyed() bool
}

// PageLoader loads a URL in the main web view.
type PageLoader interface {
	LoadURL(url string) error
}

// PageView is a web view that can open popups.
type PageView interface {
	URI() string
}

// PopupOpener hosts a login popup. The popup's view must be created from
// opener so the page keeps its window.opener handle. It returns nil when no
// popup could be created.
type PopupOpener interface {
	OpenPopup(ctx context.Context, opener PageView, url string) PageView
}

// UpdatePresenter shows the outcome of update checks.
type UpdatePresenter interface {
	ShowUpdateAvailable(ctx context.Context, out *usecase.CheckUpdateOutput, onDownload, onLater func())
	ShowUpToDate(ctx context.Context, out *usecase.CheckUpdateOutput)
	ShowUpdateError(ctx context.Context, err error)
}

// MenuView renders the application menu.
type MenuView interface {
	Render(model entity.MenuModel)
}
