package port

import (
	"context"

	"github.com/bnema/dumb-messenger/internal/domain/entity"
)

// DesktopNotifier raises notifications through the desktop's notification
// service.
type DesktopNotifier interface {
	// Show displays n. onActivate is invoked when the user clicks the
	// notification; it may be called from any goroutine.
	Show(ctx context.Context, n entity.Notification, onActivate func()) error
}

// WindowAttention toggles the attention indicator of the main window
// (urgency hint, launcher highlight).
type WindowAttention interface {
	RequestAttention(ctx context.Context)
	ClearAttention(ctx context.Context)
	// Present restores and focuses the window.
	Present(ctx context.Context)
}
