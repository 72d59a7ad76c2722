package coordinator

import (
	"context"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/application/usecase"
	"github.com/bnema/dumb-messenger/internal/domain/i18n"
	"github.com/bnema/dumb-messenger/internal/logging"
)

// NotificationCoordinator turns title changes into desktop notifications
// and drives the window attention state.
type NotificationCoordinator struct {
	notifier *usecase.TitleNotifier
	window   WindowHandle
	launcher LauncherBadge
	post     PostFunc
}

// NotificationCoordinatorDeps holds the collaborators of the notification
// coordinator.
type NotificationCoordinatorDeps struct {
	Notifier  port.DesktopNotifier
	Window    WindowHandle
	Launcher  LauncherBadge
	Post      PostFunc
	Scheduler port.Scheduler
	Config    usecase.TitleNotifierConfig
	// Enabled reports the notifications preference at event time.
	Enabled func() bool
}

// NewNotificationCoordinator creates the coordinator.
func NewNotificationCoordinator(deps NotificationCoordinatorDeps) *NotificationCoordinator {
	c := &NotificationCoordinator{
		window:   deps.Window,
		launcher: deps.Launcher,
		post:     deps.Post,
	}
	c.notifier = usecase.NewTitleNotifier(deps.Notifier, c, deps.Scheduler, deps.Config, deps.Enabled)
	return c
}

var _ port.WindowAttention = (*NotificationCoordinator)(nil)

// OnTitleChanged handles a page title change. Must run on the main loop.
func (c *NotificationCoordinator) OnTitleChanged(ctx context.Context, title string) {
	if c.window.IsDestroyed() {
		return
	}
	c.notifier.OnTitleChanged(ctx, title, c.window.IsActive())
}

// OnActiveChanged handles focus changes of the main window.
func (c *NotificationCoordinator) OnActiveChanged(ctx context.Context, active bool) {
	if active {
		c.notifier.OnFocusGained(ctx)
	}
}

// SetLanguage relocalizes the heading of later notifications.
func (c *NotificationCoordinator) SetLanguage(table *i18n.Table) {
	if table != nil {
		c.notifier.SetSummary(table.T(i18n.MsgNewMessage))
	}
}

// RequestAttention highlights the launcher entry.
func (c *NotificationCoordinator) RequestAttention(ctx context.Context) {
	c.setUrgent(ctx, true)
}

// ClearAttention removes the launcher highlight.
func (c *NotificationCoordinator) ClearAttention(ctx context.Context) {
	c.setUrgent(ctx, false)
}

// Present brings the main window forward. Notification clicks arrive on
// the session bus goroutine.
func (c *NotificationCoordinator) Present(ctx context.Context) {
	logging.FromContext(ctx).Debug().Msg("notification activated, presenting window")
	c.post(func() {
		if !c.window.IsDestroyed() {
			c.window.Present()
		}
	})
}

// Close cancels any deferred notification.
func (c *NotificationCoordinator) Close() {
	c.notifier.Close()
}

func (c *NotificationCoordinator) setUrgent(ctx context.Context, urgent bool) {
	if c.launcher == nil {
		return
	}
	if err := c.launcher.SetUrgent(ctx, urgent); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Bool("urgent", urgent).Msg("failed to update launcher urgency")
	}
}
