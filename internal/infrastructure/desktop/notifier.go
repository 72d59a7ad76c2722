// Package desktop integrates with the freedesktop session: notifications,
// launcher badges and the desktop entry.
package desktop

import (
	"context"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
	"github.com/bnema/dumb-messenger/internal/logging"
)

const (
	notifyDest      = "org.freedesktop.Notifications"
	notifyPath      = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyInterface = "org.freedesktop.Notifications"

	// defaultAction is invoked when the notification body is clicked.
	defaultAction = "default"

	// expireDefault lets the server pick the timeout.
	expireDefault = int32(-1)

	// replyTimeout bounds how long a reply from the notification server is
	// awaited.
	replyTimeout = 10 * time.Second
)

// notifyCaller is the part of dbus.BusObject used to send notifications.
type notifyCaller interface {
	GoWithContext(ctx context.Context, method string, flags dbus.Flags, ch chan *dbus.Call, args ...interface{}) *dbus.Call
}

// Notifier implements port.DesktopNotifier with org.freedesktop.Notifications.
// Show never waits for the notification server. Activation callbacks run on
// the D-Bus signal goroutine; callers marshal them onto their own loop.
type Notifier struct {
	conn    *dbus.Conn
	obj     notifyCaller
	appName string

	mu       sync.Mutex
	pending  map[uint32]func()
	signals  chan *dbus.Signal
	done     chan struct{}
	inflight sync.WaitGroup
}

var _ port.DesktopNotifier = (*Notifier)(nil)

// NewNotifier connects to the session bus. Without a bus the notifier still
// works but drops every notification.
func NewNotifier(ctx context.Context, appName string) *Notifier {
	log := logging.FromContext(ctx)
	n := &Notifier{
		appName: appName,
		pending: make(map[uint32]func()),
		done:    make(chan struct{}),
	}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Debug().Err(err).Msg("notifier: cannot connect to D-Bus session bus")
		return n
	}

	if err := conn.AddMatchSignal(
		dbus.WithMatchInterface(notifyInterface),
		dbus.WithMatchObjectPath(notifyPath),
	); err != nil {
		log.Debug().Err(err).Msg("notifier: failed to subscribe to notification signals")
	}

	n.conn = conn
	n.obj = conn.Object(notifyDest, notifyPath)
	n.signals = make(chan *dbus.Signal, 16)
	conn.Signal(n.signals)
	go n.watch(ctx)

	return n
}

// Show sends a notification and returns without waiting for the reply.
// onActivate, when non-nil, runs once if the user clicks it. Delivery
// failures are logged.
func (n *Notifier) Show(ctx context.Context, note entity.Notification, onActivate func()) error {
	if n.obj == nil {
		return nil
	}

	var actions []string
	if onActivate != nil {
		actions = []string{defaultAction, note.Title}
	}
	hints := map[string]dbus.Variant{
		"desktop-entry": dbus.MakeVariant(desktopEntryID),
		"urgency":       dbus.MakeVariant(byte(1)),
	}

	callCtx, cancel := context.WithTimeout(ctx, replyTimeout)
	replies := make(chan *dbus.Call, 1)
	n.obj.GoWithContext(callCtx, notifyInterface+".Notify", 0, replies,
		n.appName,
		uint32(0), // replaces_id
		note.Icon,
		note.Title,
		note.Body,
		actions,
		hints,
		expireDefault,
	)

	n.inflight.Add(1)
	go func() {
		defer n.inflight.Done()
		defer cancel()
		n.awaitReply(ctx, replies, onActivate)
	}()
	return nil
}

// awaitReply records the activation callback under the id the server
// assigned.
func (n *Notifier) awaitReply(ctx context.Context, replies <-chan *dbus.Call, onActivate func()) {
	log := logging.FromContext(ctx)

	var call *dbus.Call
	select {
	case call = <-replies:
	case <-n.done:
		return
	}

	var id uint32
	err := call.Err
	if err == nil {
		err = call.Store(&id)
	}
	if err != nil {
		log.Warn().Err(err).Msg("notify: notification server did not accept the notification")
		return
	}

	if onActivate != nil {
		n.mu.Lock()
		n.pending[id] = onActivate
		n.mu.Unlock()
	}
	log.Debug().Uint32("id", id).Msg("notification shown")
}

func (n *Notifier) watch(ctx context.Context) {
	for {
		select {
		case sig, ok := <-n.signals:
			if !ok || sig == nil {
				return
			}
			n.handleSignal(sig)
		case <-n.done:
			return
		}
	}
}

// handleSignal runs the callback of a clicked notification and forgets
// closed ones.
func (n *Notifier) handleSignal(sig *dbus.Signal) {
	if len(sig.Body) < 1 {
		return
	}
	id, ok := sig.Body[0].(uint32)
	if !ok {
		return
	}

	switch sig.Name {
	case notifyInterface + ".ActionInvoked":
		if len(sig.Body) < 2 {
			return
		}
		if action, _ := sig.Body[1].(string); action != defaultAction {
			return
		}
		n.mu.Lock()
		fn := n.pending[id]
		delete(n.pending, id)
		n.mu.Unlock()
		if fn != nil {
			fn()
		}
	case notifyInterface + ".NotificationClosed":
		n.mu.Lock()
		delete(n.pending, id)
		n.mu.Unlock()
	}
}

// Close stops the signal watcher and releases the bus connection.
func (n *Notifier) Close() error {
	select {
	case <-n.done:
		return nil
	default:
		close(n.done)
	}
	n.inflight.Wait()
	if n.conn == nil {
		return nil
	}
	n.conn.RemoveSignal(n.signals)
	return n.conn.Close()
}
