package desktop

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/dumb-messenger/internal/logging"
)

const (
	launcherInterface = "com.canonical.Unity.LauncherEntry"
	launcherPath      = dbus.ObjectPath("/com/github/bnema/dumbmessenger/launcher")
)

// signalEmitter is the part of dbus.Conn used by LauncherEntry.
type signalEmitter interface {
	Emit(path dbus.ObjectPath, name string, values ...interface{}) error
}

// LauncherEntry publishes the unread count and urgency of the application
// to docks and panels implementing the Unity launcher API (KDE, Dash to
// Dock, Plank).
type LauncherEntry struct {
	conn   *dbus.Conn
	bus    signalEmitter
	appURI string

	mu     sync.Mutex
	count  int
	urgent bool
}

// NewLauncherEntry connects to the session bus. Without a bus every update
// is a no-op.
func NewLauncherEntry(ctx context.Context) *LauncherEntry {
	l := &LauncherEntry{appURI: "application://" + desktopEntryID + ".desktop"}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("launcher entry: no session bus")
		return l
	}
	l.conn = conn
	l.bus = conn
	return l
}

// SetCount shows count on the launcher icon, or hides it when count <= 0.
func (l *LauncherEntry) SetCount(ctx context.Context, count int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.count = max(count, 0)
	return l.emitLocked(ctx)
}

// SetUrgent toggles the launcher attention hint.
func (l *LauncherEntry) SetUrgent(ctx context.Context, urgent bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.urgent == urgent {
		return nil
	}
	l.urgent = urgent
	return l.emitLocked(ctx)
}

func (l *LauncherEntry) emitLocked(ctx context.Context) error {
	if l.bus == nil {
		return nil
	}
	props := map[string]dbus.Variant{
		"count":         dbus.MakeVariant(int64(l.count)),
		"count-visible": dbus.MakeVariant(l.count > 0),
		"urgent":        dbus.MakeVariant(l.urgent),
	}
	if err := l.bus.Emit(launcherPath, launcherInterface+".Update", l.appURI, props); err != nil {
		return fmt.Errorf("launcher entry update: %w", err)
	}
	logging.FromContext(ctx).Debug().
		Int("count", l.count).
		Bool("urgent", l.urgent).
		Msg("launcher entry updated")
	return nil
}

// Close releases the bus connection.
func (l *LauncherEntry) Close() error {
	if l.conn == nil {
		return nil
	}
	return l.conn.Close()
}
