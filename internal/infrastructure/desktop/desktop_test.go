package desktop

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumb-messenger/internal/domain/entity"
)

type fakeCaller struct {
	method string
	args   []interface{}
	id     uint32
	err    error
	// release, when set, holds the reply back until closed.
	release chan struct{}
}

func (f *fakeCaller) GoWithContext(_ context.Context, method string, _ dbus.Flags, ch chan *dbus.Call, args ...interface{}) *dbus.Call {
	f.method = method
	f.args = args
	call := &dbus.Call{Method: method, Args: args, Err: f.err, Body: []interface{}{f.id}, Done: ch}
	if f.release == nil {
		ch <- call
		return call
	}
	go func() {
		<-f.release
		ch <- call
	}()
	return call
}

func newTestNotifier(obj notifyCaller) *Notifier {
	return &Notifier{
		obj:     obj,
		appName: "Dumb Messenger",
		pending: make(map[uint32]func()),
		done:    make(chan struct{}),
	}
}

// show sends a notification and waits until its reply was handled.
func show(t *testing.T, n *Notifier, note entity.Notification, onActivate func()) {
	t.Helper()
	require.NoError(t, n.Show(context.Background(), note, onActivate))
	n.inflight.Wait()
}

func TestNotifier_ShowSendsNotify(t *testing.T) {
	caller := &fakeCaller{id: 42}
	n := newTestNotifier(caller)

	show(t, n, entity.Notification{Title: "New message", Body: "Alice", Icon: "icon"}, func() {})

	assert.Equal(t, "org.freedesktop.Notifications.Notify", caller.method)
	require.Len(t, caller.args, 8)
	assert.Equal(t, "Dumb Messenger", caller.args[0])
	assert.Equal(t, "New message", caller.args[3])
	assert.Equal(t, "Alice", caller.args[4])
	assert.Equal(t, []string{"default", "New message"}, caller.args[5])
	assert.Contains(t, n.pending, uint32(42))
}

func TestNotifier_ShowReturnsBeforeServerReplies(t *testing.T) {
	caller := &fakeCaller{id: 5, release: make(chan struct{})}
	n := newTestNotifier(caller)

	returned := make(chan struct{})
	go func() {
		_ = n.Show(context.Background(), entity.Notification{Title: "t"}, func() {})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Show blocked on the notification server")
	}

	n.mu.Lock()
	assert.Empty(t, n.pending, "no id is known before the reply")
	n.mu.Unlock()

	close(caller.release)
	n.inflight.Wait()
	assert.Contains(t, n.pending, uint32(5))
}

func TestNotifier_CloseAbandonsPendingReply(t *testing.T) {
	caller := &fakeCaller{id: 6, release: make(chan struct{})}
	n := newTestNotifier(caller)
	defer close(caller.release)

	require.NoError(t, n.Show(context.Background(), entity.Notification{Title: "t"}, func() {}))
	require.NoError(t, n.Close())

	assert.Empty(t, n.pending)
}

func TestNotifier_ShowWithoutCallbackHasNoActions(t *testing.T) {
	caller := &fakeCaller{id: 1}
	n := newTestNotifier(caller)

	show(t, n, entity.Notification{Title: "t"}, nil)

	assert.Nil(t, caller.args[5])
	assert.Empty(t, n.pending)
}

func TestNotifier_ShowErrorIsNotFatal(t *testing.T) {
	n := newTestNotifier(&fakeCaller{err: assert.AnError})

	show(t, n, entity.Notification{Title: "t"}, func() {})

	assert.Empty(t, n.pending)
}

func TestNotifier_WithoutBusIsNoop(t *testing.T) {
	n := newTestNotifier(nil)

	assert.NoError(t, n.Show(context.Background(), entity.Notification{Title: "t"}, func() {}))
}

func TestNotifier_ActionInvokedRunsCallbackOnce(t *testing.T) {
	n := newTestNotifier(&fakeCaller{id: 7})
	calls := 0
	show(t, n, entity.Notification{Title: "t"}, func() { calls++ })

	sig := &dbus.Signal{Name: notifyInterface + ".ActionInvoked", Body: []interface{}{uint32(7), "default"}}
	n.handleSignal(sig)
	n.handleSignal(sig)

	assert.Equal(t, 1, calls)
}

func TestNotifier_OtherActionIgnored(t *testing.T) {
	n := newTestNotifier(&fakeCaller{id: 7})
	calls := 0
	show(t, n, entity.Notification{Title: "t"}, func() { calls++ })

	n.handleSignal(&dbus.Signal{Name: notifyInterface + ".ActionInvoked", Body: []interface{}{uint32(7), "reply"}})

	assert.Zero(t, calls)
	assert.Contains(t, n.pending, uint32(7))
}

func TestNotifier_ClosedForgetsCallback(t *testing.T) {
	n := newTestNotifier(&fakeCaller{id: 9})
	show(t, n, entity.Notification{Title: "t"}, func() {})

	n.handleSignal(&dbus.Signal{Name: notifyInterface + ".NotificationClosed", Body: []interface{}{uint32(9), uint32(2)}})

	assert.Empty(t, n.pending)
}

type fakeEmitter struct {
	mu    sync.Mutex
	calls []map[string]dbus.Variant
	uris  []string
}

func (f *fakeEmitter) Emit(_ dbus.ObjectPath, name string, values ...interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if name != launcherInterface+".Update" {
		return nil
	}
	f.uris = append(f.uris, values[0].(string))
	f.calls = append(f.calls, values[1].(map[string]dbus.Variant))
	return nil
}

func TestLauncherEntry_SetCount(t *testing.T) {
	bus := &fakeEmitter{}
	l := &LauncherEntry{bus: bus, appURI: "application://x.desktop"}

	require.NoError(t, l.SetCount(context.Background(), 3))
	require.NoError(t, l.SetCount(context.Background(), 0))

	require.Len(t, bus.calls, 2)
	assert.Equal(t, int64(3), bus.calls[0]["count"].Value())
	assert.Equal(t, true, bus.calls[0]["count-visible"].Value())
	assert.Equal(t, false, bus.calls[1]["count-visible"].Value())
	assert.Equal(t, "application://x.desktop", bus.uris[0])
}

func TestLauncherEntry_SetUrgentSkipsUnchanged(t *testing.T) {
	bus := &fakeEmitter{}
	l := &LauncherEntry{bus: bus}

	require.NoError(t, l.SetUrgent(context.Background(), true))
	require.NoError(t, l.SetUrgent(context.Background(), true))
	require.NoError(t, l.SetUrgent(context.Background(), false))

	require.Len(t, bus.calls, 2)
	assert.Equal(t, true, bus.calls[0]["urgent"].Value())
	assert.Equal(t, false, bus.calls[1]["urgent"].Value())
}

func TestLauncherEntry_WithoutBus(t *testing.T) {
	l := &LauncherEntry{}
	assert.NoError(t, l.SetCount(context.Background(), 5))
	assert.NoError(t, l.Close())
}

func TestEntryInstaller_InstallAndRemove(t *testing.T) {
	ctx := context.Background()
	inst := &EntryInstaller{
		dataHome:   t.TempDir(),
		executable: func() (string, error) { return "/usr/bin/dumb-messenger", nil },
	}

	status, err := inst.Install(ctx, []byte("<svg/>"))
	require.NoError(t, err)
	assert.True(t, status.DesktopFileInstalled)
	assert.True(t, status.IconInstalled)
	assert.Equal(t, filepath.Join(inst.dataHome, "applications", "com.github.bnema.dumbmessenger.desktop"), status.DesktopFilePath)

	data, err := os.ReadFile(status.DesktopFilePath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "Exec=/usr/bin/dumb-messenger\n"))
	assert.Contains(t, string(data), "StartupWMClass=com.github.bnema.dumbmessenger")

	require.NoError(t, inst.Remove(ctx))
	after := inst.Status(ctx)
	assert.False(t, after.DesktopFileInstalled)
	assert.False(t, after.IconInstalled)

	// Removing twice is fine.
	require.NoError(t, inst.Remove(ctx))
}
