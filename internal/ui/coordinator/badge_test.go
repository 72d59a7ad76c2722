package coordinator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumb-messenger/internal/application/usecase"
	"github.com/bnema/dumb-messenger/internal/infrastructure/webkit/bridge"
)

type badgeFixture struct {
	coord    *BadgeCoordinator
	view     *fakeBadgeView
	launcher *fakeLauncher
	window   *fakeWindow
	q        *queue
	sched    *manualScheduler
}

func newBadgeFixture() *badgeFixture {
	f := &badgeFixture{
		view:     &fakeBadgeView{},
		launcher: &fakeLauncher{},
		window:   &fakeWindow{},
		q:        &queue{},
		sched:    newManualScheduler(),
	}
	f.coord = NewBadgeCoordinator(BadgeCoordinatorDeps{
		Renderer:     stubRenderer{},
		View:         f.view,
		Launcher:     f.launcher,
		Window:       f.window,
		Post:         f.q.postKeyed,
		Scheduler:    f.sched,
		PollInterval: time.Second,
	})
	return f
}

func TestBadgeCoordinator_AppliesUpdateOnMainLoop(t *testing.T) {
	f := newBadgeFixture()
	ctx := context.Background()

	f.coord.OnTitleChanged(ctx, "(3) Messenger")
	assert.Empty(t, f.view.updates, "view must only change on the main loop")

	f.q.drain()
	require.Len(t, f.view.updates, 1)
	assert.Equal(t, 3, f.view.updates[0].Count)
	assert.Equal(t, "3", f.view.updates[0].Label)
	assert.Equal(t, []byte("png:3"), f.view.updates[0].Image)
	assert.Equal(t, []int{3}, f.launcher.counts)
}

func TestBadgeCoordinator_SameCountFromSeveralSourcesDeliversOnce(t *testing.T) {
	f := newBadgeFixture()
	ctx := context.Background()

	f.coord.Observe(ctx, usecase.BadgeSourcePageObserver, "(2) Messenger")
	f.coord.Observe(ctx, usecase.BadgeSourcePagePoll, "(2) Messenger")
	f.coord.OnTitleChanged(ctx, "(2) Messenger")
	f.q.drain()

	assert.Len(t, f.view.updates, 1)
	assert.Equal(t, []int{2}, f.launcher.counts)
}

func TestBadgeCoordinator_ClearsBadge(t *testing.T) {
	f := newBadgeFixture()
	ctx := context.Background()

	f.coord.OnTitleChanged(ctx, "(1) Messenger")
	f.coord.OnTitleChanged(ctx, "Messenger")
	f.q.drain()

	require.Len(t, f.view.updates, 2)
	assert.True(t, f.view.updates[1].IsClear())
	assert.Equal(t, []int{1, 0}, f.launcher.counts)
}

func TestBadgeCoordinator_DestroyedWindowIsNoOp(t *testing.T) {
	f := newBadgeFixture()
	f.window.destroyed = true

	f.coord.OnTitleChanged(context.Background(), "(5) Messenger")
	f.q.drain()

	assert.Empty(t, f.view.updates)
}

func TestBadgeCoordinator_TitleMessageHandler(t *testing.T) {
	f := newBadgeFixture()
	router := bridge.NewRouter(context.Background())
	require.NoError(t, router.Register("title", f.coord.TitleMessageHandler()))

	ok := router.Dispatch(`{"type":"title","payload":{"title":"(12) Messenger","source":"page-poll"}}`)
	require.True(t, ok)
	f.q.drain()

	require.Len(t, f.view.updates, 1)
	assert.Equal(t, 12, f.view.updates[0].Count)
}

func TestBadgeCoordinator_HostPoll(t *testing.T) {
	f := newBadgeFixture()
	ctx := context.Background()
	src := &fakeTitle{title: "Messenger"}

	f.coord.StartPolling(ctx, src)
	f.sched.Advance(time.Second)
	f.q.drain()
	require.Len(t, f.view.updates, 1, "first observation is always delivered")
	assert.True(t, f.view.updates[0].IsClear())

	src.title = "(100) Messenger"
	f.sched.Advance(time.Second)
	f.q.drain()
	require.Len(t, f.view.updates, 2)
	assert.Equal(t, "99+", f.view.updates[1].Label)

	f.coord.Stop()
	src.title = "(4) Messenger"
	f.sched.Advance(5 * time.Second)
	f.q.drain()
	assert.Len(t, f.view.updates, 2, "no polling after Stop")
}
