package coordinator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumb-messenger/internal/application/port/mocks"
	"github.com/bnema/dumb-messenger/internal/application/usecase"
)

type navigationFixture struct {
	c      *NavigationCoordinator
	opener *mocks.MockExternalOpener
	loader *fakeLoader
	window *fakeWindow
	popups *fakePopups
	q      *queue
}

func newNavigationFixture(t *testing.T) *navigationFixture {
	t.Helper()
	f := &navigationFixture{
		opener: mocks.NewMockExternalOpener(t),
		loader: &fakeLoader{},
		window: &fakeWindow{},
		popups: &fakePopups{},
		q:      &queue{},
	}
	f.c = NewNavigationCoordinator(NavigationCoordinatorDeps{
		ContainUC: usecase.NewContainNavigationUseCase(f.opener),
		Main:      f.loader,
		Window:    f.window,
		Popups:    f.popups,
		Post:      f.q.post,
	})
	return f
}

func TestNavigationCoordinator_AllowsAppNavigation(t *testing.T) {
	f := newNavigationFixture(t)

	assert.True(t, f.c.HandleNavigation(context.Background(), "https://www.messenger.com/t/123", false))
	assert.Equal(t, 0, f.q.drain())
	assert.Empty(t, f.loader.loaded)
	assert.Empty(t, f.popups.opened)
}

func TestNavigationCoordinator_RedirectsAppNewWindowToMain(t *testing.T) {
	f := newNavigationFixture(t)

	assert.False(t, f.c.HandleNavigation(context.Background(), "https://www.messenger.com/t/123", true))
	assert.Zero(t, f.window.presented, "present must wait for the main loop")

	f.q.drain()
	assert.Equal(t, []string{"https://www.messenger.com/t/123"}, f.loader.loaded)
	assert.Equal(t, 1, f.window.presented)
	assert.Empty(t, f.popups.opened)
}

func TestNavigationCoordinator_RedirectSkipsDestroyedWindow(t *testing.T) {
	f := newNavigationFixture(t)
	f.window.destroyed = true

	f.c.HandleNavigation(context.Background(), "https://www.messenger.com/t/123", true)
	f.q.drain()

	assert.Zero(t, f.window.presented)
}

func TestNavigationCoordinator_LetsLoginPopupProceed(t *testing.T) {
	f := newNavigationFixture(t)

	url := "https://www.facebook.com/login/device-based/regular/login/"
	assert.True(t, f.c.HandleNavigation(context.Background(), url, true))
	assert.Equal(t, 0, f.q.drain())
	assert.Empty(t, f.popups.opened, "the window is built when the page asks for it")
	assert.Empty(t, f.loader.loaded)
}

func TestNavigationCoordinator_CreatesLoginPopupFromRequestingView(t *testing.T) {
	f := newNavigationFixture(t)
	main := &fakePage{uri: "https://www.messenger.com/"}

	url := "https://www.facebook.com/v18.0/dialog/oauth?client_id=1"
	popup := f.c.HandleCreate(context.Background(), main, url)

	require.NotNil(t, popup)
	require.Len(t, f.popups.openers, 1)
	assert.Same(t, main, f.popups.openers[0])
	assert.Equal(t, []string{url}, f.popups.opened)
	assert.Same(t, f.popups.views[0], popup)
}

func TestNavigationCoordinator_BlankPopupKeepsOpener(t *testing.T) {
	f := newNavigationFixture(t)
	main := &fakePage{uri: "https://www.messenger.com/"}

	popup := f.c.HandleCreate(context.Background(), main, "")
	require.NotNil(t, popup)
	assert.Same(t, main, f.popups.openers[0])

	// The popup can itself open a nested login window.
	nested := f.c.HandleCreate(context.Background(), popup, "https://m.facebook.com/checkpoint/")
	require.NotNil(t, nested)
	assert.Same(t, popup, f.popups.openers[1])
}

func TestNavigationCoordinator_CreateRefusesOtherTargets(t *testing.T) {
	f := newNavigationFixture(t)
	main := &fakePage{uri: "https://www.messenger.com/"}
	ctx := context.Background()

	f.opener.EXPECT().OpenURL(ctx, "https://example.com/").Return(nil).Once()

	assert.Nil(t, f.c.HandleCreate(ctx, main, "https://example.com/"))
	assert.Nil(t, f.c.HandleCreate(ctx, main, "https://www.messenger.com/t/9"))
	f.q.drain()

	assert.Empty(t, f.popups.opened)
	assert.Equal(t, []string{"https://www.messenger.com/t/9"}, f.loader.loaded)
	assert.Equal(t, 1, f.window.presented)
}

func TestNavigationCoordinator_HandsExternalLinksToBrowser(t *testing.T) {
	f := newNavigationFixture(t)

	url := "https://example.com/article"
	f.opener.EXPECT().OpenURL(context.Background(), url).Return(nil).Once()

	assert.False(t, f.c.HandleNavigation(context.Background(), url, false))
	f.q.drain()
	assert.Empty(t, f.loader.loaded)
	assert.Empty(t, f.popups.opened)
}

func TestNavigationCoordinator_StopsScriptRedirectOffSite(t *testing.T) {
	f := newNavigationFixture(t)
	ctx := context.Background()

	// location.assign() and HTTP redirects reach the coordinator as plain
	// in-place navigations once their main-frame load starts.
	f.opener.EXPECT().OpenURL(ctx, "https://evil.example/landing").Return(nil).Once()

	assert.False(t, f.c.HandleNavigation(ctx, "https://evil.example/landing", false))
	assert.True(t, f.c.HandleNavigation(ctx, "https://www.messenger.com/t/5", false))
	f.q.drain()
	assert.Empty(t, f.loader.loaded)
	assert.Zero(t, f.window.presented)
}

func TestNavigationCoordinator_DeniesScriptURLs(t *testing.T) {
	f := newNavigationFixture(t)

	assert.False(t, f.c.HandleNavigation(context.Background(), "javascript:alert(1)", true))
	assert.Nil(t, f.c.HandleCreate(context.Background(), &fakePage{}, "javascript:alert(1)"))
	f.q.drain()
	assert.Empty(t, f.loader.loaded)
	assert.Empty(t, f.popups.opened)
}
