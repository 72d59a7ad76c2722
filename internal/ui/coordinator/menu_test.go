package coordinator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumb-messenger/internal/application/port/mocks"
	"github.com/bnema/dumb-messenger/internal/application/usecase"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
	"github.com/bnema/dumb-messenger/internal/domain/i18n"
)

func newMenuFixture(t *testing.T) (*MenuCoordinator, *fakeMenuView, *mocks.MockPageCommander, *mocks.MockPreferencesStore, *queue) {
	t.Helper()
	store := mocks.NewMockPreferencesStore(t)
	store.EXPECT().LoadPreferences(mock.Anything).Return(entity.Preferences{
		Language:        "en",
		AutoUpdateCheck: true,
		Notifications:   true,
	}, nil).Once()

	prefs := usecase.NewManagePreferencesUseCase(context.Background(), store)
	view := &fakeMenuView{}
	page := mocks.NewMockPageCommander(t)
	q := &queue{}

	c := NewMenuCoordinator(MenuCoordinatorDeps{
		Prefs: prefs,
		View:  view,
		Page:  page,
	})
	c.Attach(q.post)
	return c, view, page, store, q
}

func checked(m entity.MenuModel, action entity.MenuAction, value string) bool {
	it, ok := m.Find(action, value)
	return ok && it.Checked
}

func TestMenuCoordinator_RendersOnAttach(t *testing.T) {
	_, view, _, _, _ := newMenuFixture(t)

	require.Len(t, view.models, 1)
	assert.True(t, checked(view.models[0], entity.MenuToggleNotifications, ""))
	assert.True(t, checked(view.models[0], entity.MenuSetLanguage, "en"))
}

func TestMenuCoordinator_ToggleRebuildsMenu(t *testing.T) {
	c, view, _, store, q := newMenuFixture(t)
	ctx := context.Background()

	store.EXPECT().SavePreferences(mock.Anything, mock.MatchedBy(func(p entity.Preferences) bool {
		return !p.Notifications
	})).Return(nil).Once()

	c.Dispatch(ctx, entity.MenuToggleNotifications, "")
	q.drain()

	require.Len(t, view.models, 2)
	assert.False(t, checked(view.models[1], entity.MenuToggleNotifications, ""))
}

func TestMenuCoordinator_LanguageChangeRelocalizes(t *testing.T) {
	store := mocks.NewMockPreferencesStore(t)
	store.EXPECT().LoadPreferences(mock.Anything).Return(entity.DefaultPreferences(), nil).Once()
	store.EXPECT().SavePreferences(mock.Anything, mock.Anything).Return(nil).Once()

	prefs := usecase.NewManagePreferencesUseCase(context.Background(), store)
	view := &fakeMenuView{}
	q := &queue{}

	var got *i18n.Table
	c := NewMenuCoordinator(MenuCoordinatorDeps{
		Prefs:      prefs,
		View:       view,
		Page:       mocks.NewMockPageCommander(t),
		OnLanguage: func(tbl *i18n.Table) { got = tbl },
	})
	c.Attach(q.post)

	c.Dispatch(context.Background(), entity.MenuSetLanguage, "fr")
	q.drain()

	require.NotNil(t, got)
	assert.Equal(t, "fr", got.Tag.String())
	assert.Equal(t, "fr", prefs.Current().Language)
	assert.True(t, checked(view.models[len(view.models)-1], entity.MenuSetLanguage, "fr"))
}

func TestMenuCoordinator_PageCommands(t *testing.T) {
	c, _, page, _, _ := newMenuFixture(t)
	ctx := context.Background()

	page.EXPECT().Reload(ctx).Once()
	page.EXPECT().SelectAll(ctx).Once()

	c.Dispatch(ctx, entity.MenuReload, "")
	c.Dispatch(ctx, entity.MenuSelectAll, "")
}

func TestMenuCoordinator_Callbacks(t *testing.T) {
	store := mocks.NewMockPreferencesStore(t)
	store.EXPECT().LoadPreferences(mock.Anything).Return(entity.DefaultPreferences(), nil).Once()
	prefs := usecase.NewManagePreferencesUseCase(context.Background(), store)

	var checks, abouts, quits int
	c := NewMenuCoordinator(MenuCoordinatorDeps{
		Prefs:          prefs,
		View:           &fakeMenuView{},
		Page:           mocks.NewMockPageCommander(t),
		OnCheckUpdates: func(context.Context) { checks++ },
		OnAbout:        func() { abouts++ },
		OnQuit:         func() { quits++ },
	})

	ctx := context.Background()
	c.Dispatch(ctx, entity.MenuCheckUpdates, "")
	c.Dispatch(ctx, entity.MenuAbout, "")
	c.Dispatch(ctx, entity.MenuQuit, "")
	c.Dispatch(ctx, entity.MenuAction("bogus"), "")

	assert.Equal(t, 1, checks)
	assert.Equal(t, 1, abouts)
	assert.Equal(t, 1, quits)
}
