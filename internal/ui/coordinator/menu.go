package coordinator

import (
	"context"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/application/usecase"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
	"github.com/bnema/dumb-messenger/internal/domain/i18n"
	"github.com/bnema/dumb-messenger/internal/domain/menu"
	"github.com/bnema/dumb-messenger/internal/logging"
)

// MenuCoordinator rebuilds the menu from the preferences and dispatches
// menu actions.
type MenuCoordinator struct {
	prefsUC *usecase.ManagePreferencesUseCase
	view    MenuView
	page    port.PageCommander

	onCheckUpdates func(ctx context.Context)
	onAbout        func()
	onQuit         func()
	onLanguage     func(table *i18n.Table)
}

// MenuCoordinatorDeps holds the collaborators of the menu coordinator.
type MenuCoordinatorDeps struct {
	Prefs          *usecase.ManagePreferencesUseCase
	View           MenuView
	Page           port.PageCommander
	OnCheckUpdates func(ctx context.Context)
	OnAbout        func()
	OnQuit         func()
	// OnLanguage runs after the localization table changed.
	OnLanguage func(table *i18n.Table)
}

// NewMenuCoordinator creates the coordinator. Call Attach to render.
func NewMenuCoordinator(deps MenuCoordinatorDeps) *MenuCoordinator {
	return &MenuCoordinator{
		prefsUC:        deps.Prefs,
		view:           deps.View,
		page:           deps.Page,
		onCheckUpdates: deps.OnCheckUpdates,
		onAbout:        deps.OnAbout,
		onQuit:         deps.OnQuit,
		onLanguage:     deps.OnLanguage,
	}
}

// Attach renders the menu and re-renders it after every preferences
// change. post moves the re-render onto the main loop; the change may come
// from the config file watcher.
func (c *MenuCoordinator) Attach(post PostFunc) {
	c.Rebuild()

	lastLang := c.prefsUC.Current().Language
	c.prefsUC.Subscribe(func(p entity.Preferences) {
		langChanged := p.Language != lastLang
		lastLang = p.Language
		post(func() {
			c.Rebuild()
			if langChanged && c.onLanguage != nil {
				c.onLanguage(i18n.Resolve(p.Language))
			}
		})
	})
}

// Rebuild renders the menu for the current preferences.
func (c *MenuCoordinator) Rebuild() {
	prefs := c.prefsUC.Current()
	c.view.Render(menu.Build(prefs, i18n.Resolve(prefs.Language)))
}

// Table returns the localization table for the current preferences.
func (c *MenuCoordinator) Table() *i18n.Table {
	return i18n.Resolve(c.prefsUC.Current().Language)
}

// Dispatch runs a menu action. value is the radio target, if any.
func (c *MenuCoordinator) Dispatch(ctx context.Context, action entity.MenuAction, value string) {
	log := logging.FromContext(ctx)
	log.Debug().Str("action", string(action)).Str("value", value).Msg("menu action")

	switch action {
	case entity.MenuReload:
		c.page.Reload(ctx)
	case entity.MenuSelectAll:
		c.page.SelectAll(ctx)
	case entity.MenuToggleNotifications:
		c.prefsUC.Update(ctx, func(p *entity.Preferences) { p.Notifications = !p.Notifications })
	case entity.MenuToggleAutoUpdate:
		c.prefsUC.Update(ctx, func(p *entity.Preferences) { p.AutoUpdateCheck = !p.AutoUpdateCheck })
	case entity.MenuSetLanguage:
		if value == "" {
			value = entity.LanguageAuto
		}
		c.prefsUC.Update(ctx, func(p *entity.Preferences) { p.Language = value })
	case entity.MenuCheckUpdates:
		if c.onCheckUpdates != nil {
			c.onCheckUpdates(ctx)
		}
	case entity.MenuAbout:
		if c.onAbout != nil {
			c.onAbout()
		}
	case entity.MenuQuit:
		if c.onQuit != nil {
			c.onQuit()
		}
	default:
		log.Warn().Str("action", string(action)).Msg("unknown menu action")
	}
}
