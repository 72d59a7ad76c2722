// Package menu describes the application menu as plain data.
package menu

import (
	"github.com/samber/lo"

	"github.com/bnema/dumb-messenger/internal/domain/entity"
	"github.com/bnema/dumb-messenger/internal/domain/i18n"
)

// Accelerators bound to menu actions.
const (
	AccelReload    = "<Control>r"
	AccelSelectAll = "<Control><Shift>a"
	AccelQuit      = "<Control>q"
)

// Build returns the menu for prefs rendered with table. It has no side
// effects and is re-run after every preferences change.
func Build(prefs entity.Preferences, table *i18n.Table) entity.MenuModel {
	langItems := []entity.MenuItem{{
		Kind:    entity.MenuItemRadio,
		Label:   table.T(i18n.MsgLanguageAuto),
		Action:  entity.MenuSetLanguage,
		Value:   entity.LanguageAuto,
		Checked: prefs.Language == "" || prefs.Language == entity.LanguageAuto,
	}}
	langItems = append(langItems, lo.Map(i18n.Languages(), func(l i18n.Language, _ int) entity.MenuItem {
		return entity.MenuItem{
			Kind:    entity.MenuItemRadio,
			Label:   l.Name,
			Action:  entity.MenuSetLanguage,
			Value:   l.Tag,
			Checked: prefs.Language == l.Tag,
		}
	})...)

	return entity.MenuModel{
		Sections: []entity.MenuSection{
			{
				Title: table.T(i18n.MsgMenuView),
				Items: []entity.MenuItem{
					{Kind: entity.MenuItemButton, Label: table.T(i18n.MsgReload), Action: entity.MenuReload, Accel: AccelReload},
				},
			},
			{
				Title: table.T(i18n.MsgMenuEdit),
				Items: []entity.MenuItem{
					{Kind: entity.MenuItemButton, Label: table.T(i18n.MsgSelectAll), Action: entity.MenuSelectAll, Accel: AccelSelectAll},
				},
			},
			{
				Title: table.T(i18n.MsgMenuSettings),
				Items: []entity.MenuItem{
					{
						Kind:    entity.MenuItemCheck,
						Label:   table.T(i18n.MsgNotifications),
						Action:  entity.MenuToggleNotifications,
						Checked: prefs.Notifications,
					},
					{
						Kind:    entity.MenuItemCheck,
						Label:   table.T(i18n.MsgAutoUpdate),
						Action:  entity.MenuToggleAutoUpdate,
						Checked: prefs.AutoUpdateCheck,
					},
					{Kind: entity.MenuItemButton, Label: table.T(i18n.MsgCheckUpdates), Action: entity.MenuCheckUpdates},
				},
			},
			{
				Title: table.T(i18n.MsgMenuLanguage),
				Items: langItems,
			},
			{
				Items: []entity.MenuItem{
					{Kind: entity.MenuItemButton, Label: table.T(i18n.MsgAbout), Action: entity.MenuAbout},
					{Kind: entity.MenuItemSeparator},
					{Kind: entity.MenuItemButton, Label: table.T(i18n.MsgQuit), Action: entity.MenuQuit, Accel: AccelQuit},
				},
			},
		},
	}
}
