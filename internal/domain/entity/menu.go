package entity

// MenuAction identifies what a menu item does when activated.
type MenuAction string

const (
	MenuReload              MenuAction = "reload"
	MenuSelectAll           MenuAction = "select-all"
	MenuToggleNotifications MenuAction = "toggle-notifications"
	MenuToggleAutoUpdate    MenuAction = "toggle-auto-update"
	MenuCheckUpdates        MenuAction = "check-updates"
	MenuSetLanguage         MenuAction = "set-language"
	MenuAbout               MenuAction = "about"
	MenuQuit                MenuAction = "quit"
)

// MenuItemKind selects how an item is rendered.
type MenuItemKind int

const (
	MenuItemButton MenuItemKind = iota
	MenuItemCheck
	MenuItemRadio
	MenuItemSeparator
)

// MenuItem is one entry of a menu section.
type MenuItem struct {
	Kind   MenuItemKind
	Label  string
	Action MenuAction
	// Value is the action argument, e.g. the language tag of a radio item.
	Value   string
	Checked bool
	// Accel is a GTK accelerator string, empty when none.
	Accel string
}

// MenuSection groups items under an optional heading.
type MenuSection struct {
	Title string
	Items []MenuItem
}

// MenuModel is a complete description of the application menu.
type MenuModel struct {
	Sections []MenuSection
}

// Find returns the first item bound to action and value.
func (m MenuModel) Find(action MenuAction, value string) (MenuItem, bool) {
	for _, s := range m.Sections {
		for _, it := range s.Items {
			if it.Action == action && it.Value == value {
				return it, true
			}
		}
	}
	return MenuItem{}, false
}
