package component

import (
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/dumb-messenger/internal/domain/entity"
)

// MenuHandler is invoked when a menu item is activated. value is the radio
// target for radio items and empty otherwise.
type MenuHandler func(action entity.MenuAction, value string)

// AppMenu renders an entity.MenuModel into the header-bar menu button and
// keeps the matching application actions and accelerators.
type AppMenu struct {
	app     *gtk.Application
	button  *gtk.MenuButton
	handler MenuHandler
	actions map[entity.MenuAction]*gio.SimpleAction
	accels  map[entity.MenuAction]string
}

// NewAppMenu creates the menu button. Nothing is shown until Render.
func NewAppMenu(app *gtk.Application, handler MenuHandler) *AppMenu {
	button := gtk.NewMenuButton()
	button.SetIconName("open-menu-symbolic")
	button.SetTooltipText("Menu")

	return &AppMenu{
		app:     app,
		button:  button,
		handler: handler,
		actions: make(map[entity.MenuAction]*gio.SimpleAction),
		accels:  make(map[entity.MenuAction]string),
	}
}

// Widget returns the menu button.
func (m *AppMenu) Widget() gtk.Widgetter {
	return m.button
}

// Render replaces the menu with model. Actions are created on first sight
// and only have their state updated afterwards.
func (m *AppMenu) Render(model entity.MenuModel) {
	root := gio.NewMenu()

	for _, section := range model.Sections {
		current := gio.NewMenu()
		flush := func() {
			if current.NItems() > 0 {
				root.AppendSection(section.Title, current)
			}
			current = gio.NewMenu()
		}

		for _, item := range section.Items {
			if item.Kind == entity.MenuItemSeparator {
				flush()
				continue
			}
			m.ensureAction(item)
			current.AppendItem(m.menuItem(item))
		}
		flush()
	}

	m.syncState(model)
	m.button.SetMenuModel(root)
}

// Popup opens the menu.
func (m *AppMenu) Popup() {
	m.button.Popup()
}

func (m *AppMenu) menuItem(item entity.MenuItem) *gio.MenuItem {
	name := actionName(item.Action)
	mi := gio.NewMenuItem(item.Label, "")
	if item.Kind == entity.MenuItemRadio {
		mi.SetActionAndTargetValue(name, glib.NewVariantString(item.Value))
	} else {
		mi.SetActionAndTargetValue(name, nil)
	}
	if item.Accel != "" {
		mi.SetAttributeValue("accel", glib.NewVariantString(item.Accel))
	}
	return mi
}

func (m *AppMenu) ensureAction(item entity.MenuItem) {
	if _, ok := m.actions[item.Action]; ok {
		return
	}

	var action *gio.SimpleAction
	switch item.Kind {
	case entity.MenuItemCheck:
		action = gio.NewSimpleActionStateful(string(item.Action), nil, glib.NewVariantBoolean(item.Checked))
	case entity.MenuItemRadio:
		action = gio.NewSimpleActionStateful(string(item.Action), glib.NewVariantType("s"), glib.NewVariantString(item.Value))
	default:
		action = gio.NewSimpleAction(string(item.Action), nil)
	}

	kind := item.Kind
	target := item.Action
	action.ConnectActivate(func(parameter *glib.Variant) {
		value := ""
		if kind == entity.MenuItemRadio && parameter != nil {
			value = parameter.String()
		}
		if m.handler != nil {
			m.handler(target, value)
		}
	})

	m.app.AddAction(action)
	m.actions[item.Action] = action

	if item.Accel != "" && m.accels[item.Action] != item.Accel {
		m.app.SetAccelsForAction(actionName(item.Action), []string{item.Accel})
		m.accels[item.Action] = item.Accel
	}
}

// syncState mirrors Checked flags into the stateful actions.
func (m *AppMenu) syncState(model entity.MenuModel) {
	for _, section := range model.Sections {
		for _, item := range section.Items {
			action, ok := m.actions[item.Action]
			if !ok {
				continue
			}
			switch item.Kind {
			case entity.MenuItemCheck:
				action.SetState(glib.NewVariantBoolean(item.Checked))
			case entity.MenuItemRadio:
				if item.Checked {
					action.SetState(glib.NewVariantString(item.Value))
				}
			}
		}
	}
}

func actionName(a entity.MenuAction) string {
	return "app." + string(a)
}
