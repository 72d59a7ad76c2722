// Package i18n holds the localized strings of the native UI.
package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// MessageID identifies a localized string.
type MessageID string

const (
	MsgMenuApp              MessageID = "menu.app"
	MsgMenuView             MessageID = "menu.view"
	MsgMenuEdit             MessageID = "menu.edit"
	MsgMenuSettings         MessageID = "menu.settings"
	MsgMenuLanguage         MessageID = "menu.language"
	MsgReload               MessageID = "menu.reload"
	MsgSelectAll            MessageID = "menu.select_all"
	MsgNotifications        MessageID = "menu.notifications"
	MsgAutoUpdate           MessageID = "menu.auto_update"
	MsgCheckUpdates         MessageID = "menu.check_updates"
	MsgAbout                MessageID = "menu.about"
	MsgQuit                 MessageID = "menu.quit"
	MsgLanguageAuto         MessageID = "language.auto"
	MsgUpdateAvailableTitle MessageID = "update.available_title"
	MsgUpdateAvailableBody  MessageID = "update.available_body"
	MsgUpdateDownload       MessageID = "update.download"
	MsgUpdateLater          MessageID = "update.later"
	MsgUpdateUpToDate       MessageID = "update.up_to_date"
	MsgUpdateFailedTitle    MessageID = "update.failed_title"
	MsgDismiss              MessageID = "dialog.dismiss"
	MsgNewMessage           MessageID = "notification.new_message"
	MsgLoadFailedTitle      MessageID = "page.load_failed_title"
)

// Table maps message IDs to strings of one language.
type Table struct {
	Tag      language.Tag
	Name     string
	messages map[MessageID]string
}

// T returns the localized string for id, falling back to English and then
// to the id itself.
func (t *Table) T(id MessageID) string {
	if t != nil {
		if s, ok := t.messages[id]; ok {
			return s
		}
	}
	if s, ok := english.messages[id]; ok {
		return s
	}
	return string(id)
}

// Language is an entry of the language picker.
type Language struct {
	Tag  string
	Name string
}

// Languages lists the bundled tables in picker order.
func Languages() []Language {
	out := make([]Language, 0, len(tables))
	for _, t := range tables {
		out = append(out, Language{Tag: t.Tag.String(), Name: t.Name})
	}
	return out
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(tables))
	for _, t := range tables {
		tags = append(tags, t.Tag)
	}
	return language.NewMatcher(tags)
}()

// Resolve returns the table best matching pref. An empty or "auto" pref is
// resolved from the process locale. Unknown languages fall back to English.
func Resolve(pref string) *Table {
	if pref == "" || strings.EqualFold(pref, "auto") {
		pref = SystemLocale()
	}
	tag, err := language.Parse(pref)
	if err != nil {
		return english
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return english
	}
	return tables[idx]
}

// SystemLocale returns the user's locale from the POSIX environment as a
// BCP 47 tag, or "en" when unset.
func SystemLocale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" && v != "C" && v != "POSIX" {
			return posixToBCP47(v)
		}
	}
	return "en"
}

// posixToBCP47 turns "pt_BR.UTF-8@euro" into "pt-BR".
func posixToBCP47(v string) string {
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	return strings.ReplaceAll(v, "_", "-")
}
