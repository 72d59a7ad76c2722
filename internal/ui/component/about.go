package component

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/dumb-messenger/internal/domain/build"
)

// AppIconName is the themed icon installed with the desktop entry.
const AppIconName = "com.github.bnema.dumbmessenger"

// ShowAbout presents the about dialog for parent.
func ShowAbout(parent *gtk.Window, info build.Info) {
	dialog := gtk.NewAboutDialog()
	dialog.SetProgramName("Dumb Messenger")
	dialog.SetLogoIconName(AppIconName)
	dialog.SetComments("A desktop shell for messenger.com")
	dialog.SetWebsite(build.RepoURL())
	dialog.SetAuthors(build.Contributors())

	version := info.Version
	if info.IsDev() {
		version = "dev"
	}
	if info.Commit != "" {
		version += " (" + info.Commit + ")"
	}
	dialog.SetVersion(version)

	if parent != nil {
		dialog.SetTransientFor(parent)
		dialog.SetModal(true)
	}
	dialog.Present()
}
