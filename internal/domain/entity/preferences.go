package entity

// LanguageAuto resolves the UI language from the process locale.
const LanguageAuto = "auto"

// Preferences is the session configuration record shared by the menu and
// the event handlers. It is mutated only through the preferences use case.
type Preferences struct {
	// Language is a BCP 47 tag or LanguageAuto.
	Language string
	// AutoUpdateCheck enables the startup and periodic update checks.
	AutoUpdateCheck bool
	// Notifications enables desktop notifications for new messages.
	Notifications bool
}

// DefaultPreferences returns the preferences used on first start.
func DefaultPreferences() Preferences {
	return Preferences{
		Language:        LanguageAuto,
		AutoUpdateCheck: true,
		Notifications:   true,
	}
}
