package entity

// NavigationKind is the containment class of a navigation target.
type NavigationKind int

const (
	// NavigationContain targets the app itself.
	NavigationContain NavigationKind = iota
	// NavigationPermitPopup targets the auth provider's login flow.
	NavigationPermitPopup
	// NavigationExternal targets anything else.
	NavigationExternal
)

func (k NavigationKind) String() string {
	switch k {
	case NavigationContain:
		return "contain"
	case NavigationPermitPopup:
		return "permit-popup"
	case NavigationExternal:
		return "external"
	default:
		return "unknown"
	}
}

// NavigationOrigin tells whether the page navigates itself or asks for a
// new window.
type NavigationOrigin int

const (
	NavigationInPlace NavigationOrigin = iota
	NavigationNewWindow
)

func (o NavigationOrigin) String() string {
	if o == NavigationNewWindow {
		return "new-window"
	}
	return "in-place"
}

// NavigationAction is what the web view must do with a navigation attempt.
type NavigationAction int

const (
	// ActionAllow lets the navigation proceed unmodified.
	ActionAllow NavigationAction = iota
	// ActionRedirectMain loads the target in the main window instead of a new one.
	ActionRedirectMain
	// ActionOpenPopup opens a real popup window for the target.
	ActionOpenPopup
	// ActionOpenExternal blocks the navigation and hands the URL to the system browser.
	ActionOpenExternal
	// ActionDeny blocks the navigation without any handoff.
	ActionDeny
)

func (a NavigationAction) String() string {
	switch a {
	case ActionAllow:
		return "allow"
	case ActionRedirectMain:
		return "redirect-main"
	case ActionOpenPopup:
		return "open-popup"
	case ActionOpenExternal:
		return "open-external"
	case ActionDeny:
		return "deny"
	default:
		return "unknown"
	}
}

// NavigationVerdict is the outcome of classifying one navigation attempt.
type NavigationVerdict struct {
	Kind   NavigationKind
	Action NavigationAction
	URL    string
}
