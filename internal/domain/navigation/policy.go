// Package navigation decides where a navigation target may be rendered.
//
// Decisions are pure functions of the target host and path. Nothing is
// remembered between two navigation attempts.
package navigation

import (
	"strings"

	"github.com/samber/lo"

	"github.com/bnema/dumb-messenger/internal/domain/entity"
)

// AuthProviderDomain is matched as a suffix so regional and mobile
// subdomains of the login provider keep working.
const AuthProviderDomain = "facebook.com"

// appHosts are matched exactly. Lookalike subdomains such as the
// l.messenger.com link redirector must stay external.
var appHosts = []string{
	"www.messenger.com",
	"m.messenger.com",
}

// authPathFragments identify the login, OAuth dialog and checkpoint flows.
var authPathFragments = []string{
	"/login",
	"/dialog/oauth",
	"/checkpoint",
}

// AppHosts returns the hosts rendered inside the main window.
func AppHosts() []string {
	return append([]string(nil), appHosts...)
}

// Classify returns the containment class of host and path.
func Classify(host, path string) entity.NavigationKind {
	h := normalizeHost(host)
	if h == "" {
		return entity.NavigationExternal
	}

	if lo.Contains(appHosts, h) {
		return entity.NavigationContain
	}

	if isAuthHost(h) && lo.SomeBy(authPathFragments, func(frag string) bool {
		return strings.Contains(path, frag)
	}) {
		return entity.NavigationPermitPopup
	}

	return entity.NavigationExternal
}

// Decide maps a containment class and the way the navigation was requested
// to the action the web view must take.
func Decide(kind entity.NavigationKind, origin entity.NavigationOrigin) entity.NavigationAction {
	switch kind {
	case entity.NavigationContain:
		if origin == entity.NavigationNewWindow {
			return entity.ActionRedirectMain
		}
		return entity.ActionAllow
	case entity.NavigationPermitPopup:
		if origin == entity.NavigationNewWindow {
			return entity.ActionOpenPopup
		}
		return entity.ActionAllow
	default:
		return entity.ActionOpenExternal
	}
}

func isAuthHost(h string) bool {
	return h == AuthProviderDomain || strings.HasSuffix(h, "."+AuthProviderDomain)
}

func normalizeHost(host string) string {
	h := strings.ToLower(strings.TrimSpace(host))
	if i := strings.LastIndexByte(h, ':'); i >= 0 && !strings.Contains(h[i:], "]") {
		h = h[:i]
	}
	return strings.TrimSuffix(h, ".")
}
