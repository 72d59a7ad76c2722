package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dumb-messenger/internal/domain/entity"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		host string
		path string
		want entity.NavigationKind
	}{
		{name: "main host any path", host: "www.messenger.com", path: "/t/12345", want: entity.NavigationContain},
		{name: "main host root", host: "www.messenger.com", path: "/", want: entity.NavigationContain},
		{name: "mobile host", host: "m.messenger.com", path: "/", want: entity.NavigationContain},
		{name: "link redirector", host: "l.messenger.com", path: "/l.php", want: entity.NavigationExternal},
		{name: "bare app domain", host: "messenger.com", path: "/", want: entity.NavigationExternal},
		{name: "auth login", host: "facebook.com", path: "/login.php", want: entity.NavigationPermitPopup},
		{name: "auth home", host: "facebook.com", path: "/home", want: entity.NavigationExternal},
		{name: "auth subdomain oauth", host: "www.facebook.com", path: "/v18.0/dialog/oauth", want: entity.NavigationPermitPopup},
		{name: "auth checkpoint", host: "m.facebook.com", path: "/checkpoint/block", want: entity.NavigationPermitPopup},
		{name: "auth lookalike", host: "notfacebook.com", path: "/login.php", want: entity.NavigationExternal},
		{name: "other site", host: "evil.com", path: "/", want: entity.NavigationExternal},
		{name: "case and trailing dot", host: "WWW.Messenger.com.", path: "/", want: entity.NavigationContain},
		{name: "explicit port", host: "www.messenger.com:443", path: "/", want: entity.NavigationContain},
		{name: "empty host", host: "", path: "/login", want: entity.NavigationExternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.host, tt.path))
		})
	}
}

func TestClassify_IsPure(t *testing.T) {
	for range 3 {
		assert.Equal(t, entity.NavigationExternal, Classify("evil.com", "/"))
		assert.Equal(t, entity.NavigationContain, Classify("www.messenger.com", "/"))
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		kind   entity.NavigationKind
		origin entity.NavigationOrigin
		want   entity.NavigationAction
	}{
		{entity.NavigationContain, entity.NavigationInPlace, entity.ActionAllow},
		{entity.NavigationContain, entity.NavigationNewWindow, entity.ActionRedirectMain},
		{entity.NavigationPermitPopup, entity.NavigationInPlace, entity.ActionAllow},
		{entity.NavigationPermitPopup, entity.NavigationNewWindow, entity.ActionOpenPopup},
		{entity.NavigationExternal, entity.NavigationInPlace, entity.ActionOpenExternal},
		{entity.NavigationExternal, entity.NavigationNewWindow, entity.ActionOpenExternal},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.origin.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.kind, tt.origin))
		})
	}
}
