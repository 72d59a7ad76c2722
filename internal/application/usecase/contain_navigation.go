package usecase

import (
	"context"
	"net/url"
	"strings"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
	"github.com/bnema/dumb-messenger/internal/domain/navigation"
	"github.com/bnema/dumb-messenger/internal/logging"
)

// NavigationRequest is one navigation attempt intercepted by the web view.
type NavigationRequest struct {
	URL    string
	Origin entity.NavigationOrigin
}

// ContainNavigationUseCase keeps the main window on the app and hands every
// other destination to the system browser.
type ContainNavigationUseCase struct {
	opener port.ExternalOpener
}

// NewContainNavigationUseCase creates a new navigation containment use case.
func NewContainNavigationUseCase(opener port.ExternalOpener) *ContainNavigationUseCase {
	return &ContainNavigationUseCase{opener: opener}
}

// Execute classifies req and performs the external handoff when needed.
// The returned verdict tells the web view whether to proceed.
func (uc *ContainNavigationUseCase) Execute(ctx context.Context, req NavigationRequest) entity.NavigationVerdict {
	log := logging.FromContext(ctx)

	verdict := Classify(req)
	if verdict.Action == entity.ActionOpenExternal {
		if err := uc.opener.OpenURL(ctx, verdict.URL); err != nil {
			log.Warn().Err(err).Str("url", verdict.URL).Msg("failed to open URL in system browser")
		}
	}

	log.Debug().
		Str("url", req.URL).
		Str("origin", req.Origin.String()).
		Str("kind", verdict.Kind.String()).
		Str("action", verdict.Action.String()).
		Msg("navigation classified")

	return verdict
}

// Classify computes the verdict for req without side effects.
func Classify(req NavigationRequest) entity.NavigationVerdict {
	raw := strings.TrimSpace(req.URL)

	// window.open() without a URL, later navigated by the opener. The popup's
	// own navigations are contained like any other.
	if raw == "" || raw == "about:blank" {
		if req.Origin == entity.NavigationNewWindow {
			return entity.NavigationVerdict{Kind: entity.NavigationPermitPopup, Action: entity.ActionOpenPopup, URL: raw}
		}
		return entity.NavigationVerdict{Kind: entity.NavigationContain, Action: entity.ActionAllow, URL: raw}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return entity.NavigationVerdict{Kind: entity.NavigationExternal, Action: entity.ActionDeny, URL: raw}
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		kind := navigation.Classify(u.Host, u.Path)
		return entity.NavigationVerdict{
			Kind:   kind,
			Action: navigation.Decide(kind, req.Origin),
			URL:    raw,
		}
	case "about", "blob", "data":
		// Page-internal documents render in place but never spawn windows.
		if req.Origin == entity.NavigationInPlace {
			return entity.NavigationVerdict{Kind: entity.NavigationContain, Action: entity.ActionAllow, URL: raw}
		}
		return entity.NavigationVerdict{Kind: entity.NavigationExternal, Action: entity.ActionDeny, URL: raw}
	case "javascript", "file", "":
		return entity.NavigationVerdict{Kind: entity.NavigationExternal, Action: entity.ActionDeny, URL: raw}
	default:
		// mailto:, tel: and friends belong to the desktop's handlers.
		return entity.NavigationVerdict{Kind: entity.NavigationExternal, Action: entity.ActionOpenExternal, URL: raw}
	}
}
