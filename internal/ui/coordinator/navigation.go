package coordinator

import (
	"context"

	"github.com/bnema/dumb-messenger/internal/application/usecase"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
	"github.com/bnema/dumb-messenger/internal/logging"
)

// NavigationCoordinator applies containment verdicts to the web views.
type NavigationCoordinator struct {
	containUC *usecase.ContainNavigationUseCase
	main      PageLoader
	window    WindowHandle
	popups    PopupOpener
	post      PostFunc
}

// NavigationCoordinatorDeps holds the collaborators of the navigation
// coordinator.
type NavigationCoordinatorDeps struct {
	ContainUC *usecase.ContainNavigationUseCase
	// Main is the main web view; Window is the window hosting it.
	Main   PageLoader
	Window WindowHandle
	Popups PopupOpener
	Post   PostFunc
}

// NewNavigationCoordinator creates a new NavigationCoordinator.
func NewNavigationCoordinator(deps NavigationCoordinatorDeps) *NavigationCoordinator {
	return &NavigationCoordinator{
		containUC: deps.ContainUC,
		main:      deps.Main,
		window:    deps.Window,
		popups:    deps.Popups,
		post:      deps.Post,
	}
}

// HandleNavigation decides a navigation of the main web view or a login
// popup. It returns true when the view may proceed: in place, or for a
// permitted popup by creating the window.
func (c *NavigationCoordinator) HandleNavigation(ctx context.Context, url string, newWindow bool) bool {
	switch c.apply(ctx, url, newWindow).Action {
	case entity.ActionAllow, entity.ActionOpenPopup:
		return true
	default:
		return false
	}
}

// HandleCreate builds the view for a window the page opened from opener.
// Only login popups get a window; every other target is contained the same
// way as a new-window navigation and nil is returned.
func (c *NavigationCoordinator) HandleCreate(ctx context.Context, opener PageView, url string) PageView {
	verdict := c.apply(ctx, url, true)
	if verdict.Action != entity.ActionOpenPopup {
		return nil
	}
	return c.popups.OpenPopup(ctx, opener, verdict.URL)
}

func (c *NavigationCoordinator) apply(ctx context.Context, url string, newWindow bool) entity.NavigationVerdict {
	verdict := c.containUC.Execute(ctx, usecase.NavigationRequest{URL: url, Origin: originOf(newWindow)})
	if verdict.Action == entity.ActionRedirectMain {
		c.redirectMain(ctx, verdict.URL)
	}
	return verdict
}

// redirectMain loads url in the main view and raises its window. Loading
// from inside the policy callback would race the ignored decision.
func (c *NavigationCoordinator) redirectMain(ctx context.Context, url string) {
	log := logging.FromContext(ctx)
	c.post(func() {
		if err := c.main.LoadURL(url); err != nil {
			log.Warn().Err(err).Str("url", url).Msg("failed to load redirected navigation")
			return
		}
		if c.window != nil && !c.window.IsDestroyed() {
			c.window.Present()
		}
	})
}

func originOf(newWindow bool) entity.NavigationOrigin {
	if newWindow {
		return entity.NavigationNewWindow
	}
	return entity.NavigationInPlace
}
