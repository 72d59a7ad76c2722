package webkit

import (
	"context"
	"sync"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/infrastructure/webkit/bridge"
	"github.com/bnema/dumb-messenger/internal/logging"
)

// selectAllScript runs the helper installed by the observer script.
const selectAllScript = `window.__dumbMessenger && window.__dumbMessenger.selectAll();`

// Config holds per-view settings.
type Config struct {
	// UserScript is injected into the top frame at document start.
	UserScript string
	// Router receives messages posted to the dumbMessenger handler. Nil
	// disables the bridge.
	Router *bridge.Router
	// DeveloperExtras enables the web inspector.
	DeveloperExtras bool
}

// NavigationRequest describes a navigation the page is about to perform.
type NavigationRequest struct {
	URL string
	// NewWindow is true for window.open and target=_blank.
	NewWindow bool
	// UserInitiated is true for link clicks and form submissions.
	UserInitiated bool
}

// WebView wraps a WebKitGTK WebView.
type WebView struct {
	view *webkit.WebView

	mu        sync.RWMutex
	destroyed bool

	onTitleChanged func(string)
	onNavigation   func(NavigationRequest) bool
	onCreate       func(NavigationRequest) *WebView
	onReadyToShow  func()
	onLoadFailed   func(uri string, err error)
	onClose        func()
}

var _ port.PageCommander = (*WebView)(nil)

// NewWebView creates a web view on the persistent session.
func NewWebView(ctx context.Context, cfg Config) (*WebView, error) {
	wkView := webkit.NewWebView()
	if wkView == nil {
		return nil, ErrWebViewNotInitialized
	}

	wv := &WebView{view: wkView}
	wv.applySettings(cfg)
	wv.setupUserContent(ctx, cfg)
	wv.setupEventHandlers(ctx)
	return wv, nil
}

// NewRelatedWebView creates the view for a popup opened by related. The two
// views share one web process, settings and user content, and the popup's
// window.opener refers to related.
func NewRelatedWebView(ctx context.Context, related *WebView) (*WebView, error) {
	if related == nil || related.IsDestroyed() {
		return nil, ErrWebViewDestroyed
	}
	wkView := newRelatedView(related.view)
	if wkView == nil {
		return nil, ErrWebViewNotInitialized
	}

	wv := &WebView{view: wkView}
	wv.setupEventHandlers(ctx)
	return wv, nil
}

func (w *WebView) applySettings(cfg Config) {
	settings := w.view.Settings()
	if settings == nil {
		return
	}
	settings.SetEnableJavascript(true)
	settings.SetJavascriptCanOpenWindowsAutomatically(true)
	settings.SetEnableMediaStream(true)
	settings.SetEnableWebrtc(true)
	settings.SetEnableDeveloperExtras(cfg.DeveloperExtras)
	settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)
}

func (w *WebView) setupUserContent(ctx context.Context, cfg Config) {
	log := logging.FromContext(ctx)

	ucm := w.view.UserContentManager()
	if ucm == nil {
		log.Warn().Msg("user content manager is nil, page bridge disabled")
		return
	}

	if cfg.UserScript != "" {
		ucm.AddScript(webkit.NewUserScript(
			cfg.UserScript,
			webkit.UserContentInjectTopFrame,
			webkit.UserScriptInjectAtDocumentStart,
			nil,
			nil,
		))
	}

	if cfg.Router == nil {
		return
	}
	// Connect before registering so no early message is lost.
	ucm.ConnectScriptMessageReceived(func(value *javascriptcore.Value) {
		if w.IsDestroyed() || value == nil {
			return
		}
		cfg.Router.Dispatch(value.ToJSON(0))
	})
	if !ucm.RegisterScriptMessageHandler(bridge.HandlerName, "") {
		log.Warn().Str("handler", bridge.HandlerName).Msg("failed to register script message handler")
	}
}

func (w *WebView) setupEventHandlers(ctx context.Context) {
	log := logging.FromContext(ctx)

	w.view.Connect("notify::title", func() {
		if fn := w.titleHandler(); fn != nil {
			fn(w.view.Title())
		}
	})

	w.view.ConnectDecidePolicy(w.decidePolicy)

	w.view.ConnectLoadChanged(func(event webkit.LoadEvent) {
		switch event {
		case webkit.LoadStarted, webkit.LoadRedirected:
			w.checkMainFrameLoad()
		}
	})

	w.view.ConnectCreate(func(action *webkit.NavigationAction) gtk.Widgetter {
		return w.createPopup(action)
	})

	w.view.ConnectReadyToShow(func() {
		w.mu.RLock()
		fn := w.onReadyToShow
		w.mu.RUnlock()
		if fn != nil {
			fn()
		}
	})

	w.view.ConnectPermissionRequest(func(request webkit.PermissionRequester) bool {
		switch request.(type) {
		case *webkit.NotificationPermissionRequest:
			// Notifications are derived from the title; web notifications
			// would duplicate them.
			request.Deny()
		default:
			request.Allow()
		}
		return true
	})

	w.view.ConnectLoadFailed(func(_ webkit.LoadEvent, failingURI string, err error) bool {
		if IsCancelledLoad(err) {
			return false
		}
		log.Warn().Err(err).Str("uri", failingURI).Msg("page load failed")
		w.mu.RLock()
		fn := w.onLoadFailed
		w.mu.RUnlock()
		if fn != nil {
			fn(failingURI, err)
			return true
		}
		return false
	})

	w.view.ConnectWebProcessTerminated(func(reason webkit.WebProcessTerminationReason) {
		if w.IsDestroyed() {
			return
		}
		log.Warn().Str("reason", reason.String()).Msg("web process terminated, reloading")
		w.view.Reload()
	})

	w.view.ConnectClose(func() {
		w.mu.RLock()
		fn := w.onClose
		w.mu.RUnlock()
		if fn != nil {
			fn()
		}
	})
}

func (w *WebView) titleHandler() func(string) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.destroyed {
		return nil
	}
	return w.onTitleChanged
}

// decidePolicy routes link clicks, form submissions and new-window requests
// through the navigation handler. Other main-frame navigations are checked
// once their load starts; subframe loads keep WebKit's default behaviour.
func (w *WebView) decidePolicy(decision webkit.PolicyDecisioner, typ webkit.PolicyDecisionType) bool {
	handler := w.navigationHandler()
	if handler == nil {
		return false
	}

	var newWindow bool
	switch typ {
	case webkit.PolicyDecisionTypeNavigationAction:
	case webkit.PolicyDecisionTypeNewWindowAction:
		newWindow = true
	default:
		return false
	}

	nav, ok := decision.(*webkit.NavigationPolicyDecision)
	if !ok {
		return false
	}
	action := nav.NavigationAction()
	if action == nil || action.Request() == nil {
		return false
	}

	req := NavigationRequest{
		URL:           action.Request().URI(),
		NewWindow:     newWindow,
		UserInitiated: isUserNavigation(action),
	}
	if !req.NewWindow && !req.UserInitiated {
		return false
	}

	// A used new-window decision continues with the create signal.
	if handler(req) {
		nav.Use()
	} else {
		nav.Ignore()
	}
	return true
}

// checkMainFrameLoad classifies the target of a main-frame load that was not
// decided by policy, such as location.assign() or an HTTP redirect. Loads
// that may not stay in this view are stopped before they commit.
func (w *WebView) checkMainFrameLoad() {
	handler := w.navigationHandler()
	if handler == nil {
		return
	}
	uri := w.view.URI()
	if uri == "" {
		return
	}
	if !handler(NavigationRequest{URL: uri}) {
		w.view.StopLoading()
	}
}

// createPopup answers the create signal. A nil widget refuses the window.
func (w *WebView) createPopup(action *webkit.NavigationAction) gtk.Widgetter {
	w.mu.RLock()
	fn := w.onCreate
	destroyed := w.destroyed
	w.mu.RUnlock()
	if fn == nil || destroyed || action == nil {
		return nil
	}

	req := NavigationRequest{NewWindow: true, UserInitiated: action.IsUserGesture()}
	if r := action.Request(); r != nil {
		req.URL = r.URI()
	}
	popup := fn(req)
	if popup == nil {
		return nil
	}
	return popup.view
}

func (w *WebView) navigationHandler() func(NavigationRequest) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.destroyed {
		return nil
	}
	return w.onNavigation
}

func isUserNavigation(action *webkit.NavigationAction) bool {
	switch action.NavigationType() {
	case webkit.NavigationTypeLinkClicked, webkit.NavigationTypeFormSubmitted, webkit.NavigationTypeFormResubmitted:
		return true
	default:
		return false
	}
}

// OnTitleChanged registers the page title handler.
func (w *WebView) OnTitleChanged(fn func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onTitleChanged = fn
}

// OnNavigation registers the policy handler. It returns true to let the
// navigation proceed in this view.
func (w *WebView) OnNavigation(fn func(NavigationRequest) bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onNavigation = fn
}

// OnCreate registers the handler that builds the view for a window the page
// opens. Returning nil refuses the window.
func (w *WebView) OnCreate(fn func(NavigationRequest) *WebView) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onCreate = fn
}

// OnReadyToShow registers a handler for when a created view should be shown.
func (w *WebView) OnReadyToShow(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReadyToShow = fn
}

// OnLoadFailed registers a handler for main resource load failures.
func (w *WebView) OnLoadFailed(fn func(uri string, err error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onLoadFailed = fn
}

// OnClose registers a handler for window.close() from the page.
func (w *WebView) OnClose(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onClose = fn
}

// LoadURL loads url.
func (w *WebView) LoadURL(url string) error {
	if w.IsDestroyed() {
		return ErrWebViewDestroyed
	}
	if url == "" {
		return ErrInvalidURL
	}
	w.view.LoadURI(url)
	return nil
}

// Title returns the current page title.
func (w *WebView) Title() string {
	if w.IsDestroyed() {
		return ""
	}
	return w.view.Title()
}

// URI returns the current page URI.
func (w *WebView) URI() string {
	if w.IsDestroyed() {
		return ""
	}
	return w.view.URI()
}

// Reload reloads the page.
func (w *WebView) Reload(ctx context.Context) {
	if w.IsDestroyed() {
		return
	}
	logging.FromContext(ctx).Debug().Msg("reloading page")
	w.view.Reload()
}

// SelectAll asks the page to select the last right-clicked element.
func (w *WebView) SelectAll(ctx context.Context) {
	if w.IsDestroyed() {
		return
	}
	w.view.EvaluateJavascript(ctx, selectAllScript, -1, "", "", nil)
}

// Widget returns the view for packing into a container.
func (w *WebView) Widget() gtk.Widgetter {
	return w.view
}

// GrabFocus moves keyboard focus into the page.
func (w *WebView) GrabFocus() {
	if !w.IsDestroyed() {
		w.view.GrabFocus()
	}
}

// Destroy marks the view as gone. Later calls become no-ops.
func (w *WebView) Destroy() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.onTitleChanged = nil
	w.onNavigation = nil
	w.onCreate = nil
	w.onReadyToShow = nil
	w.onLoadFailed = nil
	w.onClose = nil
}

// IsDestroyed reports whether Destroy was called.
func (w *WebView) IsDestroyed() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.destroyed
}
