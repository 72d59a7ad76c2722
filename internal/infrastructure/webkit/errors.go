package webkit

import (
	"errors"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/core/gerror"
)

var (
	ErrWebViewNotInitialized = errors.New("webkit: WebView not initialized")
	ErrWebViewDestroyed      = errors.New("webkit: WebView destroyed")
	ErrInvalidURL            = errors.New("webkit: invalid URL")
)

// IsCancelledLoad reports whether err only says that a load was cancelled,
// which happens on every navigation we ignore.
func IsCancelledLoad(err error) bool {
	if err == nil {
		return false
	}
	if err.Error() == "Load request cancelled" {
		return true
	}

	var gErr *gerror.GError
	if errors.As(err, &gErr) {
		return gErr.ErrorCode() == int(webkit.NetworkErrorCancelled) ||
			gErr.ErrorCode() == int(webkit.PolicyErrorFrameLoadInterruptedByPolicyChange)
	}
	return false
}
