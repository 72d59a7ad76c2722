// Package browser hands URLs to the system browser.
package browser

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/pkg/browser"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/logging"
)

func init() {
	// xdg-open chatter would otherwise end up on our stdout.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Opener implements port.ExternalOpener with xdg-open.
type Opener struct {
	open func(string) error
}

var _ port.ExternalOpener = (*Opener)(nil)

// NewOpener creates an opener using the desktop default handler.
func NewOpener() *Opener {
	return &Opener{open: browser.OpenURL}
}

// OpenURL launches the default handler for rawURL. The call returns once
// the handler process has been started.
func (o *Opener) OpenURL(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme == "" {
		return fmt.Errorf("refusing to open %q without a scheme", rawURL)
	}

	logging.FromContext(ctx).Info().Str("url", rawURL).Msg("opening in system browser")
	if err := o.open(u.String()); err != nil {
		return fmt.Errorf("open %s: %w", u.Redacted(), err)
	}
	return nil
}
