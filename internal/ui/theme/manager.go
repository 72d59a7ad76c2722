package theme

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/dumb-messenger/internal/logging"
)

// Manager installs the chrome stylesheet on a display.
type Manager struct {
	palette     Palette
	cssProvider *gtk.CSSProvider
}

// NewManager creates a manager with the default palette.
func NewManager() *Manager {
	return &Manager{palette: DefaultPalette()}
}

// ApplyToDisplay loads the stylesheet into display. Calling it again
// replaces the previous provider.
func (m *Manager) ApplyToDisplay(ctx context.Context, display *gdk.Display) {
	log := logging.FromContext(ctx)

	if display == nil {
		log.Warn().Msg("no display, skipping stylesheet")
		return
	}
	if m.cssProvider != nil {
		gtk.StyleContextRemoveProviderForDisplay(display, m.cssProvider)
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(GenerateCSS(m.palette))
	gtk.StyleContextAddProviderForDisplay(display, provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
	m.cssProvider = provider

	log.Debug().Msg("stylesheet applied")
}
