// Package theme provides GTK CSS styling for the window chrome.
package theme

import (
	"fmt"
	"strings"
)

// Palette holds the few colors the chrome uses on top of the GTK theme.
type Palette struct {
	Badge       string
	BadgeText   string
	CardBg      string
	CardFg      string
	ErrorAccent string
}

// DefaultPalette matches the rasterized badge.
func DefaultPalette() Palette {
	return Palette{
		Badge:       "#FF3B30",
		BadgeText:   "#FFFFFF",
		CardBg:      "@theme_bg_color",
		CardFg:      "@theme_fg_color",
		ErrorAccent: "#FF3B30",
	}
}

// GenerateCSS creates the GTK4 CSS for the badge indicator and the prompt
// overlay.
func GenerateCSS(p Palette) string {
	var sb strings.Builder

	sb.WriteString("/* Unread badge */\n")
	fmt.Fprintf(&sb, `.unread-badge-label {
  background-color: %s;
  color: %s;
  border-radius: 999px;
  padding: 0 6px;
  font-weight: bold;
  font-size: 0.8em;
  min-width: 12px;
}
`, p.Badge, p.BadgeText)

	sb.WriteString("\n/* Prompt overlay */\n")
	fmt.Fprintf(&sb, `.prompt-card {
  background-color: %s;
  color: %s;
  border-radius: 12px;
  padding: 14px 16px;
  box-shadow: 0 2px 8px rgba(0, 0, 0, 0.25);
}
.prompt-title {
  font-weight: bold;
}
.prompt-error {
  border-left: 4px solid %s;
}
`, p.CardBg, p.CardFg, p.ErrorAccent)

	return sb.String()
}
