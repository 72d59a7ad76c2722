// Package styles renders the command line output with lipgloss.
package styles

import "github.com/charmbracelet/lipgloss"

// Messenger blue, shared with the window chrome and the badge.
const accentHex = "#0a7cff"

// Theme carries the colors and base styles of every renderer. Colors adapt
// to light and dark terminals.
type Theme struct {
	Text    lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Accent  lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor

	Title        lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	Box          lipgloss.Style
}

// NewTheme returns the default theme.
func NewTheme() *Theme {
	t := &Theme{
		Text:    lipgloss.AdaptiveColor{Light: "#1c1e21", Dark: "#ffffff"},
		Muted:   lipgloss.AdaptiveColor{Light: "#65676b", Dark: "#909090"},
		Accent:  lipgloss.AdaptiveColor{Light: accentHex, Dark: accentHex},
		Border:  lipgloss.AdaptiveColor{Light: "#ced0d4", Dark: "#333333"},
		Error:   lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#ef4444"},
		Warning: lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#f59e0b"},
		Success: lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"},
	}

	fg := func(c lipgloss.TerminalColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	t.Title = fg(t.Text).Bold(true)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(t.Error)
	t.WarningStyle = fg(t.Warning)
	t.SuccessStyle = fg(t.Success)
	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
	return t
}

// statusLine renders an indented "icon message" line with the icon in c.
func (t *Theme) statusLine(c lipgloss.TerminalColor, icon, msg string) string {
	return "  " + lipgloss.NewStyle().Foreground(c).Render(icon) + " " + msg + "\n"
}
