package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths lists the files the application reads and writes.
func (r *ConfigRenderer) RenderPaths(configFile, database, logDir string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle
	pathStyle := r.theme.Highlight

	line := func(icon, key, path string) string {
		return fmt.Sprintf("  %s %-9s %s\n", iconStyle.Render(icon), keyStyle.Render(key), pathStyle.Render(path))
	}

	return "\n" +
		line(IconConfig, "Config", configFile) +
		line(IconDatabase, "Database", database) +
		line(IconLogs, "Logs", logDir)
}

// RenderConfig frames the TOML document of the effective configuration.
func (r *ConfigRenderer) RenderConfig(path, document string) string {
	header := fmt.Sprintf("%s %s",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconConfig),
		r.theme.Subtle.Render(path),
	)
	return "\n  " + header + "\n\n" + r.theme.Box.Render(document) + "\n"
}

// RenderNoConfigFile renders the message shown before the first run.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)

	return fmt.Sprintf(
		"\n  %s No config file at %s, defaults are in use\n",
		iconStyle.Render(IconWarning),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
