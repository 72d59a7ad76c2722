package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// DesktopRenderer renders desktop integration results.
type DesktopRenderer struct {
	theme *Theme
}

// NewDesktopRenderer creates a new desktop renderer with the given theme.
func NewDesktopRenderer(theme *Theme) *DesktopRenderer {
	return &DesktopRenderer{theme: theme}
}

// RenderInstalled confirms the written files.
func (r *DesktopRenderer) RenderInstalled(desktopPath, iconPath string, updated bool) string {
	ok := r.theme.SuccessStyle.Render(IconCheck)
	verb := "installed to"
	if updated {
		verb = "updated at"
	}
	out := fmt.Sprintf("%s Desktop file %s %s\n", ok, verb, r.theme.Highlight.Render(desktopPath))
	if iconPath != "" {
		out += fmt.Sprintf("%s Icon %s %s\n", ok, verb, r.theme.Highlight.Render(iconPath))
	}
	return out
}

// RenderRemoved confirms the removal.
func (r *DesktopRenderer) RenderRemoved(desktopPath string, wasInstalled bool) string {
	if !wasInstalled {
		return fmt.Sprintf("%s Nothing to remove\n", r.theme.Subtle.Render(IconInfo))
	}
	return fmt.Sprintf("%s Removed %s\n", r.theme.SuccessStyle.Render(IconCheck), r.theme.Highlight.Render(desktopPath))
}

// RenderStatus shows what is installed.
func (r *DesktopRenderer) RenderStatus(desktopPath string, desktopOK bool, iconPath string, iconOK bool, executable string) string {
	mark := func(ok bool) string {
		if ok {
			return r.theme.SuccessStyle.Render(IconCheck)
		}
		return r.theme.ErrorStyle.Render(IconX)
	}
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf("\n  %s %s Desktop file %s\n  %s %s Icon         %s\n  %s   Executable   %s\n",
		mark(desktopOK), iconStyle.Render(IconDesktop), r.theme.Subtle.Render(desktopPath),
		mark(iconOK), iconStyle.Render(IconImage), r.theme.Subtle.Render(iconPath),
		iconStyle.Render(IconFolder), r.theme.Subtle.Render(executable),
	)
}

// RenderError renders an error message.
func (r *DesktopRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v\n", r.theme.ErrorStyle.Render(IconX), err)
}
