package styles

import (
	"fmt"
	"strings"
)

// notesLines caps the release notes shown under an available update.
const notesLines = 8

// UpdateRenderer renders the output of the update command.
type UpdateRenderer struct {
	theme *Theme
}

func NewUpdateRenderer(theme *Theme) *UpdateRenderer {
	return &UpdateRenderer{theme: theme}
}

// RenderChecking is shown next to the spinner while the feed is queried.
func (*UpdateRenderer) RenderChecking(spinner string) string {
	return "\n  " + spinner + " Checking for updates...\n"
}

func (r *UpdateRenderer) RenderUpToDate(version string) string {
	msg := fmt.Sprintf("Already up to date (%s)", r.theme.Highlight.Render(version))
	return "\n" + r.theme.statusLine(r.theme.Success, IconCheck, msg)
}

// RenderAvailable shows both versions, the release page and an excerpt of
// the release notes.
func (r *UpdateRenderer) RenderAvailable(current, latest, releaseURL, notes string) string {
	t := r.theme
	arrow := t.Highlight.Render(IconArrow)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(t.statusLine(t.Accent, IconRocket, fmt.Sprintf("Update available: %s %s %s",
		t.Highlight.Render(current), arrow, t.Highlight.Render(latest))))

	indent := func(s string) { sb.WriteString("     " + t.Subtle.Render(s) + "\n") }
	if releaseURL != "" {
		indent(releaseURL)
	}
	if excerpt := notesExcerpt(notes, notesLines); len(excerpt) > 0 {
		sb.WriteString("\n")
		for _, line := range excerpt {
			indent(line)
		}
	}
	return sb.String()
}

func (r *UpdateRenderer) RenderError(err error) string {
	return "\n" + r.theme.statusLine(r.theme.Error, IconX, fmt.Sprintf("Update check failed: %v", err))
}

// RenderDevBuild is shown instead of a verdict for unversioned builds,
// which are never offered an update.
func (r *UpdateRenderer) RenderDevBuild(latest string) string {
	msg := "Development build, not comparing versions"
	if latest != "" {
		msg += fmt.Sprintf(" (latest release is %s)", r.theme.Highlight.Render(latest))
	}
	return "\n" + r.theme.statusLine(r.theme.Warning, IconInfo, msg)
}

func (r *UpdateRenderer) RenderOpened(url string) string {
	return r.theme.statusLine(r.theme.Success, IconCheck, "Opened "+r.theme.Subtle.Render(url))
}

// notesExcerpt returns at most max lines of notes, with "..." appended
// when some were cut.
func notesExcerpt(notes string, max int) []string {
	notes = strings.TrimSpace(strings.ReplaceAll(notes, "\r\n", "\n"))
	if notes == "" {
		return nil
	}
	lines := strings.Split(notes, "\n")
	if len(lines) > max {
		lines = append(lines[:max:max], "...")
	}
	return lines
}
