package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCSS(t *testing.T) {
	css := GenerateCSS(DefaultPalette())

	for _, selector := range []string{".unread-badge-label", ".prompt-card", ".prompt-title", ".prompt-error"} {
		assert.Contains(t, css, selector)
	}
	assert.Contains(t, css, "#FF3B30")
	assert.Equal(t, strings.Count(css, "{"), strings.Count(css, "}"), "unbalanced braces")
}
