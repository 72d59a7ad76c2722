package browser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpener_OpenURL(t *testing.T) {
	var opened []string
	o := &Opener{open: func(u string) error {
		opened = append(opened, u)
		return nil
	}}

	require.NoError(t, o.OpenURL(context.Background(), "https://example.com/a?b=c"))
	assert.Equal(t, []string{"https://example.com/a?b=c"}, opened)
}

func TestOpener_RejectsSchemeless(t *testing.T) {
	o := &Opener{open: func(string) error {
		t.Fatal("open must not be called")
		return nil
	}}

	assert.Error(t, o.OpenURL(context.Background(), "example.com"))
}

func TestOpener_PropagatesFailure(t *testing.T) {
	o := &Opener{open: func(string) error { return assert.AnError }}

	err := o.OpenURL(context.Background(), "mailto:someone@example.com")
	assert.ErrorIs(t, err, assert.AnError)
}
