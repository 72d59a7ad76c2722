package window

import (
	"errors"
	"testing"
)

func TestWidgetCreationErrorsCompare(t *testing.T) {
	err := ErrWidgetCreationFailed("header")
	if !errors.Is(err, ErrWidgetCreationFailed("header")) {
		t.Fatalf("expected errors.Is to match the same widget name")
	}
	if errors.Is(err, ErrWidgetCreationFailed("popup")) {
		t.Fatalf("expected different widget names not to match")
	}
	if errors.Is(err, ErrWindowCreationFailed) {
		t.Fatalf("expected widget error not to match window error")
	}
	if got := err.Error(); got != "failed to create widget: header" {
		t.Fatalf("unexpected message %q", got)
	}
}
