package port

import (
	"context"

	"github.com/bnema/dumb-messenger/internal/domain/entity"
)

// GeometryStore persists the main window placement.
type GeometryStore interface {
	// Load returns the stored geometry. It returns an error wrapping
	// ErrNotFound when nothing was stored yet.
	Load(ctx context.Context) (entity.Geometry, error)
	Save(ctx context.Context, g entity.Geometry) error
}

// PreferencesStore persists the user preferences.
type PreferencesStore interface {
	LoadPreferences(ctx context.Context) (entity.Preferences, error)
	SavePreferences(ctx context.Context, p entity.Preferences) error
}
