package port

import (
	"context"

	"github.com/bnema/dumb-messenger/internal/domain/entity"
)

// BadgeRenderer rasterizes the unread badge.
type BadgeRenderer interface {
	// Render returns an encoded PNG of the badge showing label.
	Render(label string) ([]byte, error)
}

// BadgeSurface is where badge updates are applied (window overlay,
// launcher entry). Apply must be a no-op once the window is gone.
type BadgeSurface interface {
	Apply(ctx context.Context, update entity.BadgeUpdate)
}
