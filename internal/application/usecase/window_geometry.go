package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
	"github.com/bnema/dumb-messenger/internal/logging"
)

// WindowGeometryUseCase restores and records the main window placement.
type WindowGeometryUseCase struct {
	store port.GeometryStore

	mu      sync.Mutex
	current entity.Geometry
	saved   entity.Geometry
}

// NewWindowGeometryUseCase creates a new window geometry use case.
func NewWindowGeometryUseCase(store port.GeometryStore) *WindowGeometryUseCase {
	return &WindowGeometryUseCase{
		store:   store,
		current: entity.DefaultGeometry(),
		saved:   entity.DefaultGeometry(),
	}
}

// Load returns the stored geometry, or the defaults when nothing usable is
// stored. It never fails.
func (uc *WindowGeometryUseCase) Load(ctx context.Context) entity.Geometry {
	log := logging.FromContext(ctx)

	g, err := uc.store.Load(ctx)
	switch {
	case errors.Is(err, port.ErrNotFound):
		log.Debug().Msg("no stored window geometry, using defaults")
		g = entity.DefaultGeometry()
	case err != nil:
		log.Warn().Err(err).Msg("failed to load window geometry, using defaults")
		g = entity.DefaultGeometry()
	}
	g = g.Normalized()

	uc.mu.Lock()
	uc.current = g
	uc.saved = g
	uc.mu.Unlock()

	return g
}

// Current returns the last tracked geometry.
func (uc *WindowGeometryUseCase) Current() entity.Geometry {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.current
}

// Track records a resize, move or state change and persists it. While the
// window is maximized or fullscreen the normal bounds are kept so that
// leaving that state restores them.
func (uc *WindowGeometryUseCase) Track(ctx context.Context, g entity.Geometry) {
	uc.mu.Lock()
	if g.Maximized || g.Fullscreen {
		g.X, g.Y = uc.current.X, uc.current.Y
		g.Width, g.Height = uc.current.Width, uc.current.Height
	}
	g = g.Normalized()
	if g.Equal(uc.current) {
		uc.mu.Unlock()
		return
	}
	uc.current = g
	uc.mu.Unlock()

	uc.persist(ctx, g)
}

// Flush persists the current geometry if it differs from the stored one.
// Called at shutdown.
func (uc *WindowGeometryUseCase) Flush(ctx context.Context) {
	uc.mu.Lock()
	g := uc.current
	dirty := !g.Equal(uc.saved)
	uc.mu.Unlock()

	if dirty {
		uc.persist(ctx, g)
	}
}

func (uc *WindowGeometryUseCase) persist(ctx context.Context, g entity.Geometry) {
	log := logging.FromContext(ctx)

	if err := uc.store.Save(ctx, g); err != nil {
		// In-memory geometry stays authoritative; Flush retries at shutdown.
		log.Warn().Err(err).Msg("failed to save window geometry")
		return
	}

	uc.mu.Lock()
	uc.saved = g
	uc.mu.Unlock()
}
