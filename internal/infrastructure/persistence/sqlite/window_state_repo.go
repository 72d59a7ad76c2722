package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
	"github.com/bnema/dumb-messenger/internal/logging"
)

const (
	selectWindowState = `SELECT x, y, width, height, maximized, fullscreen
FROM window_state WHERE name = ?`

	upsertWindowState = `INSERT INTO window_state (name, x, y, width, height, maximized, fullscreen, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(name) DO UPDATE SET
    x = excluded.x,
    y = excluded.y,
    width = excluded.width,
    height = excluded.height,
    maximized = excluded.maximized,
    fullscreen = excluded.fullscreen,
    updated_at = excluded.updated_at`
)

// MainWindow is the row key of the main window.
const MainWindow = "main"

// ErrGeometryNotFound is returned by Load before the first Save.
var ErrGeometryNotFound = fmt.Errorf("window geometry: %w", port.ErrNotFound)

type windowStateRepo struct {
	db   *sql.DB
	name string
}

// NewWindowStateRepository creates a SQLite-backed geometry store for the
// window identified by name.
func NewWindowStateRepository(db *sql.DB, name string) port.GeometryStore {
	return &windowStateRepo{db: db, name: name}
}

func (r *windowStateRepo) Load(ctx context.Context) (entity.Geometry, error) {
	var (
		x, y                  sql.NullInt64
		g                     entity.Geometry
		maximized, fullscreen int64
	)

	err := r.db.QueryRowContext(ctx, selectWindowState, r.name).
		Scan(&x, &y, &g.Width, &g.Height, &maximized, &fullscreen)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Geometry{}, ErrGeometryNotFound
	}
	if err != nil {
		return entity.Geometry{}, fmt.Errorf("load window state: %w", err)
	}

	g.X = fromNullInt(x)
	g.Y = fromNullInt(y)
	g.Maximized = maximized != 0
	g.Fullscreen = fullscreen != 0
	return g, nil
}

func (r *windowStateRepo) Save(ctx context.Context, g entity.Geometry) error {
	log := logging.FromContext(ctx)
	log.Debug().
		Int("width", g.Width).
		Int("height", g.Height).
		Bool("maximized", g.Maximized).
		Bool("fullscreen", g.Fullscreen).
		Str("window", r.name).
		Msg("saving window state")

	_, err := r.db.ExecContext(ctx, upsertWindowState, r.name,
		toNullInt(g.X), toNullInt(g.Y), g.Width, g.Height,
		boolToInt(g.Maximized), boolToInt(g.Fullscreen))
	if err != nil {
		return fmt.Errorf("save window state: %w", err)
	}
	return nil
}

func toNullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func fromNullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
