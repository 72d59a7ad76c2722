package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
	"github.com/bnema/dumb-messenger/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dumb-messenger/internal/logging"
)

func testCtx() context.Context {
	logger := logging.New(logging.ConfigFromValues("debug", "console"))
	return logging.WithContext(context.Background(), logger)
}

func TestWindowStateRepository_EmptyReturnsNotFound(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "state.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = sqlite.NewWindowStateRepository(db, sqlite.MainWindow).Load(ctx)
	assert.ErrorIs(t, err, port.ErrNotFound)
	assert.ErrorIs(t, err, sqlite.ErrGeometryNotFound)
}

func TestWindowStateRepository_SaveAndLoad(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "state.sqlite")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	repo := sqlite.NewWindowStateRepository(db, sqlite.MainWindow)

	x, y := 40, 60
	want := entity.Geometry{X: &x, Y: &y, Width: 900, Height: 700, Maximized: true}
	require.NoError(t, repo.Save(ctx, want))

	// Overwrite keeps a single row.
	want.Width = 1024
	require.NoError(t, repo.Save(ctx, want))
	require.NoError(t, db.Close())

	// Reopening runs migrations again and must keep the data.
	db, err = sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	got, err := sqlite.NewWindowStateRepository(db, sqlite.MainWindow).Load(ctx)
	require.NoError(t, err)
	assert.True(t, want.Equal(got), "got %+v", got)

	var rows int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM window_state").Scan(&rows))
	assert.Equal(t, 1, rows)

	version, err := sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestWindowStateRepository_NilPosition(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "state.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := sqlite.NewWindowStateRepository(db, sqlite.MainWindow)

	require.NoError(t, repo.Save(ctx, entity.DefaultGeometry()))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got.X)
	assert.Nil(t, got.Y)
	assert.Equal(t, entity.DefaultWindowWidth, got.Width)
}

func TestWindowStateRepository_KeyedByName(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "state.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	main := sqlite.NewWindowStateRepository(db, sqlite.MainWindow)
	popup := sqlite.NewWindowStateRepository(db, "popup")

	require.NoError(t, main.Save(ctx, entity.Geometry{Width: 800, Height: 600}))

	_, err = popup.Load(ctx)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	assert.Error(t, err)
}
