package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/application/port/mocks"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
)

func intp(v int) *int { return &v }

func TestWindowGeometry_LoadDefaultsWhenMissing(t *testing.T) {
	store := mocks.NewMockGeometryStore(t)
	store.EXPECT().Load(mock.Anything).Return(entity.Geometry{}, fmt.Errorf("window main: %w", port.ErrNotFound)).Once()

	uc := NewWindowGeometryUseCase(store)
	g := uc.Load(context.Background())

	assert.Equal(t, 640, g.Width)
	assert.Equal(t, 800, g.Height)
	assert.Nil(t, g.X)
}

func TestWindowGeometry_LoadDefaultsOnError(t *testing.T) {
	store := mocks.NewMockGeometryStore(t)
	store.EXPECT().Load(mock.Anything).Return(entity.Geometry{}, errors.New("database is locked")).Once()

	uc := NewWindowGeometryUseCase(store)

	assert.Equal(t, entity.DefaultGeometry(), uc.Load(context.Background()))
}

func TestWindowGeometry_LoadClampsDegenerateSizes(t *testing.T) {
	store := mocks.NewMockGeometryStore(t)
	store.EXPECT().Load(mock.Anything).Return(entity.Geometry{Width: 10, Height: 0}, nil).Once()

	uc := NewWindowGeometryUseCase(store)
	g := uc.Load(context.Background())

	assert.Equal(t, entity.MinWindowWidth, g.Width)
	assert.Equal(t, entity.MinWindowHeight, g.Height)
}

func TestWindowGeometry_TrackPersistsChanges(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockGeometryStore(t)
	store.EXPECT().Load(mock.Anything).Return(entity.DefaultGeometry(), nil).Once()

	resized := entity.Geometry{X: intp(10), Y: intp(20), Width: 900, Height: 700}
	store.EXPECT().Save(mock.Anything, resized).Return(nil).Once()

	uc := NewWindowGeometryUseCase(store)
	uc.Load(ctx)
	uc.Track(ctx, resized)
	uc.Track(ctx, entity.Geometry{X: intp(10), Y: intp(20), Width: 900, Height: 700})
	uc.Flush(ctx)

	assert.Equal(t, resized, uc.Current())
}

func TestWindowGeometry_MaximizedKeepsNormalBounds(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockGeometryStore(t)
	store.EXPECT().Load(mock.Anything).Return(entity.Geometry{Width: 900, Height: 700}, nil).Once()
	store.EXPECT().
		Save(mock.Anything, entity.Geometry{Width: 900, Height: 700, Maximized: true}).
		Return(nil).
		Once()

	uc := NewWindowGeometryUseCase(store)
	uc.Load(ctx)
	uc.Track(ctx, entity.Geometry{Width: 2560, Height: 1400, Maximized: true})
}

func TestWindowGeometry_FlushRetriesFailedWrite(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockGeometryStore(t)
	store.EXPECT().Load(mock.Anything).Return(entity.DefaultGeometry(), nil).Once()

	resized := entity.Geometry{Width: 1000, Height: 900}
	store.EXPECT().Save(mock.Anything, resized).Return(errors.New("disk full")).Once()
	store.EXPECT().Save(mock.Anything, resized).Return(nil).Once()

	uc := NewWindowGeometryUseCase(store)
	uc.Load(ctx)
	uc.Track(ctx, resized)
	uc.Flush(ctx)
	uc.Flush(ctx)
}
