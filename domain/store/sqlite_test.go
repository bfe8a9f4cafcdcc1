package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shengwang-Community/ShengwangBeautyView/domain/beauty"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLatest(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.LatestSnapshot(ctx, beauty.ModuleFilter)
	assert.ErrorIs(t, err, ErrNotFound)

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	first, err := s.SaveSnapshot(ctx, Snapshot{
		Module:    beauty.ModuleFilter,
		Template:  beauty.FilterSerene,
		Floats:    map[string]float64{"filter_effect_option/strength": 0.4},
		CreatedAt: base,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := s.SaveSnapshot(ctx, Snapshot{
		Module:    beauty.ModuleFilter,
		Template:  beauty.FilterUrban,
		Floats:    map[string]float64{"filter_effect_option/strength": 0.9},
		CreatedAt: base.Add(time.Second),
	})
	require.NoError(t, err)

	got, err := s.LatestSnapshot(ctx, beauty.ModuleFilter)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
	assert.Equal(t, beauty.FilterUrban, got.Template)
	assert.Equal(t, 0.9, got.Floats["filter_effect_option/strength"])
	assert.True(t, got.CreatedAt.Equal(base.Add(time.Second)))
}

func TestLatestWithinOneMillisecond(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var last Snapshot
	for _, strength := range []float64{0.1, 0.2, 0.3, 0.4, 0.5} {
		snap, err := s.SaveSnapshot(ctx, Snapshot{
			Module:    beauty.ModuleSticker,
			Template:  beauty.StickerPiggy,
			Floats:    map[string]float64{"sticker_effect_option/strength": strength},
			CreatedAt: at,
		})
		require.NoError(t, err)
		last = snap
	}

	got, err := s.LatestSnapshot(ctx, beauty.ModuleSticker)
	require.NoError(t, err)
	assert.Equal(t, last.ID, got.ID)
	assert.Equal(t, 0.5, got.Floats["sticker_effect_option/strength"])
}

func TestSnapshotRoundTripsAllValueKinds(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.SaveSnapshot(ctx, Snapshot{
		Module: beauty.ModuleBeauty,
		Floats: map[string]float64{"beauty_effect_option/smoothness": 0.25},
		Ints:   map[string]int{"face_shape_beauty_option/style": 2},
		Areas:  map[int]int{int(beauty.AreaChin): -40},
	})
	require.NoError(t, err)

	got, err := s.LatestSnapshot(ctx, beauty.ModuleBeauty)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Len())
	assert.Equal(t, 2, got.Ints["face_shape_beauty_option/style"])
	assert.Equal(t, -40, got.Areas[int(beauty.AreaChin)])
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, m := range []beauty.Module{beauty.ModuleBeauty, beauty.ModuleFilter, beauty.ModuleFilter} {
		_, err := s.SaveSnapshot(ctx, Snapshot{Module: m})
		require.NoError(t, err)
	}

	all, err := s.ListSnapshots(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filters, err := s.ListSnapshots(ctx, beauty.ModuleFilter, 1)
	require.NoError(t, err)
	assert.Len(t, filters, 1)

	n, err := s.DeleteSnapshots(ctx, beauty.ModuleFilter)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	_, err = s.LatestSnapshot(ctx, beauty.ModuleFilter)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveRejectsInvalidModule(t *testing.T) {
	s := newTestStore(t)
	_, err := s.SaveSnapshot(context.Background(), Snapshot{Module: 3})
	assert.Error(t, err)
}
