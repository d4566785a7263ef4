package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/riordanpawley/kingdoms/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func standings(ranks map[string]int) []domain.Standing {
	out := make([]domain.Standing, 0, len(ranks))
	for id, r := range ranks {
		out = append(out, domain.Standing{Kingdom: domain.Kingdom{ID: id, Score: 1000 - r}, Rank: r})
	}
	return out
}

var (
	day1 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	day2 = day1.Add(24 * time.Hour)
	day3 = day2.Add(24 * time.Hour)
)

func TestStore_Empty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	ranks, err := s.LatestRanks(ctx)
	require.NoError(t, err)
	assert.Empty(t, ranks)
	assert.NotNil(t, ranks)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_RecordAndLatest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, created, err := s.Record(ctx, "S1", day1, standings(map[string]int{"a": 1, "b": 2}))
	require.NoError(t, err)
	assert.True(t, created)

	_, _, err = s.Record(ctx, "S1", day2, standings(map[string]int{"a": 2, "b": 1, "c": 3}))
	require.NoError(t, err)

	latest, err := s.LatestRanks(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 2, "b": 1, "c": 3}, latest)

	before, err := s.RanksBefore(ctx, day2)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, before)

	none, err := s.RanksBefore(ctx, day1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_RecordIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id1, created1, err := s.Record(ctx, "S1", day1, standings(map[string]int{"a": 1}))
	require.NoError(t, err)
	id2, created2, err := s.Record(ctx, "S1", day1, standings(map[string]int{"a": 1}))
	require.NoError(t, err)

	assert.True(t, created1)
	assert.False(t, created2)
	assert.Equal(t, id1, id2)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_RecordRejectsDuplicateKingdoms(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	dup := []domain.Standing{
		{Kingdom: domain.Kingdom{ID: "a"}, Rank: 1},
		{Kingdom: domain.Kingdom{ID: "a"}, Rank: 2},
	}
	_, _, err := s.Record(ctx, "S1", day1, dup)

	var storeErr *domain.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "record", storeErr.Op)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "failed record is rolled back")
}

func TestStore_Trend(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i, day := range []time.Time{day1, day2, day3} {
		_, _, err := s.Record(ctx, "S1", day, standings(map[string]int{"a": 3 - i, "b": 4}))
		require.NoError(t, err)
	}

	trend, err := s.Trend(ctx, "a", 2)
	require.NoError(t, err)
	require.Len(t, trend, 2)
	assert.Equal(t, 2, trend[0].Rank, "oldest of the window first")
	assert.Equal(t, 1, trend[1].Rank)
	assert.True(t, trend[1].TakenAt.Equal(day3))

	all, err := s.Trend(ctx, "a", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	missing, err := s.Trend(ctx, "zzz", 5)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestStore_Clear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, _, err := s.Record(ctx, "S1", day1, standings(map[string]int{"a": 1}))
	require.NoError(t, err)

	require.NoError(t, s.Clear(ctx))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	latest, err := s.LatestRanks(ctx)
	require.NoError(t, err)
	assert.Empty(t, latest)
}

func TestStore_InMemory(t *testing.T) {
	s, err := Open(":memory:", nil)
	require.NoError(t, err)
	defer s.Close()

	_, _, err = s.Record(context.Background(), "S1", day1, standings(map[string]int{"a": 1}))
	require.NoError(t, err)

	latest, err := s.LatestRanks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1}, latest)
}
