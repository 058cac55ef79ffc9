package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/campusdir/core"
	"github.com/poiesic/campusdir/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) storage.HistoryRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func TestAddEntries(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	entries, err := repo.AddEntries(ctx, &core.HistoryEntry{
		Kind:  core.QueryKindPeople,
		Query: "omar khalil",
		Hits:  2,
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotZero(t, entries[0].Id)
	assert.False(t, entries[0].Timestamp.IsZero())

	got, err := repo.GetEntry(ctx, entries[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "omar khalil", got.Query)
	assert.Equal(t, 2, got.Hits)
}

func TestAddEntries_InvalidRejected(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.AddEntries(context.Background(), &core.HistoryEntry{Kind: core.QueryKindPeople})
	assert.ErrorIs(t, err, core.ErrInvalidHistoryEntry)
}

func TestGetEntry_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetEntry(context.Background(), core.ID(42))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetRecentEntries(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		_, err := repo.AddEntries(ctx, &core.HistoryEntry{
			Kind:      core.QueryKindPeople,
			Query:     string(rune('a' + i)),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	got, err := repo.GetRecentEntries(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "e", got[0].Query) // newest first
	assert.Equal(t, "d", got[1].Query)
	assert.Equal(t, "c", got[2].Query)

	_, err = repo.GetRecentEntries(ctx, 0)
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)
}

func TestGetStats(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddEntries(ctx,
		&core.HistoryEntry{Kind: core.QueryKindPeople, Query: "omar"},
		&core.HistoryEntry{Kind: core.QueryKindClubs, Query: "chess"},
		&core.HistoryEntry{Kind: core.QueryKindQuestion, Query: "office hours of omar", Intent: core.IntentOfficeHours},
	)
	require.NoError(t, err)

	stats, err := repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.ByKind[core.QueryKindPeople])
	assert.Equal(t, 1, stats.ByKind[core.QueryKindQuestion])
	assert.Equal(t, 1, stats.ByIntent[core.IntentOfficeHours])
}
