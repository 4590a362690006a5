package repository

import (
	"context"
	"testing"

	"github.com/GoSim-25-26J-441/project-verification/internal/verification/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	p := &domain.Project{ProjectID: "p1", Owner: "alice", Timestamp: 100}
	require.NoError(t, store.Insert(ctx, p))

	t.Run("rejects duplicate ids", func(t *testing.T) {
		err := store.Insert(ctx, &domain.Project{ProjectID: "p1", Owner: "mallory", Timestamp: 200})
		assert.ErrorIs(t, err, domain.ErrDuplicateProject)

		got, err := store.Get(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Owner)
		assert.Equal(t, uint64(100), got.Timestamp)
	})

	t.Run("get returns a copy", func(t *testing.T) {
		got, err := store.Get(ctx, "p1")
		require.NoError(t, err)
		got.TechnicalScore = 99

		again, err := store.Get(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), again.TechnicalScore)
	})

	t.Run("update existing", func(t *testing.T) {
		updated := *p
		updated.TechnicalScore = 80
		updated.FinancialScore = 75
		require.NoError(t, store.Update(ctx, &updated))

		got, err := store.Get(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, int64(80), got.TechnicalScore)
		assert.Equal(t, int64(75), got.FinancialScore)
	})

	t.Run("missing project", func(t *testing.T) {
		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, store.Update(ctx, &domain.Project{ProjectID: "nope"}), domain.ErrNotFound)
	})

	t.Run("list is ordered by height then id", func(t *testing.T) {
		require.NoError(t, store.Insert(ctx, &domain.Project{ProjectID: "b", Timestamp: 50}))
		require.NoError(t, store.Insert(ctx, &domain.Project{ProjectID: "a", Timestamp: 50}))

		items, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, []string{"a", "b", "p1"}, []string{items[0].ProjectID, items[1].ProjectID, items[2].ProjectID})
	})

	assert.NoError(t, store.Ping(ctx))
}
