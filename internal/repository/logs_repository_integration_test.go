//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)

	t.Run("create fills id and timestamp", func(t *testing.T) {
		entry := &LogEntryDocument{
			Level:      "info",
			Message:    "request completed",
			Method:     "POST",
			Path:       "/api/cartonize",
			StatusCode: 200,
		}
		require.NoError(t, repo.Create(ctx, entry))
		assert.False(t, entry.ID.IsZero())
		assert.False(t, entry.Timestamp.IsZero())
	})

	t.Run("create many", func(t *testing.T) {
		entries := []*LogEntryDocument{
			{Level: "warn", Message: "slow request", Method: "POST", Path: "/api/cartonize/multi", StatusCode: 200},
			{Level: "error", Message: "downstream failure", Method: "GET", Path: "/api/boxes", StatusCode: 500, RequestID: "req-42"},
		}
		require.NoError(t, repo.CreateMany(ctx, entries))

		// Empty batch is a no-op.
		assert.NoError(t, repo.CreateMany(ctx, nil))
	})

	t.Run("query by level", func(t *testing.T) {
		docs, err := repo.Query(ctx, LogQueryOptions{Level: "error"})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "downstream failure", docs[0].Message)
	})

	t.Run("query by request id", func(t *testing.T) {
		docs, err := repo.Query(ctx, LogQueryOptions{RequestID: "req-42"})
		require.NoError(t, err)
		assert.Len(t, docs, 1)
	})

	t.Run("query by path regex", func(t *testing.T) {
		docs, err := repo.Query(ctx, LogQueryOptions{Path: "cartonize"})
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("query with limit and skip", func(t *testing.T) {
		page1, err := repo.Query(ctx, LogQueryOptions{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, page1, 2)

		page2, err := repo.Query(ctx, LogQueryOptions{Limit: 2, Skip: 2})
		require.NoError(t, err)
		assert.Len(t, page2, 1)
	})

	t.Run("query by time range", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		future := time.Now().Add(time.Hour)

		docs, err := repo.Query(ctx, LogQueryOptions{StartTime: &past, EndTime: &future})
		require.NoError(t, err)
		assert.Len(t, docs, 3)

		docs, err = repo.Query(ctx, LogQueryOptions{StartTime: &future})
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("count", func(t *testing.T) {
		count, err := repo.Count(ctx, LogQueryOptions{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		count, err = repo.Count(ctx, LogQueryOptions{Level: "warn"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestSetLogsTTL_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	assert.NoError(t, db.SetLogsTTL(ctx, 30))
	// Re-applying the same TTL succeeds.
	assert.NoError(t, db.SetLogsTTL(ctx, 30))
}
