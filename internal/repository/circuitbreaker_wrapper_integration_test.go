//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipper1953/carton-service/internal/circuitbreaker"
	"github.com/shipper1953/carton-service/internal/domain/model"
)

func TestBoxRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrapper := NewBoxRepositoryWithCircuitBreaker(NewBoxRepository(db), cb)

	t.Run("passes operations through a closed circuit", func(t *testing.T) {
		require.NoError(t, wrapper.SeedDefaults(ctx, []model.Box{
			{Name: "12x12x12 Cube", Type: model.BoxTypeMedium, Length: 12, Width: 12, Height: 12, MaxWeight: 20, Cost: 2, InStock: 100},
		}))

		docs, err := wrapper.ListActive(ctx)
		require.NoError(t, err)
		assert.Len(t, docs, 1)

		created, err := wrapper.Create(ctx, &BoxDocument{
			Name: "6x6x6 Cube", Type: "small", Length: 6, Width: 6, Height: 6, MaxWeight: 5,
		})
		require.NoError(t, err)

		fetched, err := wrapper.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "6x6x6 Cube", fetched.Name)

		created.InStock = 42
		updated, err := wrapper.Update(ctx, created.ID, created)
		require.NoError(t, err)
		assert.Equal(t, 42, updated.InStock)

		all, err := wrapper.List(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		assert.True(t, cb.GetStats().IsHealthy)
	})
}

func TestRecommendationRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrapper := NewRecommendationRepositoryWithCircuitBreaker(NewRecommendationRepository(db), cb)

	stored, err := wrapper.Upsert(ctx, &RecommendationDocument{
		OrderID: "ORD-1001",
		Mode:    "single",
		Single:  &model.CartonizationResult{Utilization: 57.9},
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-1001", stored.OrderID)

	fetched, err := wrapper.GetByOrderID(ctx, "ORD-1001")
	require.NoError(t, err)
	require.NotNil(t, fetched)

	docs, err := wrapper.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestLogsRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrapper := NewLogsRepositoryWithCircuitBreaker(NewLogsRepository(db), cb)

	require.NoError(t, wrapper.Create(ctx, &LogEntryDocument{Level: "info", Message: "one"}))
	require.NoError(t, wrapper.CreateMany(ctx, []*LogEntryDocument{
		{Level: "warn", Message: "two"},
		{Level: "error", Message: "three"},
	}))

	count, err := wrapper.Count(ctx, LogQueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	docs, err := wrapper.Query(ctx, LogQueryOptions{Level: "warn"})
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}
