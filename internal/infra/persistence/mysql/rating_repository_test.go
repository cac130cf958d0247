package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
)

func TestRatingRepository_CreateAndStats(t *testing.T) {
	repo := NewRatingRepository(newTestDB(t), newTestConfig())
	ctx := context.Background()

	for _, value := range []int{5, 3, 4} {
		rating := &entity.Rating{ItemID: 3, ItemType: entity.ItemTypeTShirt, Value: value}
		require.NoError(t, repo.Create(ctx, rating))
		assert.NotZero(t, rating.ID)
	}

	stats, err := repo.Stats(ctx, entity.ItemTypeTShirt, 3)
	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalRating)
	assert.Equal(t, 3, stats.RatingCount)
}

func TestRatingRepository_Stats_EmptyItem(t *testing.T) {
	repo := NewRatingRepository(newTestDB(t), newTestConfig())
	ctx := context.Background()

	stats, err := repo.Stats(ctx, entity.ItemTypeMug, 42)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalRating)
	assert.Equal(t, 0, stats.RatingCount)
}

func TestRatingRepository_Stats_ScopedToItemAndType(t *testing.T) {
	repo := NewRatingRepository(newTestDB(t), newTestConfig())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Rating{ItemID: 3, ItemType: entity.ItemTypeTShirt, Value: 5}))
	require.NoError(t, repo.Create(ctx, &entity.Rating{ItemID: 3, ItemType: entity.ItemTypeMug, Value: 1}))
	require.NoError(t, repo.Create(ctx, &entity.Rating{ItemID: 4, ItemType: entity.ItemTypeTShirt, Value: 2}))

	stats, err := repo.Stats(ctx, entity.ItemTypeTShirt, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalRating)
	assert.Equal(t, 1, stats.RatingCount)
}

func TestRatingRepository_RepeatRatingsAccumulate(t *testing.T) {
	repo := NewRatingRepository(newTestDB(t), newTestConfig())
	ctx := context.Background()

	// The table is append-only with no rater identity, so repeated identical
	// submissions each add a row.
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Rating{ItemID: 7, ItemType: entity.ItemTypeMug, Value: 5}))
	}

	stats, err := repo.Stats(ctx, entity.ItemTypeMug, 7)
	require.NoError(t, err)
	assert.Equal(t, 15, stats.TotalRating)
	assert.Equal(t, 3, stats.RatingCount)
}
