package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRatingServiceForTest(t *testing.T) (usecase.RatingUsecase, *mockRepo.MockRatingRepository) {
	ratingRepo := mockRepo.NewMockRatingRepository(t)
	svc := NewRatingService(RatingServiceParams{
		RatingRepo: ratingRepo,
		Logger:     newDiscardLogger(),
	})

	return svc, ratingRepo
}

func TestRatingService_Submit_Success(t *testing.T) {
	svc, ratingRepo := newRatingServiceForTest(t)
	ctx := context.Background()

	ratingRepo.EXPECT().
		Create(ctx, &entity.Rating{ItemID: 3, ItemType: entity.ItemTypeTShirt, Value: 5}).
		Run(func(ctx context.Context, rating *entity.Rating) {
			rating.ID = 11
		}).
		Return(nil)

	rating, err := svc.Submit(ctx, usecase.SubmitRatingInput{Rating: 5, ItemID: 3, ItemType: "tshirt"})

	require.NoError(t, err)
	assert.Equal(t, 11, rating.ID)
	assert.Equal(t, 3, rating.ItemID)
	assert.Equal(t, entity.ItemTypeTShirt, rating.ItemType)
	assert.Equal(t, 5, rating.Value)
}

func TestRatingService_Submit_InvalidRatingValue(t *testing.T) {
	// The repository mock has no expectations: an out-of-range rating must
	// never reach storage.
	svc, _ := newRatingServiceForTest(t)
	ctx := context.Background()

	for _, value := range []int{0, -1, 6, 100} {
		rating, err := svc.Submit(ctx, usecase.SubmitRatingInput{Rating: value, ItemID: 3, ItemType: "tshirt"})

		require.Error(t, err, "rating %d should be rejected", value)
		assert.Nil(t, rating)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
	}
}

func TestRatingService_Submit_InvalidItem(t *testing.T) {
	svc, _ := newRatingServiceForTest(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		itemID   int
		itemType string
	}{
		{"zero item id", 0, "tshirt"},
		{"negative item id", -5, "mug"},
		{"unknown item type", 3, "hat"},
		{"empty item type", 3, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rating, err := svc.Submit(ctx, usecase.SubmitRatingInput{Rating: 4, ItemID: tc.itemID, ItemType: tc.itemType})

			require.Error(t, err)
			assert.Nil(t, rating)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidItem)
		})
	}
}

func TestRatingService_Submit_RepositoryError(t *testing.T) {
	svc, ratingRepo := newRatingServiceForTest(t)
	ctx := context.Background()

	ratingRepo.EXPECT().
		Create(ctx, &entity.Rating{ItemID: 3, ItemType: entity.ItemTypeMug, Value: 2}).
		Return(errors.New("connection refused"))

	rating, err := svc.Submit(ctx, usecase.SubmitRatingInput{Rating: 2, ItemID: 3, ItemType: "mug"})

	require.Error(t, err)
	assert.Nil(t, rating)
	assert.Contains(t, err.Error(), "failed to store rating")
}

func TestRatingService_Stats_Success(t *testing.T) {
	svc, ratingRepo := newRatingServiceForTest(t)
	ctx := context.Background()

	stats := &entity.RatingStats{TotalRating: 12, RatingCount: 3}
	ratingRepo.EXPECT().Stats(ctx, entity.ItemTypeTShirt, 3).Return(stats, nil)

	got, err := svc.Stats(ctx, "tshirt", 3)

	require.NoError(t, err)
	assert.Equal(t, stats, got)
}

func TestRatingService_Stats_InvalidItem(t *testing.T) {
	svc, _ := newRatingServiceForTest(t)
	ctx := context.Background()

	got, err := svc.Stats(ctx, "hat", 3)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidItem)

	got, err = svc.Stats(ctx, "tshirt", 0)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidItem)
}
