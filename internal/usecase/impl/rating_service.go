package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	ratingRepo repository.RatingRepository
	logger     *slog.Logger
}

// RatingServiceParams holds dependencies for ratingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	RatingRepo repository.RatingRepository
	Logger     *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		ratingRepo: params.RatingRepo,
		logger:     params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit appends a rating row after validating the submission.
func (srv *ratingService) Submit(ctx context.Context, input usecase.SubmitRatingInput) (*entity.Rating, error) {
	if input.Rating < entity.MinRatingValue || input.Rating > entity.MaxRatingValue {
		return nil, domainerrors.ErrInvalidRating
	}

	itemType := entity.ItemType(input.ItemType)
	if input.ItemID <= 0 || !itemType.Valid() {
		return nil, domainerrors.ErrInvalidItem
	}

	rating := &entity.Rating{
		ItemID:   input.ItemID,
		ItemType: itemType,
		Value:    input.Rating,
	}

	if err := srv.ratingRepo.Create(ctx, rating); err != nil {
		srv.log(ctx).Error("Failed to store rating", slog.Int("itemId", input.ItemID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store rating")
	}

	srv.log(ctx).Debug("Rating stored",
		slog.Int("itemId", rating.ItemID),
		slog.String("itemType", string(rating.ItemType)),
		slog.Int("rating", rating.Value),
	)

	return rating, nil
}

// Stats aggregates sum and count over all ratings of one item.
func (srv *ratingService) Stats(ctx context.Context, itemType string, itemID int) (*entity.RatingStats, error) {
	typed := entity.ItemType(itemType)
	if itemID <= 0 || !typed.Valid() {
		return nil, domainerrors.ErrInvalidItem
	}

	stats, err := srv.ratingRepo.Stats(ctx, typed, itemID)
	if err != nil {
		srv.log(ctx).Error("Failed to aggregate ratings", slog.Int("itemId", itemID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to aggregate ratings")
	}

	return stats, nil
}
