package mysql

import (
	"context"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// ratingRepository implements the repository.RatingRepository interface.
type ratingRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB, cfg *config.Config) repository.RatingRepository {
	return &ratingRepository{
		db:      db,
		timeout: queryTimeout(cfg),
	}
}

// Create appends a rating row and fills in the generated identifier.
func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	ratingM := &model.RatingModel{
		ItemID:   rating.ItemID,
		ItemType: string(rating.ItemType),
		Rating:   rating.Value,
	}

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store rating")
	}

	rating.ID = ratingM.ID

	return nil
}

// Stats aggregates sum and count over all ratings of one item in a single
// statement. COALESCE keeps the sum at 0 when no rows match.
func (repo *ratingRepository) Stats(ctx context.Context, itemType entity.ItemType, itemID int) (*entity.RatingStats, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	var stats entity.RatingStats
	if err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("COALESCE(SUM(rating), 0) AS total_rating, COUNT(*) AS rating_count").
		Where("item_id = ? AND item_type = ?", itemID, string(itemType)).
		Scan(&stats).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate ratings")
	}

	return &stats, nil
}
