package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// RatingRepository provides access to the append-only ratings table.
type RatingRepository interface {
	// Create appends a rating row and fills in the generated identifier.
	Create(ctx context.Context, rating *entity.Rating) error

	// Stats aggregates sum and count over all ratings of one item. The sum
	// is 0 when no rows match; the count is reported as-is.
	Stats(ctx context.Context, itemType entity.ItemType, itemID int) (*entity.RatingStats, error)
}
