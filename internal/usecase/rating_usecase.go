package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// SubmitRatingInput defines a single rating submission.
type SubmitRatingInput struct {
	Rating   int    `json:"rating"`
	ItemID   int    `json:"item_id"`
	ItemType string `json:"item_type"`
}

// RatingUsecase defines the rating operations.
type RatingUsecase interface {
	// Submit appends a rating row. The rating must be within [1,5], the
	// item id present, and the item type one of the closed enum; violations
	// are rejected before touching storage.
	Submit(ctx context.Context, input SubmitRatingInput) (*entity.Rating, error)

	// Stats aggregates sum and count over all ratings of one item. Input is
	// validated with the same rules as Submit before querying.
	Stats(ctx context.Context, itemType string, itemID int) (*entity.RatingStats, error)
}
