package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// DiscoverySampleSize is the number of products returned by the storefront
// discovery listing.
const DiscoverySampleSize = 6

// --- Input DTOs ---

// CreateProductInput defines the data required to create a product.
// Price is numeric and the remaining fields are text; a body that does not
// satisfy that shape is rejected before touching storage. Price is a pointer
// so an absent or null price fails validation instead of binding to 0.
type CreateProductInput struct {
	Title    string   `json:"title" validate:"required"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
	About    string   `json:"about" validate:"required"`
	Image    string   `json:"image" validate:"required"`
	Category string   `json:"cat" validate:"required"`
}

// UpdateProductInput defines the full-replace payload for a product update.
// Price follows the same absent-vs-zero distinction as on create.
type UpdateProductInput struct {
	Title string   `json:"title" validate:"required"`
	Price *float64 `json:"price" validate:"required,gte=0"`
	About string   `json:"about" validate:"required"`
	Image string   `json:"image" validate:"required"`
}

// CatalogUsecase defines the product catalog operations.
type CatalogUsecase interface {
	// Create inserts a new product and returns it with its generated id.
	Create(ctx context.Context, input CreateProductInput) (*entity.Product, error)

	// ListByCategory returns all products of a category, newest first.
	ListByCategory(ctx context.Context, category string) ([]*entity.Product, error)

	// ListRandomSample returns a best-effort random sample for storefront
	// discovery, limited to DiscoverySampleSize.
	ListRandomSample(ctx context.Context) ([]*entity.ProductSummary, error)

	// GetOne returns the product matching (category, id).
	GetOne(ctx context.Context, category string, id int) (*entity.Product, error)

	// Update replaces all four mutable fields of the product matching
	// (category, id). Concurrent writers race last-write-wins.
	Update(ctx context.Context, category string, id int, input UpdateProductInput) error
}
