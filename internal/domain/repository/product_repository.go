// Package repository defines the persistence interfaces the domain depends
// on, decoupling business logic from the concrete storage implementation.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrProductNotFound is returned when no product matches a (category, id)
// lookup, or when an update touches zero rows.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository provides access to the products table. Every method maps
// to a single parameterized statement.
type ProductRepository interface {
	// Create inserts a new product and fills in the generated identifier.
	Create(ctx context.Context, product *entity.Product) error

	// ListByCategory returns all products of a category, newest id first.
	// An empty category yields an empty slice, not an error.
	ListByCategory(ctx context.Context, category string) ([]*entity.Product, error)

	// ListRandom returns up to limit products sampled in best-effort random
	// order, as a partial projection for storefront discovery.
	ListRandom(ctx context.Context, limit int) ([]*entity.ProductSummary, error)

	// FindByCategoryAndID returns the product matching both keys, or
	// ErrProductNotFound.
	FindByCategoryAndID(ctx context.Context, category string, id int) (*entity.Product, error)

	// Update replaces title/price/about/image of the product matching both
	// keys. Zero affected rows yields ErrProductNotFound, even when the id
	// exists under a different category.
	Update(ctx context.Context, category string, id int, fields entity.ProductFields) error
}
