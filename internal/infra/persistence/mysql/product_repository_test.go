package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

func TestProductRepository_CreateAndFind(t *testing.T) {
	repo := NewProductRepository(newTestDB(t), newTestConfig())
	ctx := context.Background()

	product := &entity.Product{
		Title:    "Blue Tee",
		Price:    19.99,
		About:    "A blue t-shirt",
		Image:    "https://example.com/blue.png",
		Category: "shirts",
	}
	require.NoError(t, repo.Create(ctx, product))
	assert.NotZero(t, product.ID)

	found, err := repo.FindByCategoryAndID(ctx, "shirts", product.ID)
	require.NoError(t, err)
	assert.Equal(t, product, found)
}

func TestProductRepository_FindByCategoryAndID_NotFound(t *testing.T) {
	repo := NewProductRepository(newTestDB(t), newTestConfig())
	ctx := context.Background()

	found, err := repo.FindByCategoryAndID(ctx, "shirts", 999)
	require.Error(t, err)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_FindByCategoryAndID_CategoryMustMatch(t *testing.T) {
	repo := NewProductRepository(newTestDB(t), newTestConfig())
	ctx := context.Background()

	product := &entity.Product{Title: "Blue Tee", Category: "shirts"}
	require.NoError(t, repo.Create(ctx, product))

	// Same id under a different category is not a match.
	found, err := repo.FindByCategoryAndID(ctx, "mugs", product.ID)
	require.Error(t, err)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_ListByCategory_NewestFirst(t *testing.T) {
	repo := NewProductRepository(newTestDB(t), newTestConfig())
	ctx := context.Background()

	first := &entity.Product{Title: "First", Category: "shirts"}
	second := &entity.Product{Title: "Second", Category: "shirts"}
	other := &entity.Product{Title: "Other", Category: "mugs"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, other))

	products, err := repo.ListByCategory(ctx, "shirts")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Second", products[0].Title)
	assert.Equal(t, "First", products[1].Title)
}

func TestProductRepository_ListByCategory_UnknownCategoryIsEmpty(t *testing.T) {
	repo := NewProductRepository(newTestDB(t), newTestConfig())
	ctx := context.Background()

	products, err := repo.ListByCategory(ctx, "hats")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductRepository_ListRandom(t *testing.T) {
	repo := NewProductRepository(newTestDB(t), newTestConfig())
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Product{
			Title:    "Tee",
			About:    "About text never leaves the table here",
			Category: "shirts",
		}))
	}

	summaries, err := repo.ListRandom(ctx, 6)
	require.NoError(t, err)
	assert.Len(t, summaries, 6)
	for _, summary := range summaries {
		assert.NotZero(t, summary.ID)
		assert.Equal(t, "Tee", summary.Title)
		assert.Equal(t, "shirts", summary.Category)
	}
}

func TestProductRepository_ListRandom_FewerRowsThanLimit(t *testing.T) {
	repo := NewProductRepository(newTestDB(t), newTestConfig())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Product{Title: "Only", Category: "shirts"}))

	summaries, err := repo.ListRandom(ctx, 6)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestProductRepository_Update(t *testing.T) {
	repo := NewProductRepository(newTestDB(t), newTestConfig())
	ctx := context.Background()

	product := &entity.Product{
		Title:    "Blue Tee",
		Price:    19.99,
		About:    "A blue t-shirt",
		Image:    "https://example.com/blue.png",
		Category: "shirts",
	}
	require.NoError(t, repo.Create(ctx, product))

	err := repo.Update(ctx, "shirts", product.ID, entity.ProductFields{
		Title: "Renamed Tee",
		Price: 24.5,
		About: "Updated copy",
		Image: "https://example.com/new.png",
	})
	require.NoError(t, err)

	found, err := repo.FindByCategoryAndID(ctx, "shirts", product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Tee", found.Title)
	assert.Equal(t, 24.5, found.Price)
	assert.Equal(t, "Updated copy", found.About)
	assert.Equal(t, "https://example.com/new.png", found.Image)
	// The category key itself never changes on update.
	assert.Equal(t, "shirts", found.Category)
}

func TestProductRepository_Update_NotFound(t *testing.T) {
	repo := NewProductRepository(newTestDB(t), newTestConfig())
	ctx := context.Background()

	err := repo.Update(ctx, "shirts", 999, entity.ProductFields{Title: "Renamed Tee"})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_Update_WrongCategory(t *testing.T) {
	repo := NewProductRepository(newTestDB(t), newTestConfig())
	ctx := context.Background()

	product := &entity.Product{Title: "Blue Tee", Category: "shirts"}
	require.NoError(t, repo.Create(ctx, product))

	err := repo.Update(ctx, "mugs", product.ID, entity.ProductFields{Title: "Renamed Tee"})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	// The row is untouched.
	found, err := repo.FindByCategoryAndID(ctx, "shirts", product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blue Tee", found.Title)
}
