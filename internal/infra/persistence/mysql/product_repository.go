package mysql

import (
	"context"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB, cfg *config.Config) repository.ProductRepository {
	return &productRepository{
		db:      db,
		timeout: queryTimeout(cfg),
	}
}

// Create persists a new product and fills in the generated identifier.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID

	return nil
}

// ListByCategory returns all products of a category, newest id first.
func (repo *productRepository) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	var productsM []model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("cat = ?", category).
		Order("id DESC").
		Find(&productsM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products by category")
	}

	products := make([]*entity.Product, 0, len(productsM))
	for i := range productsM {
		products = append(products, toProductDomain(&productsM[i]))
	}

	return products, nil
}

// ListRandom returns up to limit products in storage-side random order, as a
// partial projection. Randomness is best-effort.
func (repo *productRepository) ListRandom(ctx context.Context, limit int) ([]*entity.ProductSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	var productsM []model.ProductModel
	if err := repo.db.WithContext(ctx).
		Select("id", "title", "price", "image", "cat").
		Order(randomOrderExpr(repo.db)).
		Limit(limit).
		Find(&productsM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list random products")
	}

	summaries := make([]*entity.ProductSummary, 0, len(productsM))
	for i := range productsM {
		productM := &productsM[i]
		summaries = append(summaries, &entity.ProductSummary{
			ID:       productM.ID,
			Title:    productM.Title,
			Price:    productM.Price,
			Image:    productM.Image,
			Category: productM.Cat,
		})
	}

	return summaries, nil
}

// FindByCategoryAndID returns the product matching both keys.
func (repo *productRepository) FindByCategoryAndID(ctx context.Context, category string, id int) (*entity.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("cat = ? AND id = ?", category, id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// Update replaces title/price/about/image of the product matching both keys.
// Zero affected rows is reported as not found, even when the id exists under
// a different category.
func (repo *productRepository) Update(ctx context.Context, category string, id int, fields entity.ProductFields) error {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	// A map keeps zero values in the statement; this is a full replace.
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND cat = ?", id, category).
		Updates(map[string]any{
			"title": fields.Title,
			"price": fields.Price,
			"about": fields.About,
			"image": fields.Image,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// randomOrderExpr picks the dialect's random ordering function. Production
// runs on MySQL; the sqlite branch keeps the in-memory test dialector working.
func randomOrderExpr(db *gorm.DB) string {
	if db.Dialector.Name() == "sqlite" {
		return "RANDOM()"
	}

	return "RAND()"
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:    product.ID,
		Title: product.Title,
		Price: product.Price,
		About: product.About,
		Image: product.Image,
		Cat:   product.Category,
	}
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:       productM.ID,
		Title:    productM.Title,
		Price:    productM.Price,
		About:    productM.About,
		Image:    productM.Image,
		Category: productM.Cat,
	}
}
