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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create inserts a new product and returns it with the generated identifier.
func (srv *catalogService) Create(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Title:    input.Title,
		Price:    *input.Price,
		About:    input.About,
		Image:    input.Image,
		Category: input.Category,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("cat", input.Category), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Int("id", product.ID), slog.String("cat", product.Category))

	return product, nil
}

// ListByCategory returns all products of a category, newest first.
func (srv *catalogService) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByCategory(ctx, category)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.String("cat", category), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return products, nil
}

// ListRandomSample returns the storefront discovery sample.
func (srv *catalogService) ListRandomSample(ctx context.Context) ([]*entity.ProductSummary, error) {
	products, err := srv.productRepo.ListRandom(ctx, usecase.DiscoverySampleSize)
	if err != nil {
		srv.log(ctx).Error("Failed to list random products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list random products")
	}

	return products, nil
}

// GetOne returns the product matching (category, id).
func (srv *catalogService) GetOne(ctx context.Context, category string, id int) (*entity.Product, error) {
	product, err := srv.productRepo.FindByCategoryAndID(ctx, category, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to fetch product", slog.String("cat", category), slog.Int("id", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch product")
	}

	return product, nil
}

// Update replaces all mutable fields of the product matching (category, id).
func (srv *catalogService) Update(ctx context.Context, category string, id int, input usecase.UpdateProductInput) error {
	fields := entity.ProductFields{
		Title: input.Title,
		Price: *input.Price,
		About: input.About,
		Image: input.Image,
	}

	if err := srv.productRepo.Update(ctx, category, id, fields); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to update product", slog.String("cat", category), slog.Int("id", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.Int("id", id), slog.String("cat", category))

	return nil
}
