// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for product catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles POST /API/create_product.
func (h *CatalogHandler) Create(c echo.Context) error {
	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.Created{Success: true, Result: product})
}

// ListRandomSample handles GET /API/products, the storefront discovery
// listing.
func (h *CatalogHandler) ListRandomSample(c echo.Context) error {
	products, err := h.uc.ListRandomSample(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.List{Data: products})
}

// ListByCategory handles GET /API/:cat.
func (h *CatalogHandler) ListByCategory(c echo.Context) error {
	products, err := h.uc.ListByCategory(c.Request().Context(), c.Param("cat"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.List{Data: products})
}

// GetOne handles GET /API/:cat/:id.
func (h *CatalogHandler) GetOne(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		// A non-numeric id cannot match any row.
		return domainerrors.ErrProductNotFound
	}

	product, err := h.uc.GetOne(c.Request().Context(), c.Param("cat"), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, product)
}

// Update handles PUT /API/:cat/:id, a full replace of the mutable fields.
func (h *CatalogHandler) Update(c echo.Context) error {
	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return domainerrors.ErrProductNotFound
	}

	if err := h.uc.Update(c.Request().Context(), c.Param("cat"), id, input); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.Message{Message: "T-shirt updated successfully"})
}
