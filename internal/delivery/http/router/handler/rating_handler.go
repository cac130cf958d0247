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

// RatingHandler holds dependencies for rating handlers.
type RatingHandler struct {
	uc     usecase.RatingUsecase
	logger *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler, injected by Fx.
func NewRatingHandler(uc usecase.RatingUsecase, logger *slog.Logger) *RatingHandler {
	return &RatingHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit handles POST /API/rate.
func (h *RatingHandler) Submit(c echo.Context) error {
	var input usecase.SubmitRatingInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidRating.WithDetails(err.Error())
	}

	rating, err := h.uc.Submit(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.Created{Success: true, Result: rating})
}

// Stats handles GET /API/rating/:item_type/:item_id.
func (h *RatingHandler) Stats(c echo.Context) error {
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		return domainerrors.ErrInvalidItem
	}

	stats, err := h.uc.Stats(c.Request().Context(), c.Param("item_type"), itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, stats)
}
