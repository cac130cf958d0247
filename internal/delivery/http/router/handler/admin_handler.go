package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for admin authentication handlers.
type AdminHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// Login handles POST /API/admin.
func (h *AdminHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrUnauthorized.WithDetails(err.Error())
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// Refresh handles POST /API/admin/refresh-token.
func (h *AdminHandler) Refresh(c echo.Context) error {
	var input usecase.RefreshInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidToken.WithDetails(err.Error())
	}

	output, err := h.uc.Refresh(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// Verify handles GET /API/admin/verify, a protected probe that confirms an
// access token is still accepted.
func (h *AdminHandler) Verify(c echo.Context) error {
	adminID, ok := c.Get(middleware.KeyAdminID).(string)
	if !ok {
		return domainerrors.ErrAccessTokenInvalid
	}

	return c.JSON(http.StatusOK, map[string]string{"adminId": adminID})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
