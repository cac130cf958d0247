package middleware

import (
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyAdminID is the echo context key under which the authenticated admin
// identity is stored.
const KeyAdminID = "adminID"

// AuthMiddleware validates admin access tokens on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the admin
// identity on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrAccessTokenInvalid.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrAccessTokenInvalid.WithDetails("Authorization header must carry a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrAccessTokenInvalid
		}

		// Refresh tokens must not grant API access.
		if claims.Type != service.TokenTypeAccess {
			return domainerrors.ErrAccessTokenInvalid
		}

		c.Set(KeyAdminID, claims.AdminID)

		return next(c)
	}
}
