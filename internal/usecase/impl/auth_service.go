// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminIdentity is the fixed identity claim carried by every admin token.
// There is a single admin account; no per-user identity exists.
const adminIdentity = "admin"

// authService implements the AuthUsecase interface.
type authService struct {
	adminRepo    repository.AdminRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AdminRepo    repository.AdminRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the admin password and mints the token pair.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	cred, err := srv.adminRepo.FindCredential(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			srv.log(ctx).Warn("Admin credential row missing")

			return nil, domainerrors.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to load admin credential")
	}

	// bcrypt comparison is deliberately expensive; it runs on the request
	// goroutine and the runtime keeps other requests serviced meanwhile.
	if !srv.hasher.Check(input.Password, cred.PasswordHash) {
		srv.log(ctx).Warn("Admin login rejected: password mismatch")

		return nil, domainerrors.ErrUnauthorized
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokenPair(adminIdentity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate admin tokens")
	}

	srv.log(ctx).Info("Admin login successful")

	return &usecase.LoginOutput{
		AdminAccessToken: accessToken,
		RefreshToken:     refreshToken,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (srv *authService) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidToken
	}

	// An access token must not be exchangeable for another access token.
	if claims.Type != service.TokenTypeRefresh {
		srv.log(ctx).Warn("Refresh rejected: wrong token type", slog.String("type", claims.Type))

		return nil, domainerrors.ErrInvalidToken
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(claims.AdminID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.RefreshOutput{NewAccessToken: accessToken}, nil
}
