// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"storefront/config"
	"storefront/internal/domain/service"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService is the constructor for jwtService. The signing key comes from
// configuration only; there is no built-in fallback value.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Secret.Key == "" {
		return nil, errors.New("jwt signing key must be provided")
	}

	return &jwtService{
		secret:     []byte(cfg.Secret.Key),
		accessTTL:  accessTokenTTL,
		refreshTTL: refreshTokenTTL,
	}, nil
}

// GenerateTokenPair creates a new access token and refresh token for the admin identity.
func (s *jwtService) GenerateTokenPair(adminID string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(adminID, service.TokenTypeAccess, s.accessTTL)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(adminID, service.TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// GenerateAccessToken mints a fresh access token for the refresh flow.
func (s *jwtService) GenerateAccessToken(adminID string) (string, error) {
	return s.generateToken(adminID, service.TokenTypeAccess, s.accessTTL)
}

// ValidateToken checks signature and expiry of a token string and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Reject tokens signed with anything but HMAC, notably "none".
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(adminID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		AdminID: adminID,
		Type:    tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
