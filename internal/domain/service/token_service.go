package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token kinds carried in the "type" claim. A refresh token can never be used
// where an access token is expected and vice versa.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the admin JWT tokens.
type Claims struct {
	AdminID string `json:"adminId"`
	Type    string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokenPair creates a new access token and refresh token carrying
	// the given admin identity.
	GenerateTokenPair(adminID string) (accessToken string, refreshToken string, err error)

	// GenerateAccessToken mints a fresh short-lived access token for the
	// given admin identity, used by the refresh flow.
	GenerateAccessToken(adminID string) (string, error)

	// ValidateToken checks signature and expiry of a token string and
	// returns its claims. Expiry and signature are the only validity checks;
	// tokens are stateless and cannot be revoked.
	ValidateToken(tokenString string) (*Claims, error)
}
