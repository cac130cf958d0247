package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"storefront/config"
	"storefront/internal/domain/service"
)

func testConfig(key string) *config.Config {
	cfg := &config.Config{}
	cfg.Secret.Key = key

	return cfg
}

func TestJWTService_GenerateAndValidateTokenPair(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	accessToken, refreshToken, err := jwtService.GenerateTokenPair("admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	// Validate access token
	accessClaims, err := jwtService.ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.NotNil(t, accessClaims)
	assert.Equal(t, "admin", accessClaims.AdminID)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	// Validate refresh token
	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	assert.NoError(t, err)
	assert.NotNil(t, refreshClaims)
	assert.Equal(t, "admin", refreshClaims.AdminID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)

	// Refresh tokens outlive access tokens
	assert.True(t, refreshClaims.ExpiresAt.After(accessClaims.ExpiresAt.Time))
}

func TestJWTService_GenerateAccessToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	token, err := jwtService.GenerateAccessToken("admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
	assert.WithinDuration(t, time.Now().Add(accessTokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_TamperedToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	token, err := jwtService.GenerateAccessToken("admin")
	assert.NoError(t, err)

	// Flipping the last byte breaks the signature
	last := "x"
	if strings.HasSuffix(token, "x") {
		last = "y"
	}
	tampered := token[:len(token)-1] + last
	claims, err := jwtService.ValidateToken(tampered)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	signer, err := NewJWTService(testConfig("first_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	verifier, err := NewJWTService(testConfig("second_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	token, err := signer.GenerateAccessToken("admin")
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &service.Claims{
		AdminID: "admin",
		Type:    service.TokenTypeAccess,
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	// Forge an already-expired token with the same secret and claim layout.
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		AdminID: "admin",
		Type:    service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		},
	})
	token, err := expired.SignedString([]byte("test_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	// Should fail to create service
	jwtService, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt signing key must be provided")
}
