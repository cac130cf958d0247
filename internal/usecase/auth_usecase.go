// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// LoginInput carries the admin password supplied at login.
type LoginInput struct {
	Password string `json:"password"`
}

// RefreshInput carries the refresh token presented for exchange.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken"`
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AdminAccessToken string `json:"adminAccessToken"`
	RefreshToken     string `json:"refreshToken"`
}

// RefreshOutput returns the newly minted access token.
type RefreshOutput struct {
	NewAccessToken string `json:"newAccessToken"`
}

// AuthUsecase defines the admin authentication operations.
// This is the contract that the delivery layer (API handlers) depends on.
type AuthUsecase interface {
	// Login verifies the supplied password against the stored admin
	// credential and mints an access/refresh token pair. It fails closed:
	// a missing credential row and a password mismatch are both unauthorized.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh verifies a refresh token and mints a new access token carrying
	// the same admin identity claim.
	Refresh(ctx context.Context, input RefreshInput) (*RefreshOutput, error)
}
