package auth

import (
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/domain/service"
)

// bcryptHasher verifies the stored admin password hash. Hash exists for
// provisioning tooling; the API itself never writes credentials.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a PasswordHasher backed by bcrypt at the default
// cost.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash generates a salted bcrypt hash from a plaintext password.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check reports whether the plaintext password matches the stored hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
