package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrAdminNotFound is returned when the fixed admin credential row does not
// exist.
var ErrAdminNotFound = errors.New("admin credential not found")

// AdminRepository reads the single admin credential record. This surface is
// a read-only consumer; the row is provisioned out of band.
type AdminRepository interface {
	FindCredential(ctx context.Context) (*entity.AdminCredential, error)
}
