package mysql

import (
	"context"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the repository.AdminRepository interface.
type adminRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB, cfg *config.Config) repository.AdminRepository {
	return &adminRepository{
		db:      db,
		timeout: queryTimeout(cfg),
	}
}

// FindCredential reads the single admin credential row.
func (repo *adminRepository) FindCredential(ctx context.Context) (*entity.AdminCredential, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	var credM model.AdminAccessModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", entity.AdminCredentialID).
		First(&credM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load admin credential")
	}

	return &entity.AdminCredential{
		ID:           credM.ID,
		PasswordHash: credM.Passwerd,
	}, nil
}
