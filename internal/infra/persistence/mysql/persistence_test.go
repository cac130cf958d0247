package mysql

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront/config"
	"storefront/internal/infra/persistence/model"
)

// newTestDB opens an in-memory sqlite database with the same schema the
// repositories expect. The pool is pinned to a single connection so every
// statement sees the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.ProductModel{},
		&model.RatingModel{},
		&model.AdminAccessModel{},
	))

	return db
}

// newTestConfig returns a config with zero values, exercising the repository
// defaults for pool sizing and query timeouts.
func newTestConfig() *config.Config {
	return &config.Config{}
}
