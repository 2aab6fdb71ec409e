package database

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hitekgroup/hitek-site-backend/models"
)

// newTestDB opens a fresh in-memory sqlite database with the schema migrated.
// The pool is pinned to one connection so every query sees the same in-memory
// database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Project{},
		&models.ProjectTechnology{},
		&models.ProjectFeature{},
		&models.ProjectResult{},
		&models.ProjectImage{},
		&models.BlogAuthor{},
		&models.BlogPost{},
	))

	return db
}
