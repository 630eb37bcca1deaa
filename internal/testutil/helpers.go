package testutil

import (
	"path/filepath"
	"testing"

	"gohoops/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestConnection opens a throwaway SQLite store with the full schema.
// The backing file lives in the test temp dir and is removed with it.
func NewTestConnection(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.sqlite3")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

// Ptr returns a pointer to the passed value.
func Ptr[T any](value T) *T {
	return &value
}
