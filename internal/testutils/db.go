package testutils

import (
	"testing"

	"github.com/linskybing/gigboard/internal/config/db"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a migrated in-memory database. The pool is limited to one
// connection so every goroutine sees the same database and writers queue up
// behind each other's transactions.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(db.Models()...))
	return gdb
}
