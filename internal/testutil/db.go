// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"io"
	"testing"

	"rpg_backend/internal/config"
	"rpg_backend/internal/db"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns a migrated in-memory SQLite database closed at test cleanup.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	logrus.SetOutput(io.Discard)

	gdb, err := db.Open(&config.Config{DBDriver: config.DriverSQLite, DBPath: ":memory:", IsProd: true})
	require.NoError(t, err)
	gdb.Logger = logger.Discard
	require.NoError(t, db.Migrate(gdb))

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}
