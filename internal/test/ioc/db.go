// Package ioc provides test infrastructure: a fresh in-memory forum database
// per test with the schema from package db applied.
package ioc

import (
	"testing"

	"github.com/anonto42/qa-forum/backend/db"
	"github.com/anonto42/qa-forum/backend/pkg/config"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func InitDB(t testing.TB) *gorm.DB {
	t.Helper()
	conn, err := config.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), zerolog.Nop())
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	// an in-memory database lives and dies with its connection
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range db.Statements() {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}
