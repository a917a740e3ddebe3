package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tomlord1122/todo-label-api/internal/database/dbtest"
)

func TestHealth(t *testing.T) {
	srv := dbtest.Open(t)

	stats := srv.Health()

	assert.Equal(t, "up", stats["status"])
	assert.Empty(t, stats["error"])
	assert.Equal(t, "It's healthy", stats["message"])
}

func TestMigrateCreatesTables(t *testing.T) {
	srv := dbtest.Open(t)
	migrator := srv.GetDB().Migrator()

	assert.True(t, migrator.HasTable("todos"))
	assert.True(t, migrator.HasTable("labels"))

	// idempotent
	require.NoError(t, srv.Migrate())
}

func TestClose(t *testing.T) {
	srv := dbtest.Open(t)

	require.NoError(t, srv.Close())

	stats := srv.Health()
	assert.Equal(t, "down", stats["status"])
}
