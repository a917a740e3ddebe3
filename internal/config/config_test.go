package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tomlord1122/todo-label-api/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TODO_STORE", "memory")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, config.StoreMemory, cfg.Store)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TODO_STORE", "POSTGRES")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("BLUEPRINT_DB_HOST", "db")
	t.Setenv("BLUEPRINT_DB_PORT", "6543")
	t.Setenv("BLUEPRINT_DB_USERNAME", "user")
	t.Setenv("BLUEPRINT_DB_PASSWORD", "secret")
	t.Setenv("BLUEPRINT_DB_DATABASE", "todos")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, config.StorePostgres, cfg.Store)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, slog.LevelDebug, cfg.ParseLogLevel())
	assert.Equal(t, config.DBConfig{
		Host:     "db",
		Port:     "6543",
		Username: "user",
		Password: "secret",
		Database: "todos",
		Schema:   "public",
	}, cfg.DB)
}

func TestLoad_InvalidStore(t *testing.T) {
	t.Setenv("TODO_STORE", "redis")

	_, err := config.Load()
	assert.ErrorContains(t, err, "invalid TODO_STORE")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr string
	}{
		{"memory", config.Config{Port: 8080, Store: config.StoreMemory}, ""},
		{"postgres", config.Config{Port: 8080, Store: config.StorePostgres, DB: config.DBConfig{Database: "todo"}}, ""},
		{"postgres without database", config.Config{Port: 8080, Store: config.StorePostgres}, "BLUEPRINT_DB_DATABASE is required"},
		{"zero port", config.Config{Port: 0, Store: config.StoreMemory}, "invalid PORT"},
		{"port out of range", config.Config{Port: 70000, Store: config.StoreMemory}, "invalid PORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDSN(t *testing.T) {
	d := config.DBConfig{Host: "h", Port: "1", Username: "u", Password: "p", Database: "d"}
	assert.Equal(t, "host=h user=u password=p dbname=d port=1 sslmode=disable", d.DSN())

	d.Schema = "app"
	assert.Equal(t, "host=h user=u password=p dbname=d port=1 sslmode=disable search_path=app", d.DSN())
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"info":  slog.LevelInfo,
		"":      slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, config.Config{LogLevel: in}.ParseLogLevel(), in)
	}
}
