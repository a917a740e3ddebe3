// Package dbtest starts a throwaway PostgreSQL container for integration tests.
package dbtest

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Tomlord1122/todo-label-api/internal/config"
	"github.com/Tomlord1122/todo-label-api/internal/database"
)

const (
	dbName = "database"
	dbUser = "user"
	dbPwd  = "password"
)

// Start runs a postgres container for the lifetime of t and returns its
// connection settings. The test is skipped in -short mode or when no
// container runtime is reachable.
func Start(t *testing.T) config.DBConfig {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("could not start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := ctr.Terminate(context.Background()); err != nil {
			t.Logf("could not terminate postgres container: %v", err)
		}
	})

	host, err := ctr.Host(ctx)
	if err != nil {
		t.Fatalf("could not get container host: %v", err)
	}
	port, err := ctr.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("could not get container port: %v", err)
	}

	return config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		Username: dbUser,
		Password: dbPwd,
		Database: dbName,
		Schema:   "public",
	}
}

// Open starts a container, connects, and migrates the schema.
func Open(t *testing.T) database.Service {
	t.Helper()
	cfg := Start(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv, err := database.New(cfg, logger)
	if err != nil {
		t.Fatalf("could not connect: %v", err)
	}
	t.Cleanup(func() { _ = srv.Close() })

	if err := srv.Migrate(); err != nil {
		t.Fatalf("could not migrate: %v", err)
	}
	return srv
}
