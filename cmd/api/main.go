package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Tomlord1122/todo-label-api/internal/config"
	"github.com/Tomlord1122/todo-label-api/internal/database"
	"github.com/Tomlord1122/todo-label-api/internal/repository"
	"github.com/Tomlord1122/todo-label-api/internal/server"
	"github.com/Tomlord1122/todo-label-api/internal/service"
)

func gracefulShutdown(apiServer *http.Server, dbService database.Service, logger *slog.Logger, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	logger.Info("shutting down gracefully, press Ctrl+C again to force")
	stop()

	// in-flight requests get 5 seconds to finish
	ctxTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctxTimeout); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if dbService != nil {
		if err := dbService.Close(); err != nil {
			logger.Error("error closing database connection pool", "error", err)
		}
	}

	logger.Info("server exiting")
	done <- true
}

// openStores builds the repositories for the configured store. The database
// service is nil for the memory store.
func openStores(cfg config.Config, logger *slog.Logger) (repository.TodoRepository, repository.LabelRepository, database.Service, error) {
	if cfg.Store == config.StoreMemory {
		logger.Warn("using in-memory store, data is lost on exit")
		return repository.NewMemoryTodoRepository(), repository.NewMemoryLabelRepository(), nil, nil
	}

	dbService, err := database.New(cfg.DB, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	if cfg.AutoMigrate {
		logger.Info("running database auto-migration")
		if err := dbService.Migrate(); err != nil {
			_ = dbService.Close()
			return nil, nil, nil, err
		}
	}

	gormDB := dbService.GetDB()
	return repository.NewGormTodoRepository(gormDB), repository.NewGormLabelRepository(gormDB), dbService, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.ParseLogLevel()}))
	slog.SetDefault(logger)

	todoRepo, labelRepo, dbService, err := openStores(cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "store", cfg.Store, "error", err)
		os.Exit(1)
	}

	todoService := service.NewTodoService(todoRepo, logger)
	labelService := service.NewLabelService(labelRepo, logger)

	apiServer := server.New(cfg.Port, todoService, labelService, dbService, logger).HTTPServer()

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, dbService, logger, done)

	logger.Info("starting server", "addr", apiServer.Addr, "store", cfg.Store)
	err = apiServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server error", "error", err)
		os.Exit(1)
	}

	<-done
	logger.Info("graceful shutdown complete")
}
