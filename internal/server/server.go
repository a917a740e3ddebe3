package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Tomlord1122/todo-label-api/internal/database"
	"github.com/Tomlord1122/todo-label-api/internal/service"
)

type Server struct {
	port         int
	todoService  service.TodoService
	labelService service.LabelService
	// nil when running on the memory store
	db     database.Service
	logger *slog.Logger
}

func New(port int, todoService service.TodoService, labelService service.LabelService, dbService database.Service, logger *slog.Logger) *Server {
	return &Server{
		port:         port,
		todoService:  todoService,
		labelService: labelService,
		db:           dbService,
		logger:       logger,
	}
}

// HTTPServer wraps the router in an *http.Server with the usual timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
