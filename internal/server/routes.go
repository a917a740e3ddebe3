package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", s.rootHandler)
	r.Get("/health", s.healthHandler)

	r.Route("/todos", func(r chi.Router) {
		r.Post("/", s.createTodoHandler)
		r.Get("/", s.getAllTodosHandler)
		r.Get("/{id}", s.getTodoByIDHandler)
		r.Patch("/{id}", s.updateTodoHandler)
		r.Put("/{id}", s.updateTodoHandler)
		r.Delete("/{id}", s.deleteTodoHandler)
	})

	r.Route("/labels", func(r chi.Router) {
		r.Post("/", s.createLabelHandler)
		r.Get("/", s.getAllLabelsHandler)
		r.Delete("/{id}", s.deleteLabelHandler)
	})

	return r
}

func (s *Server) rootHandler(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, http.StatusOK, map[string]string{"message": "Hello, World!"})
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.respondWithJSON(w, http.StatusOK, map[string]string{"status": "up", "store": "memory"})
		return
	}

	healthStats := s.db.Health()
	if status, ok := healthStats["status"]; ok && status == "down" {
		s.respondWithJSON(w, http.StatusServiceUnavailable, healthStats)
		return
	}
	s.respondWithJSON(w, http.StatusOK, healthStats)
}
