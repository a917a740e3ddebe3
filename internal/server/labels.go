package server

import (
	"net/http"

	"github.com/Tomlord1122/todo-label-api/internal/service"
)

func (s *Server) createLabelHandler(w http.ResponseWriter, r *http.Request) {
	var req service.CreateLabelRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	label, err := s.labelService.CreateLabel(r.Context(), req)
	if err != nil {
		s.respondWithServiceError(w, r, err, "Failed to create label")
		return
	}
	s.respondWithJSON(w, http.StatusCreated, label)
}

func (s *Server) getAllLabelsHandler(w http.ResponseWriter, r *http.Request) {
	labels, err := s.labelService.GetAllLabels(r.Context())
	if err != nil {
		s.respondWithServiceError(w, r, err, "Failed to retrieve labels")
		return
	}
	s.respondWithJSON(w, http.StatusOK, labels)
}

func (s *Server) deleteLabelHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	if err := s.labelService.DeleteLabel(r.Context(), id); err != nil {
		s.respondWithServiceError(w, r, err, "Failed to delete label")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
