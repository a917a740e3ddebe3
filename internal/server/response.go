package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Tomlord1122/todo-label-api/internal/repository"
	"github.com/Tomlord1122/todo-label-api/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
	// set for duplicates so the caller can reach the existing record
	ID *int `json:"id,omitempty"`
}

// decodeJSON decodes the request body into dst and writes a 400 response
// describing the problem when it cannot. It reports whether decoding succeeded.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(dst)
	if err == nil {
		return true
	}

	var syntaxError *json.SyntaxError
	var unmarshalTypeError *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxError):
		s.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Request body contains badly-formed JSON (at position %d)", syntaxError.Offset))
	case errors.Is(err, io.ErrUnexpectedEOF):
		s.respondWithError(w, http.StatusBadRequest, "Request body contains badly-formed JSON")
	case errors.As(err, &unmarshalTypeError):
		s.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Request body contains an invalid value for the %q field (at position %d)", unmarshalTypeError.Field, unmarshalTypeError.Offset))
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
		s.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Request body contains unknown field %s", fieldName))
	case errors.Is(err, io.EOF):
		s.respondWithError(w, http.StatusBadRequest, "Request body must not be empty")
	default:
		s.logger.ErrorContext(r.Context(), "decode request body failed", "error", err, "request_id", middleware.GetReqID(r.Context()))
		s.respondWithError(w, http.StatusInternalServerError, "Error processing request")
	}
	return false
}

// pathID parses the {id} URL parameter, answering 400 itself when invalid.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		s.respondWithError(w, http.StatusBadRequest, "Invalid ID provided")
		return 0, false
	}
	return id, true
}

// respondWithServiceError maps the repository/service error taxonomy onto HTTP.
func (s *Server) respondWithServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		notFound  *repository.NotFoundError
		duplicate *repository.DuplicateError
	)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		s.respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		s.respondWithError(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &duplicate):
		id := duplicate.ID
		s.respondWithJSON(w, http.StatusConflict, errorResponse{Error: duplicate.Error(), ID: &id})
	default:
		s.logger.ErrorContext(r.Context(), fallback, "error", err, "request_id", middleware.GetReqID(r.Context()))
		s.respondWithError(w, http.StatusInternalServerError, fallback)
	}
}

func (s *Server) respondWithError(w http.ResponseWriter, code int, message string) {
	s.respondWithJSON(w, code, errorResponse{Error: message})
}

func (s *Server) respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("marshal response failed", "error", err)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error preparing response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}
