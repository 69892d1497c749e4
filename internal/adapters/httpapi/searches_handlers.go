package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListSearches(w http.ResponseWriter, r *http.Request) {
	username, _ := UsernameFromContext(r.Context())
	terms, err := s.Searches.List(r.Context(), username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"searches": terms})
}

func (s *Server) handleAddSearch(w http.ResponseWriter, r *http.Request) {
	username, _ := UsernameFromContext(r.Context())
	var body struct {
		Term string `json:"term"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := s.Searches.Add(r.Context(), username, body.Term); err != nil {
		writeServiceError(w, r, err)
		return
	}
	terms, err := s.Searches.List(r.Context(), username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"searches": terms})
}

func (s *Server) handleDeleteSearch(w http.ResponseWriter, r *http.Request) {
	username, _ := UsernameFromContext(r.Context())
	if err := s.Searches.Delete(r.Context(), username, chi.URLParam(r, "term")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
