package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roamplan/travel-planner-api/internal/domain"
)

func (s *Server) handleListItinerary(w http.ResponseWriter, r *http.Request) {
	username, _ := UsernameFromContext(r.Context())
	items, err := s.Planner.LoadItinerary(r.Context(), username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	username, _ := UsernameFromContext(r.Context())
	var item domain.SavedItem
	if !decodeJSON(w, r, &item) {
		return
	}
	if err := s.Planner.AddItem(r.Context(), username, item); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	username, _ := UsernameFromContext(r.Context())
	remaining, err := s.Planner.DeleteItem(r.Context(), username, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": remaining})
}
