package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/roamplan/travel-planner-api/internal/domain"
)

type createEventRequest struct {
	ID          string             `json:"id,omitempty"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Date        openapi_types.Date `json:"date"`
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	username, _ := UsernameFromContext(r.Context())
	events, err := s.Planner.LoadEvents(r.Context(), username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": events})
}

func (s *Server) handleReplaceEvents(w http.ResponseWriter, r *http.Request) {
	username, _ := UsernameFromContext(r.Context())
	var body struct {
		Events []domain.CustomEvent `json:"events"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := s.Planner.SaveEvents(r.Context(), username, body.Events); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": body.Events})
}

func (s *Server) handleAddEvent(w http.ResponseWriter, r *http.Request) {
	username, _ := UsernameFromContext(r.Context())
	var req createEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	created, err := s.Planner.AddEvent(r.Context(), username, domain.CustomEvent{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date.Format("2006-01-02"),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	username, _ := UsernameFromContext(r.Context())
	if err := s.Planner.DeleteEvent(r.Context(), username, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
