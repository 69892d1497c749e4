package httpapi

import (
	"net/http"

	"github.com/roamplan/travel-planner-api/internal/domain"
)

func (s *Server) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	username, _ := UsernameFromContext(r.Context())
	b, err := s.Budget.Load(r.Context(), username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleReplaceBudget(w http.ResponseWriter, r *http.Request) {
	username, _ := UsernameFromContext(r.Context())
	var b domain.Budget
	if !decodeJSON(w, r, &b) {
		return
	}
	if err := s.Budget.Save(r.Context(), username, b); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	username, _ := UsernameFromContext(r.Context())
	var e domain.Expense
	if !decodeJSON(w, r, &e) {
		return
	}
	created, err := s.Budget.AddExpense(r.Context(), username, e)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleBudgetSummary(w http.ResponseWriter, r *http.Request) {
	username, _ := UsernameFromContext(r.Context())
	sum, err := s.Budget.Summary(r.Context(), username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}
