package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/roamplan/travel-planner-api/internal/app/budget"
	"github.com/roamplan/travel-planner-api/internal/app/planner"
	"github.com/roamplan/travel-planner-api/internal/app/searches"
	"github.com/roamplan/travel-planner-api/internal/app/session"
	"github.com/roamplan/travel-planner-api/internal/clients/flights"
	"github.com/roamplan/travel-planner-api/internal/clients/places"
	"github.com/roamplan/travel-planner-api/internal/clients/rates"
)

// Server holds the services the handlers delegate to. Handlers decode,
// delegate, and encode; all business rules live in internal/app.
type Server struct {
	Sessions *session.Service
	Planner  *planner.Service
	Budget   *budget.Service
	Searches *searches.Service

	Places  *places.Client
	Flights *flights.Client
	Rates   *rates.Client
}

func NewServer(sessions *session.Service, plannerSvc *planner.Service, budgetSvc *budget.Service, searchesSvc *searches.Service, placesCli *places.Client, flightsCli *flights.Client, ratesCli *rates.Client) *Server {
	return &Server{
		Sessions: sessions,
		Planner:  plannerSvc,
		Budget:   budgetSvc,
		Searches: searchesSvc,
		Places:   placesCli,
		Flights:  flightsCli,
		Rates:    ratesCli,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads the request body into v and reports whether it
// succeeded, writing the 422 response itself when it did not.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "malformed request body", nil)
		return false
	}
	return true
}

// writeServiceError maps an app-layer error onto the envelope. Anything
// that is not a service Error is a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if se := (*session.Error)(nil); errors.As(err, &se) {
		writeError(w, r, se.Status, se.Code, se.Message, se.Details)
		return
	}
	if pe := (*planner.Error)(nil); errors.As(err, &pe) {
		writeError(w, r, pe.Status, pe.Code, pe.Message, pe.Details)
		return
	}
	if be := (*budget.Error)(nil); errors.As(err, &be) {
		writeError(w, r, be.Status, be.Code, be.Message, be.Details)
		return
	}
	writeError(w, r, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
}
