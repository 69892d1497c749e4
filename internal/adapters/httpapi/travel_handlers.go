package httpapi

import (
	"net/http"

	"github.com/roamplan/travel-planner-api/internal/app/visa"
)

func (s *Server) handleVisa(w http.ResponseWriter, r *http.Request) {
	nationality := r.URL.Query().Get("nationality")
	destination := r.URL.Query().Get("destination")
	if nationality == "" || destination == "" {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "nationality and destination are required", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"requirement": visa.Check(nationality, destination),
	})
}

func (s *Server) handleRates(w http.ResponseWriter, r *http.Request) {
	base := r.URL.Query().Get("base")
	table, err := s.Rates.Latest(r.Context(), base)
	if err != nil {
		writeError(w, r, http.StatusBadGateway, "PROVIDER_UNAVAILABLE", "exchange rate provider unavailable", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rates": table})
}

func (s *Server) handlePlaces(w http.ResponseWriter, r *http.Request) {
	destination := r.URL.Query().Get("destination")
	if destination == "" {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "destination is required", nil)
		return
	}

	// Recording the search is best-effort; the lookup result wins.
	username, _ := UsernameFromContext(r.Context())
	_ = s.Searches.Add(r.Context(), username, destination)

	writeJSON(w, http.StatusOK, map[string]any{
		"places": s.Places.Search(r.Context(), destination),
	})
}

func (s *Server) handleGeocode(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if address == "" {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "address is required", nil)
		return
	}
	loc := s.Places.Geocode(r.Context(), address)
	if loc == nil {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "address could not be resolved", nil)
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

func (s *Server) handleFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	origin, destination, date := q.Get("origin"), q.Get("destination"), q.Get("date")
	if origin == "" || destination == "" || date == "" {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "origin, destination and date are required", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"flights": s.Flights.Search(origin, destination, date),
	})
}
