package httpapi

import "net/http"

// RequireUser resolves the current user and injects the username into the
// request context. Requests with nobody logged in get a 401.
func (s *Server) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := s.Sessions.Current(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if username == "" {
			writeError(w, r, http.StatusUnauthorized, "NOT_LOGGED_IN", "not logged in", nil)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUsername(r.Context(), username)))
	})
}
