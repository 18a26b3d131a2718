package http

import (
	"net/http"

	"digishield-backend/internal/logger"
	"digishield-backend/internal/security"
)

// SessionCookieName is the admin session cookie set on login.
const SessionCookieName = "admin_session"

// AdminAuth gates admin endpoints on a valid session cookie.
func AdminAuth(sessions security.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if _, err := sessions.ValidateSessionToken(cookie.Value); err != nil {
				respondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Recover converts handler panics into a generic 500.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Handler panicked", "path", r.URL.Path, "panic", rec)
				respondError(w, http.StatusInternalServerError, "Server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
