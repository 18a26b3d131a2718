package http

import (
	"net/http"

	"digishield-backend/internal/security"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth        *AuthHandler
	Application *ApplicationHandler
	Volunteer   *VolunteerHandler
	Newsletter  *NewsletterHandler
	Media       *MediaHandler
	Team        *TeamHandler
	Stats       *StatsHandler
}

// NewRouter wires the public and admin API routes.
func NewRouter(h Handlers, sessions security.SessionManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(Recover)

	api := router.PathPrefix("/api").Subrouter()

	// Public endpoints
	api.HandleFunc("/organisation/apply", h.Application.Apply).Methods(http.MethodPost)
	api.HandleFunc("/volunteers/apply", h.Volunteer.Apply).Methods(http.MethodPost)
	api.HandleFunc("/newsletter/subscribe", h.Newsletter.Subscribe).Methods(http.MethodPost)

	// Admin session
	api.HandleFunc("/admin/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", h.Auth.Logout).Methods(http.MethodPost)

	// Admin endpoints behind the session cookie
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(AdminAuth(sessions))

	admin.HandleFunc("/applications", h.Application.List).Methods(http.MethodGet)
	admin.HandleFunc("/applications/export", h.Application.Export).Methods(http.MethodGet)
	admin.HandleFunc("/applications/{id}/status", h.Application.UpdateStatus).Methods(http.MethodPost)

	admin.HandleFunc("/volunteers/{category}", h.Volunteer.List).Methods(http.MethodGet)
	admin.HandleFunc("/volunteers/{category}/export", h.Volunteer.Export).Methods(http.MethodGet)
	admin.HandleFunc("/volunteers/{category}/{id}/status", h.Volunteer.UpdateStatus).Methods(http.MethodPost)
	admin.HandleFunc("/volunteers/{category}/{id}/draft", h.Volunteer.InviteDraft).Methods(http.MethodPost)

	admin.HandleFunc("/team", h.Team.List).Methods(http.MethodGet)
	admin.HandleFunc("/team", h.Team.Create).Methods(http.MethodPost)
	admin.HandleFunc("/team/{id}", h.Team.Update).Methods(http.MethodPut)
	admin.HandleFunc("/team/{id}", h.Team.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/stats", h.Stats.Dashboard).Methods(http.MethodGet)
	admin.HandleFunc("/media/sync", h.Media.Sync).Methods(http.MethodPost)

	return router
}
