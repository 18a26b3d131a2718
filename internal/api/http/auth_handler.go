package http

import (
	"encoding/json"
	"net/http"
	"time"

	"digishield-backend/internal/security"
)

// AuthHandler handles admin login and logout
type AuthHandler struct {
	sessions security.SessionManager
	expiry   time.Duration
}

func NewAuthHandler(sessions security.SessionManager, expiry time.Duration) *AuthHandler {
	return &AuthHandler{sessions: sessions, expiry: expiry}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	if err := h.sessions.VerifyCredentials(req.Email, req.Password); err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.sessions.GenerateSessionToken(req.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.expiry),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respondSuccess(w, map[string]string{"email": req.Email})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respondSuccess(w, nil)
}
