package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"digishield-backend/internal/domain"
	"digishield-backend/internal/service"

	"github.com/gorilla/mux"
)

// TeamHandler serves the admin team member CRUD endpoints
type TeamHandler struct {
	svc service.TeamService
}

func NewTeamHandler(svc service.TeamService) *TeamHandler {
	return &TeamHandler{svc: svc}
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondSuccess(w, members)
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var member domain.TeamMember
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if member.Name == "" || member.Role == "" {
		respondError(w, http.StatusBadRequest, "Name and role are required")
		return
	}
	if err := h.svc.Create(r.Context(), &member); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondSuccess(w, member)
}

func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := memberID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid team member id")
		return
	}

	var member domain.TeamMember
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	member.ID = id

	if err := h.svc.Update(r.Context(), &member); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "Team member not found")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondSuccess(w, member)
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := memberID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid team member id")
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondSuccess(w, nil)
}

func memberID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	return int32(id), err
}
