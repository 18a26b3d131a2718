package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"digishield-backend/internal/domain"
	"digishield-backend/internal/export"
	"digishield-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// VolunteerHandler serves the volunteer application endpoints
type VolunteerHandler struct {
	svc      service.VolunteerService
	validate *validator.Validate
}

func NewVolunteerHandler(svc service.VolunteerService, validate *validator.Validate) *VolunteerHandler {
	return &VolunteerHandler{svc: svc, validate: validate}
}

type volunteerApplyRequest struct {
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Location     string          `json:"location"`
	Role         string          `json:"role"`
	Skills       json.RawMessage `json:"skills"`
	Availability string          `json:"availability"`
}

// Apply accepts the public volunteer form and routes the record into the
// category table matching the role text.
func (h *VolunteerHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req volunteerApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sub := service.VolunteerSubmission{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Location:     req.Location,
		Role:         req.Role,
		Skills:       normalizeSkills(req.Skills),
		Availability: req.Availability,
	}
	if err := h.validate.Struct(sub); err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	category, app, err := h.svc.Submit(r.Context(), sub)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "category": category, "data": app})
}

// normalizeSkills accepts an array or a lone string, like the form does.
func normalizeSkills(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return []string{}
	}
	var list []any
	if err := json.Unmarshal(raw, &list); err == nil {
		skills := make([]string, 0, len(list))
		for _, item := range list {
			skills = append(skills, fmt.Sprint(item))
		}
		return skills
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return []string{single}
	}
	return []string{}
}

func categoryFromRequest(r *http.Request) (domain.VolunteerCategory, error) {
	category := domain.VolunteerCategory(mux.Vars(r)["category"])
	if !category.Valid() {
		return "", fmt.Errorf("unknown volunteer category: %s", category)
	}
	return category, nil
}

// List returns one category's applications, filtered by ?q= over name,
// email and skills.
func (h *VolunteerHandler) List(w http.ResponseWriter, r *http.Request) {
	category, err := categoryFromRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	apps, err := h.svc.List(r.Context(), category, r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondSuccess(w, apps)
}

type volunteerStatusRequest struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// UpdateStatus persists the new status and returns the notification draft.
// Message is the admin's optional email text; empty falls back to the
// status default.
func (h *VolunteerHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	category, err := categoryFromRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	id := mux.Vars(r)["id"]

	var req volunteerStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	app, draft, err := h.svc.UpdateStatus(r.Context(), category, id, domain.VolunteerStatus(req.Status), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownStatus):
			respondError(w, http.StatusBadRequest, "Unknown status")
		case errors.Is(err, sql.ErrNoRows):
			respondError(w, http.StatusNotFound, "Volunteer not found")
		default:
			respondError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	respondSuccess(w, map[string]any{"application": app, "draft": draft})
}

type inviteDraftRequest struct {
	Template string `json:"template"`
}

// InviteDraft composes an ad hoc interview/training/welcome draft without
// touching the record's status.
func (h *VolunteerHandler) InviteDraft(w http.ResponseWriter, r *http.Request) {
	category, err := categoryFromRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	id := mux.Vars(r)["id"]

	var req inviteDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	draft, err := h.svc.InviteDraft(r.Context(), category, id, service.InviteTemplate(req.Template))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownTemplate):
			respondError(w, http.StatusBadRequest, "Unknown draft template")
		case errors.Is(err, sql.ErrNoRows):
			respondError(w, http.StatusNotFound, "Volunteer not found")
		default:
			respondError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	respondSuccess(w, draft)
}

// Export streams one category's applications as a CSV download.
func (h *VolunteerHandler) Export(w http.ResponseWriter, r *http.Request) {
	category, err := categoryFromRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	rows, err := h.svc.ExportRows(r.Context(), category)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeCSV(w, rows, export.Options{Filename: "volunteers-" + string(category)})
}
