package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"digishield-backend/internal/domain"
	"digishield-backend/internal/export"
	"digishield-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// maxSubmissionBytes bounds the multipart form, resume included.
const maxSubmissionBytes = 10 << 20

// ApplicationHandler serves the organisation application endpoints
type ApplicationHandler struct {
	svc      service.ApplicationService
	validate *validator.Validate
}

func NewApplicationHandler(svc service.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, validate: validate}
}

// Apply accepts the public submission form, as multipart form data or JSON.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var sub service.OrganisationSubmission
	contentType := r.Header.Get("Content-Type")

	if strings.Contains(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxSubmissionBytes); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid form data")
			return
		}
		sub = service.OrganisationSubmission{
			FullName:    r.FormValue("full_name"),
			Email:       r.FormValue("email"),
			Phone:       r.FormValue("phone"),
			Location:    r.FormValue("location"),
			RoleApplied: r.FormValue("role_applied"),
			LinkedIn:    r.FormValue("linkedin"),
			Portfolio:   r.FormValue("portfolio"),
		}
		if raw := r.FormValue("answers"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &sub.Answers); err != nil {
				respondError(w, http.StatusBadRequest, "Invalid answers payload")
				return
			}
		}
		if file, header, err := r.FormFile("resume_file"); err == nil {
			file.Close()
			sub.ResumeName = header.Filename
			sub.ResumeSize = header.Size
		}
	} else {
		var body struct {
			FullName    string           `json:"full_name"`
			Email       string           `json:"email"`
			Phone       string           `json:"phone"`
			Location    string           `json:"location"`
			RoleApplied string           `json:"role_applied"`
			LinkedIn    string           `json:"linkedin"`
			Portfolio   string           `json:"portfolio"`
			Answers     domain.AnswerMap `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		sub = service.OrganisationSubmission{
			FullName:    body.FullName,
			Email:       body.Email,
			Phone:       body.Phone,
			Location:    body.Location,
			RoleApplied: body.RoleApplied,
			LinkedIn:    body.LinkedIn,
			Portfolio:   body.Portfolio,
			Answers:     body.Answers,
		}
	}

	if err := h.validate.Struct(sub); err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	app, err := h.svc.Submit(r.Context(), sub)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondSuccess(w, app)
}

// List returns admin list rows, optionally filtered by ?q= over
// name, email and role.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.svc.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondSuccess(w, apps)
}

type applicationStatusRequest struct {
	Status string `json:"status"`
	Stage  string `json:"stage"`
}

// UpdateStatus moves an application through its lifecycle and returns the
// composed notification draft for the admin to confirm and send.
func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req applicationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	app, draft, err := h.svc.UpdateStatus(r.Context(), id, domain.OrganisationStatus(req.Status), req.Stage)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownStatus):
			respondError(w, http.StatusBadRequest, "Unknown status")
		case errors.Is(err, sql.ErrNoRows):
			respondError(w, http.StatusNotFound, "Application not found")
		default:
			respondError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	respondSuccess(w, map[string]any{"application": app, "draft": draft})
}

// Export streams the application list as a CSV download.
func (h *ApplicationHandler) Export(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.ExportRows(r.Context())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeCSV(w, rows, export.Options{Filename: "applications"})
}

// writeCSV sends rows as a csv attachment, or the no-data notice.
func writeCSV(w http.ResponseWriter, rows []*export.Row, opts export.Options) {
	csv, err := export.Render(rows, opts)
	if err != nil {
		if errors.Is(err, export.ErrNoData) {
			respondError(w, http.StatusNotFound, "No data to export")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+opts.FileName()+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(csv))
}

// validationMessage maps validator errors onto the API's field messages.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return "Missing required fields"
			}
		}
		return "Invalid " + strings.ToLower(verrs[0].Field())
	}
	return "Invalid request"
}
