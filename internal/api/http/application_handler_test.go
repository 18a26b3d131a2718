package http

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"digishield-backend/internal/domain"
	"digishield-backend/internal/export"
	"digishield-backend/internal/service"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestApplicationHandler_Apply_JSON(t *testing.T) {
	svc := new(mockApplicationService)
	h := NewApplicationHandler(svc, validator.New())

	svc.On("Submit", mock.Anything, mock.MatchedBy(func(sub service.OrganisationSubmission) bool {
		return sub.FullName == "Jane Doe" && sub.Email == "jane@example.com"
	})).Return(&domain.OrganisationApplication{
		ID:       "app-1",
		FullName: "Jane Doe",
		Status:   domain.OrganisationStatusSubmitted,
	}, nil).Once()

	body := `{"full_name":"Jane Doe","email":"jane@example.com","answers":{"consent":true}}`
	req := httptest.NewRequest(http.MethodPost, "/api/organisation/apply", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Apply(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "app-1", resp.Data.ID)
	svc.AssertExpectations(t)
}

func TestApplicationHandler_Apply_Multipart(t *testing.T) {
	svc := new(mockApplicationService)
	h := NewApplicationHandler(svc, validator.New())

	svc.On("Submit", mock.Anything, mock.MatchedBy(func(sub service.OrganisationSubmission) bool {
		return sub.FullName == "Jane Doe" &&
			sub.ResumeName == "cv.pdf" &&
			sub.ResumeSize > 0 &&
			sub.Answers["motivation"].Text() == "help out"
	})).Return(&domain.OrganisationApplication{ID: "app-1"}, nil).Once()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("full_name", "Jane Doe")
	mw.WriteField("email", "jane@example.com")
	mw.WriteField("answers", `{"motivation":"help out"}`)
	fw, err := mw.CreateFormFile("resume_file", "cv.pdf")
	require.NoError(t, err)
	fw.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/organisation/apply", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	h.Apply(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestApplicationHandler_Apply_Validation(t *testing.T) {
	svc := new(mockApplicationService)
	h := NewApplicationHandler(svc, validator.New())

	t.Run("missing required fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/organisation/apply",
			strings.NewReader(`{"email":"jane@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		h.Apply(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing required fields", decodeError(t, rec))
	})

	t.Run("malformed email", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/organisation/apply",
			strings.NewReader(`{"full_name":"Jane","email":"not-an-email"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		h.Apply(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid email", decodeError(t, rec))
	})

	svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestApplicationHandler_UpdateStatus(t *testing.T) {
	newRequest := func(body string) (*httptest.ResponseRecorder, *http.Request) {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/applications/app-1/status",
			strings.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"id": "app-1"})
		return httptest.NewRecorder(), req
	}

	t.Run("success returns application and draft", func(t *testing.T) {
		svc := new(mockApplicationService)
		h := NewApplicationHandler(svc, validator.New())

		svc.On("UpdateStatus", mock.Anything, "app-1",
			domain.OrganisationStatusInterview, "interview").
			Return(&domain.OrganisationApplication{ID: "app-1", Status: domain.OrganisationStatusInterview},
				&service.Draft{Subject: "Interview"}, nil).Once()

		rec, req := newRequest(`{"status":"interview_scheduled","stage":"interview"}`)
		h.UpdateStatus(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"draft"`)
		svc.AssertExpectations(t)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := new(mockApplicationService)
		h := NewApplicationHandler(svc, validator.New())

		svc.On("UpdateStatus", mock.Anything, "app-1",
			domain.OrganisationStatus("archived"), "").
			Return(nil, nil, domain.ErrUnknownStatus).Once()

		rec, req := newRequest(`{"status":"archived"}`)
		h.UpdateStatus(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Unknown status", decodeError(t, rec))
	})

	t.Run("missing application", func(t *testing.T) {
		svc := new(mockApplicationService)
		h := NewApplicationHandler(svc, validator.New())

		svc.On("UpdateStatus", mock.Anything, "app-1",
			domain.OrganisationStatusDeclined, "").
			Return(nil, nil, sql.ErrNoRows).Once()

		rec, req := newRequest(`{"status":"declined"}`)
		h.UpdateStatus(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Application not found", decodeError(t, rec))
	})
}

func TestApplicationHandler_Export(t *testing.T) {
	t.Run("sends a csv attachment", func(t *testing.T) {
		svc := new(mockApplicationService)
		h := NewApplicationHandler(svc, validator.New())

		rows := []*export.Row{export.NewRow().Set("full_name", "Jane Doe")}
		svc.On("ExportRows", mock.Anything).Return(rows, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/admin/applications/export", nil)
		rec := httptest.NewRecorder()

		h.Export(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="applications.csv"`, rec.Header().Get("Content-Disposition"))
		assert.True(t, strings.HasPrefix(rec.Body.String(), "\xEF\xBB\xBF"))
		assert.Contains(t, rec.Body.String(), "Jane Doe")
	})

	t.Run("empty export is a 404", func(t *testing.T) {
		svc := new(mockApplicationService)
		h := NewApplicationHandler(svc, validator.New())

		svc.On("ExportRows", mock.Anything).Return([]*export.Row{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/admin/applications/export", nil)
		rec := httptest.NewRecorder()

		h.Export(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "No data to export", decodeError(t, rec))
	})
}
