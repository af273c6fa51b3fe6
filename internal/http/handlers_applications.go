// Package httpx provides HTTP handlers and utilities for the careers portal API.
package httpx

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	domainauth "github.com/sisunitech/careers-api/internal/domain/auth"
	"github.com/sisunitech/careers-api/internal/domain/model"
	"github.com/sisunitech/careers-api/internal/service"
)

// maxJSONBody bounds JSON application submissions.
const maxJSONBody = 1 << 20

// ApplicationHandlers provides HTTP handlers for application-related operations.
type ApplicationHandlers struct {
	Svc *service.ApplicationService

	// MaxResumeBytes caps multipart submissions that carry a resume file.
	MaxResumeBytes int64
}

// Create handles HTTP requests to submit a new application.
// Accepts application/json for plain submissions and multipart/form-data when
// a resume file is attached.
func (h *ApplicationHandlers) Create(w http.ResponseWriter, r *http.Request) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		mediaType = ""
	}

	if mediaType == "multipart/form-data" {
		h.createMultipart(w, r)
		return
	}

	// plain submissions carry no file; a much tighter cap applies
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)

	var req model.CreateApplicationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	app, svcErr := h.Svc.Create(r.Context(), &req, "", nil)
	if svcErr != nil {
		WriteAppError(w, svcErr)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]any{"application": app})
}

// createMultipart reads the application fields and optional resume file from
// a multipart form. The upload size is bounded before any parsing happens.
func (h *ApplicationHandlers) createMultipart(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxResumeBytes)

	const memoryLimit = 4 << 20 // larger parts spill to temp files
	if err := r.ParseMultipartForm(memoryLimit); err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusRequestEntityTooLarge,
			ErrCode: "upload_too_large",
			Err:     errors.New("submission exceeds the maximum upload size"),
		})
		return
	}

	req := model.CreateApplicationRequest{
		Name:          r.FormValue("name"),
		Email:         r.FormValue("email"),
		Phone:         r.FormValue("phone"),
		PreferredRole: r.FormValue("preferredRole"),
		Experience:    r.FormValue("experience"),
		Skills:        r.FormValue("skills"),
		CoverLetter:   r.FormValue("coverLetter"),
	}

	var resume io.Reader
	var resumeName string
	file, header, err := r.FormFile("resume")
	if err == nil {
		defer file.Close()
		resume = file
		resumeName = header.Filename
	} else if !errors.Is(err, http.ErrMissingFile) {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_upload",
			Err:     errors.New("resume file part could not be read"),
		})
		return
	}

	app, svcErr := h.Svc.Create(r.Context(), &req, resumeName, resume)
	if svcErr != nil {
		WriteAppError(w, svcErr)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]any{"application": app})
}

// List handles HTTP requests to list all applications. Admin only.
func (h *ApplicationHandlers) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Svc.List(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]any{"applications": apps})
}

// GetByID handles HTTP requests to get an application by ID. Admin only.
func (h *ApplicationHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("application id is required")},
		)
		return
	}

	app, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]any{"application": app})
}

// ListByEmail handles HTTP requests to list the applications for one address.
// Applicants may only look up their own address; admins may look up any.
func (h *ApplicationHandlers) ListByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	if email == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("email is required")},
		)
		return
	}

	if !canAccessEmail(r, email) {
		WriteError(w, ErrorParams{
			Code:    http.StatusForbidden,
			ErrCode: "insufficient_permissions",
			Err:     errors.New("cannot view applications for another address"),
		})
		return
	}

	apps, err := h.Svc.ListByEmail(r.Context(), email)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]any{"applications": apps})
}

// UpdateStatus handles HTTP requests to change an application's moderation status. Admin only.
func (h *ApplicationHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("application id is required")},
		)
		return
	}

	var req model.UpdateApplicationStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	status, err := req.Validate()
	if err != nil {
		WriteAppError(w, err)
		return
	}

	app, err := h.Svc.UpdateStatus(r.Context(), id, status)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]any{"application": app})
}

// Delete handles HTTP requests to withdraw an application. Applicants may
// only delete their own submissions; admins may delete any.
func (h *ApplicationHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("application id is required")},
		)
		return
	}

	app, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	if !canAccessEmail(r, app.Email) {
		WriteError(w, ErrorParams{
			Code:    http.StatusForbidden,
			ErrCode: "insufficient_permissions",
			Err:     errors.New("cannot delete an application submitted by another address"),
		})
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, nil)
}

// canAccessEmail reports whether the request's session may act on records
// belonging to the given address. Admins may act on any record; users only on
// their own.
func canAccessEmail(r *http.Request, email string) bool {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		return false
	}
	if session.Role == domainauth.RoleAdmin {
		return true
	}
	return strings.EqualFold(session.Email, email)
}
