package httpx

import (
	"errors"
	"net/http"

	"github.com/sisunitech/careers-api/internal/domain/model"
	"github.com/sisunitech/careers-api/internal/service"
)

// ContactHandlers provides HTTP handlers for contact message operations.
type ContactHandlers struct {
	Svc *service.ContactService
}

// Create handles HTTP requests to submit a contact message. Open to visitors.
func (h *ContactHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateContactRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	contact, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]any{"contact": contact})
}

// List handles HTTP requests to list contact messages. Admin only.
func (h *ContactHandlers) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Svc.List(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]any{"contacts": contacts})
}

// UpdateStatus handles HTTP requests to change a contact message's triage status. Admin only.
func (h *ContactHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("contact id is required")},
		)
		return
	}

	var req model.UpdateContactStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	status, err := req.Validate()
	if err != nil {
		WriteAppError(w, err)
		return
	}

	contact, err := h.Svc.UpdateStatus(r.Context(), id, status)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]any{"contact": contact})
}

// Delete handles HTTP requests to delete a contact message. Admin only.
func (h *ContactHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("contact id is required")},
		)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, nil)
}
