package httpx

import (
	"errors"
	"net/http"

	"github.com/sisunitech/careers-api/internal/domain/model"
	"github.com/sisunitech/careers-api/internal/service"
)

// JobPositionHandlers provides HTTP handlers for job position operations.
type JobPositionHandlers struct {
	Svc *service.JobPositionService
}

// List handles HTTP requests to list job positions. Visitors see active
// positions only; admins may request the full set with ?all=true.
func (h *JobPositionHandlers) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if r.URL.Query().Get("all") == "true" {
		session := GetSessionFromContext(r.Context())
		if session != nil && session.IsAdmin() {
			activeOnly = false
		}
	}

	positions, err := h.Svc.List(r.Context(), activeOnly)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]any{"positions": positions})
}

// GetByID handles HTTP requests to get a job position by ID.
func (h *JobPositionHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("position id is required")},
		)
		return
	}

	position, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]any{"position": position})
}

// Create handles HTTP requests to create a new job position. Admin only.
func (h *JobPositionHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateJobPositionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	position, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]any{"position": position})
}

// Update handles HTTP requests to replace a job position. Admin only.
func (h *JobPositionHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("position id is required")},
		)
		return
	}

	var req model.UpdateJobPositionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	position, err := h.Svc.Update(r.Context(), id, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]any{"position": position})
}

// Delete handles HTTP requests to delete a job position. Admin only.
func (h *JobPositionHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("position id is required")},
		)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, nil)
}
