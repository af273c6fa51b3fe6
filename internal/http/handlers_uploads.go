package httpx

import (
	"errors"
	"net/http"
	"path"

	"github.com/sisunitech/careers-api/internal/service"
)

// UploadHandlers serves stored resume files back to moderators.
type UploadHandlers struct {
	Svc *service.ApplicationService
}

// GetResume streams a stored resume. The filename is the opaque name the
// store generated at upload time; anything else is rejected by the store.
// GET /uploads/resumes/{filename}.
func (h *UploadHandlers) GetResume(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")
	if filename == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("filename is required")},
		)
		return
	}

	file, modTime, err := h.Svc.OpenResume(r.Context(), filename)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Disposition", "attachment; filename="+path.Base(filename))
	http.ServeContent(w, r, filename, modTime, file)
}
