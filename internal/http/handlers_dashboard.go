package httpx

import (
	"net/http"

	"github.com/sisunitech/careers-api/internal/service"
)

// DashboardHandlers provides HTTP handlers for the admin dashboard.
type DashboardHandlers struct {
	Svc *service.DashboardService
}

// Stats handles HTTP requests for the dashboard counters. Admin only.
func (h *DashboardHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Stats(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "stats_failed", Err: err})
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]any{"stats": stats})
}
