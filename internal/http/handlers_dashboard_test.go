package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sisunitech/careers-api/internal/data"
	"github.com/sisunitech/careers-api/internal/domain/model"
	"github.com/sisunitech/careers-api/internal/mocks"
	"github.com/sisunitech/careers-api/internal/service"
)

func newDashboardHandlers(t *testing.T) (*mocks.MockApplicationRepository, *mocks.MockJobPositionRepository, *DashboardHandlers) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	appRepo := mocks.NewMockApplicationRepository(ctrl)
	jobRepo := mocks.NewMockJobPositionRepository(ctrl)
	svc := service.NewDashboardService(service.DashboardServiceOptions{
		Applications: appRepo,
		Jobs:         jobRepo,
		TimeProvider: data.NewFixedTimeProvider(time.Date(2024, 3, 17, 12, 0, 0, 0, time.UTC)),
	})
	return appRepo, jobRepo, &DashboardHandlers{Svc: svc}
}

func TestDashboardStats(t *testing.T) {
	appRepo, jobRepo, h := newDashboardHandlers(t)

	monthStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	appRepo.EXPECT().Count(gomock.Any()).Return(42, nil).Times(1)
	appRepo.EXPECT().CountByStatus(gomock.Any(), model.ApplicationStatusPending).Return(7, nil).Times(1)
	jobRepo.EXPECT().CountActive(gomock.Any()).Return(5, nil).Times(1)
	appRepo.EXPECT().CountSince(gomock.Any(), monthStart).Return(12, nil).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	w := httptest.NewRecorder()

	h.Stats(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool                 `json:"success"`
		Stats   model.DashboardStats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, model.DashboardStats{
		TotalApplications:     42,
		PendingApplications:   7,
		ActivePositions:       5,
		ApplicationsThisMonth: 12,
	}, resp.Stats)
}

func TestDashboardStats_Error(t *testing.T) {
	appRepo, jobRepo, h := newDashboardHandlers(t)

	appRepo.EXPECT().Count(gomock.Any()).Return(0, errors.New("db down")).Times(1)
	appRepo.EXPECT().CountByStatus(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	appRepo.EXPECT().CountSince(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	jobRepo.EXPECT().CountActive(gomock.Any()).Return(0, nil).AnyTimes()

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	w := httptest.NewRecorder()

	h.Stats(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
