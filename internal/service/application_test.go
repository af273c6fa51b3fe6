package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sisunitech/careers-api/internal/domain/model"
	apperrors "github.com/sisunitech/careers-api/internal/errors"
	"github.com/sisunitech/careers-api/internal/mocks"
)

const testApplicationID = "app-123"

// newApplicationService creates mock repositories and a service for testing.
func newApplicationService(t *testing.T) (*mocks.MockApplicationRepository, *mocks.MockResumeStore, *ApplicationService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	appRepo := mocks.NewMockApplicationRepository(ctrl)
	resumes := mocks.NewMockResumeStore(ctrl)

	service := NewApplicationService(ApplicationServiceOptions{
		Applications: appRepo,
		Resumes:      resumes,
	})
	return appRepo, resumes, service
}

func TestApplicationService_Create_WithoutResume(t *testing.T) {
	t.Parallel()
	appRepo, _, service := newApplicationService(t)

	ctx := context.Background()
	req := &model.CreateApplicationRequest{
		Name:          "Jane",
		Email:         "jane@example.com",
		PreferredRole: "Engineer",
		CoverLetter:   "hello",
	}
	expected := &model.Application{ID: testApplicationID, Status: model.ApplicationStatusPending}

	appRepo.EXPECT().
		Create(ctx, req).
		Return(expected, nil).
		Times(1)

	result, err := service.Create(ctx, req, "", nil)
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestApplicationService_Create_WithResume(t *testing.T) {
	t.Parallel()
	appRepo, resumes, service := newApplicationService(t)

	ctx := context.Background()
	req := &model.CreateApplicationRequest{
		Name:          "Jane",
		Email:         "jane@example.com",
		PreferredRole: "Engineer",
		CoverLetter:   "hello",
	}
	created := &model.Application{ID: testApplicationID}
	storedName := "0b56cbe2-1c1a-4b68-9a31-6f4e1a2b3c4d.pdf"
	withResume := &model.Application{ID: testApplicationID, ResumeFileName: &storedName}
	body := strings.NewReader("%PDF-1.4")

	appRepo.EXPECT().Create(ctx, req).Return(created, nil).Times(1)
	resumes.EXPECT().Save(ctx, "resume.pdf", body).Return(storedName, nil).Times(1)
	appRepo.EXPECT().SetResumeFileName(ctx, testApplicationID, storedName).Return(withResume, nil).Times(1)

	result, err := service.Create(ctx, req, "resume.pdf", body)
	require.NoError(t, err)
	require.NotNil(t, result.ResumeFileName)
	assert.Equal(t, storedName, *result.ResumeFileName)
}

func TestApplicationService_Create_ResumeStoreFailureRollsBack(t *testing.T) {
	t.Parallel()
	appRepo, resumes, service := newApplicationService(t)

	ctx := context.Background()
	req := &model.CreateApplicationRequest{
		Name:          "Jane",
		Email:         "jane@example.com",
		PreferredRole: "Engineer",
		CoverLetter:   "hello",
	}
	created := &model.Application{ID: testApplicationID}
	body := strings.NewReader("junk")
	storeErr := apperrors.ValidationField("resume", "resume must be a .pdf, .doc or .docx file")

	appRepo.EXPECT().Create(ctx, req).Return(created, nil).Times(1)
	resumes.EXPECT().Save(ctx, "resume.exe", body).Return("", storeErr).Times(1)
	appRepo.EXPECT().Delete(ctx, testApplicationID).Return(true, nil).Times(1)

	_, err := service.Create(ctx, req, "resume.exe", body)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestApplicationService_ListByEmail_EmptyIsNotFound(t *testing.T) {
	t.Parallel()
	appRepo, _, service := newApplicationService(t)

	ctx := context.Background()
	appRepo.EXPECT().
		ListByEmail(ctx, "nobody@example.com").
		Return(nil, nil).
		Times(1)

	_, err := service.ListByEmail(ctx, "nobody@example.com")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestApplicationService_ListByEmail_Success(t *testing.T) {
	t.Parallel()
	appRepo, _, service := newApplicationService(t)

	ctx := context.Background()
	expected := []*model.Application{{ID: testApplicationID, Email: "jane@example.com"}}
	appRepo.EXPECT().
		ListByEmail(ctx, "jane@example.com").
		Return(expected, nil).
		Times(1)

	apps, err := service.ListByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, expected, apps)
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	t.Parallel()
	appRepo, _, service := newApplicationService(t)

	ctx := context.Background()
	expected := &model.Application{ID: testApplicationID, Status: model.ApplicationStatusHired}
	appRepo.EXPECT().
		UpdateStatus(ctx, testApplicationID, model.ApplicationStatusHired).
		Return(expected, nil).
		Times(1)

	result, err := service.UpdateStatus(ctx, testApplicationID, model.ApplicationStatusHired)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusHired, result.Status)
}

func TestApplicationService_Delete_RemovesResume(t *testing.T) {
	t.Parallel()
	appRepo, resumes, service := newApplicationService(t)

	ctx := context.Background()
	storedName := "0b56cbe2-1c1a-4b68-9a31-6f4e1a2b3c4d.pdf"
	app := &model.Application{ID: testApplicationID, ResumeFileName: &storedName}

	appRepo.EXPECT().GetByID(ctx, testApplicationID).Return(app, nil).Times(1)
	appRepo.EXPECT().Delete(ctx, testApplicationID).Return(true, nil).Times(1)
	resumes.EXPECT().Remove(ctx, storedName).Return(nil).Times(1)

	require.NoError(t, service.Delete(ctx, testApplicationID))
}

func TestApplicationService_Delete_NotFound(t *testing.T) {
	t.Parallel()
	appRepo, _, service := newApplicationService(t)

	ctx := context.Background()
	appRepo.EXPECT().
		GetByID(ctx, "missing").
		Return(nil, apperrors.NotFound("application missing not found")).
		Times(1)

	err := service.Delete(ctx, "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestApplicationService_Delete_RaceWithConcurrentDelete(t *testing.T) {
	t.Parallel()
	appRepo, _, service := newApplicationService(t)

	ctx := context.Background()
	app := &model.Application{ID: testApplicationID}

	// the record vanishes between the read and the delete
	appRepo.EXPECT().GetByID(ctx, testApplicationID).Return(app, nil).Times(1)
	appRepo.EXPECT().Delete(ctx, testApplicationID).Return(false, nil).Times(1)

	err := service.Delete(ctx, testApplicationID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestApplicationService_OpenResume(t *testing.T) {
	t.Parallel()
	_, resumes, service := newApplicationService(t)

	ctx := context.Background()
	modTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	resumes.EXPECT().
		Open(ctx, "missing.pdf").
		Return(nil, modTime, errors.New("boom")).
		Times(1)

	_, _, err := service.OpenResume(ctx, "missing.pdf")
	require.Error(t, err)
}
