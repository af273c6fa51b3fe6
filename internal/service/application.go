// Package service contains the orchestration layer between HTTP handlers and
// repositories. Services own cross-cutting rules such as access checks that
// depend on more than one input and file/record coordination.
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sisunitech/careers-api/internal/core"
	"github.com/sisunitech/careers-api/internal/domain/model"
	apperrors "github.com/sisunitech/careers-api/internal/errors"
)

// ApplicationServiceOptions groups dependencies for ApplicationService.
type ApplicationServiceOptions struct {
	Applications core.ApplicationRepository
	Resumes      core.ResumeStore
}

// ApplicationService orchestrates application CRUD and resume handling.
type ApplicationService struct {
	applications core.ApplicationRepository
	resumes      core.ResumeStore
}

// NewApplicationService constructs a new ApplicationService.
func NewApplicationService(opts ApplicationServiceOptions) *ApplicationService {
	return &ApplicationService{
		applications: opts.Applications,
		resumes:      opts.Resumes,
	}
}

// Create submits a new application. When resume is non-nil the file is
// stored first and its opaque name recorded on the created record; a failed
// store aborts the submission.
func (s *ApplicationService) Create(
	ctx context.Context,
	req *model.CreateApplicationRequest,
	resumeName string,
	resume io.Reader,
) (*model.Application, error) {
	app, err := s.applications.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	if resume == nil {
		return app, nil
	}

	storedName, err := s.resumes.Save(ctx, resumeName, resume)
	if err != nil {
		// the record without its resume is worse than no record at all
		if _, delErr := s.applications.Delete(ctx, app.ID); delErr != nil {
			slog.ErrorContext(ctx, "failed to roll back application after resume store failure",
				"application_id", app.ID, "error", delErr)
		}
		return nil, err
	}

	app, err = s.applications.SetResumeFileName(ctx, app.ID, storedName)
	if err != nil {
		if rmErr := s.resumes.Remove(ctx, storedName); rmErr != nil {
			slog.ErrorContext(ctx, "failed to remove orphaned resume file",
				"stored_name", storedName, "error", rmErr)
		}
		return nil, fmt.Errorf("record resume name: %w", err)
	}
	return app, nil
}

// List returns all applications, newest first.
func (s *ApplicationService) List(ctx context.Context) ([]*model.Application, error) {
	return s.applications.List(ctx)
}

// GetByID retrieves an application by ID.
func (s *ApplicationService) GetByID(ctx context.Context, id string) (*model.Application, error) {
	return s.applications.GetByID(ctx, id)
}

// ListByEmail returns the applications belonging to the given address.
// Zero results is reported as NotFound so clients can treat the address as
// having no applications.
func (s *ApplicationService) ListByEmail(ctx context.Context, email string) ([]*model.Application, error) {
	apps, err := s.applications.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, apperrors.NotFound("no applications found for this email")
	}
	return apps, nil
}

// UpdateStatus moves an application to the given moderation status. Any
// status may follow any other.
func (s *ApplicationService) UpdateStatus(
	ctx context.Context,
	id string,
	status model.ApplicationStatus,
) (*model.Application, error) {
	return s.applications.UpdateStatus(ctx, id, status)
}

// Delete removes an application and its stored resume, if any. Deleting an
// id that does not exist returns NotFound.
func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return err
	}

	ok, err := s.applications.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFoundf("application %s not found", id)
	}

	if app.ResumeFileName != nil {
		if rmErr := s.resumes.Remove(ctx, *app.ResumeFileName); rmErr != nil {
			slog.ErrorContext(ctx, "failed to remove resume for deleted application",
				"application_id", id, "stored_name", *app.ResumeFileName, "error", rmErr)
		}
	}
	return nil
}

// OpenResume returns a reader for a stored resume file along with its
// modification time for conditional responses.
func (s *ApplicationService) OpenResume(
	ctx context.Context,
	storedName string,
) (io.ReadSeekCloser, time.Time, error) {
	return s.resumes.Open(ctx, storedName)
}
