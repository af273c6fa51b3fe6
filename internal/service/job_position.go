package service

import (
	"context"

	"github.com/sisunitech/careers-api/internal/core"
	"github.com/sisunitech/careers-api/internal/domain/model"
	apperrors "github.com/sisunitech/careers-api/internal/errors"
)

// JobPositionServiceOptions groups dependencies for JobPositionService.
type JobPositionServiceOptions struct {
	Jobs core.JobPositionRepository
}

// JobPositionService orchestrates job position CRUD.
type JobPositionService struct {
	jobs core.JobPositionRepository
}

// NewJobPositionService constructs a new JobPositionService.
func NewJobPositionService(opts JobPositionServiceOptions) *JobPositionService {
	return &JobPositionService{jobs: opts.Jobs}
}

// Create creates a job position.
func (s *JobPositionService) Create(
	ctx context.Context,
	req *model.CreateJobPositionRequest,
) (*model.JobPosition, error) {
	return s.jobs.Create(ctx, req)
}

// GetByID retrieves a job position by ID.
func (s *JobPositionService) GetByID(ctx context.Context, id string) (*model.JobPosition, error) {
	return s.jobs.GetByID(ctx, id)
}

// List returns job positions. Public callers see only active positions;
// admin callers see everything.
func (s *JobPositionService) List(ctx context.Context, activeOnly bool) ([]*model.JobPosition, error) {
	return s.jobs.List(ctx, activeOnly)
}

// Update replaces a job position record.
func (s *JobPositionService) Update(
	ctx context.Context,
	id string,
	req *model.UpdateJobPositionRequest,
) (*model.JobPosition, error) {
	return s.jobs.Update(ctx, id, req)
}

// Delete removes a job position. Deleting an id that does not exist returns
// NotFound.
func (s *JobPositionService) Delete(ctx context.Context, id string) error {
	ok, err := s.jobs.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFoundf("job position %s not found", id)
	}
	return nil
}
