package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sisunitech/careers-api/internal/core"
	"github.com/sisunitech/careers-api/internal/data"
	"github.com/sisunitech/careers-api/internal/domain/model"
)

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Applications core.ApplicationRepository
	Jobs         core.JobPositionRepository
	TimeProvider data.TimeProvider
}

// DashboardService aggregates admin dashboard statistics.
type DashboardService struct {
	applications core.ApplicationRepository
	jobs         core.JobPositionRepository
	timeProvider data.TimeProvider
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	tp := opts.TimeProvider
	if tp == nil {
		tp = &data.RealTimeProvider{}
	}
	return &DashboardService{
		applications: opts.Applications,
		jobs:         opts.Jobs,
		timeProvider: tp,
	}
}

// Stats computes the dashboard counters. "This month" is the current UTC
// calendar month, from the first of the month at midnight.
func (s *DashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	now := s.timeProvider.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	g, gctx := errgroup.WithContext(ctx)
	var total, pending, active, thisMonth int

	// Each counter hits a different table/index; fetch them concurrently
	g.Go(func() error {
		var err error
		total, err = s.applications.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		pending, err = s.applications.CountByStatus(gctx, model.ApplicationStatusPending)
		return err
	})
	g.Go(func() error {
		var err error
		active, err = s.jobs.CountActive(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		thisMonth, err = s.applications.CountSince(gctx, monthStart)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.DashboardStats{
		TotalApplications:     total,
		PendingApplications:   pending,
		ActivePositions:       active,
		ApplicationsThisMonth: thisMonth,
	}, nil
}
