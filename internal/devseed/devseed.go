// Package devseed populates the database with sample job positions for
// development mode. Seeding is idempotent and never runs in production.
package devseed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sisunitech/careers-api/internal/core"
	"github.com/sisunitech/careers-api/internal/domain/model"
)

// seedPositions are the openings inserted into an empty development database.
var seedPositions = []model.CreateJobPositionRequest{
	{
		Title:        "Backend Engineer",
		Department:   "Engineering",
		Location:     "Remote",
		Type:         model.JobTypeFullTime,
		Description:  "Design and build the services behind the careers portal.",
		Requirements: "3+ years building production APIs. PostgreSQL and Go or a similar stack.",
		Salary:       "Competitive",
	},
	{
		Title:        "Frontend Engineer",
		Department:   "Engineering",
		Location:     "Remote",
		Type:         model.JobTypeFullTime,
		Description:  "Own the applicant-facing single page application.",
		Requirements: "Strong React or similar framework experience.",
		Salary:       "Competitive",
	},
	{
		Title:        "Engineering Intern",
		Department:   "Engineering",
		Location:     "Hybrid",
		Type:         model.JobTypeInternship,
		Description:  "Work with a mentor on real production features over a summer term.",
		Requirements: "Currently enrolled in a computer science program.",
		Salary:       "Stipend",
	},
}

// Run inserts the sample positions when the positions table is empty.
func Run(ctx context.Context, positions core.JobPositionRepository, logger *slog.Logger) error {
	existing, err := positions.List(ctx, false)
	if err != nil {
		return fmt.Errorf("list positions: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for i := range seedPositions {
		req := seedPositions[i]
		if _, err := positions.Create(ctx, &req); err != nil {
			return fmt.Errorf("seed position %q: %w", req.Title, err)
		}
	}

	if logger != nil {
		logger.InfoContext(ctx, "seeded development job positions", "count", len(seedPositions))
	}
	return nil
}
