package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/sisunitech/careers-api/internal/data/pgxutil"
	"github.com/sisunitech/careers-api/internal/domain/model"
	apperrors "github.com/sisunitech/careers-api/internal/errors"
)

// JobPositionRepo provides database operations for job positions.
type JobPositionRepo struct {
	DB *sql.DB
}

// NewJobPositionRepo creates a new JobPositionRepo.
func NewJobPositionRepo(db *sql.DB) *JobPositionRepo {
	return &JobPositionRepo{DB: db}
}

const (
	jobPositionColumnsSQL = `id, title, department, location, type, description,
		requirements, salary, is_active, created_at, updated_at`

	jobPositionGetByIDQuery = `
		SELECT ` + jobPositionColumnsSQL + `
		FROM job_positions
		WHERE id = $1`

	jobPositionListQuery = `
		SELECT ` + jobPositionColumnsSQL + `
		FROM job_positions
		ORDER BY created_at DESC`

	jobPositionListActiveQuery = `
		SELECT ` + jobPositionColumnsSQL + `
		FROM job_positions
		WHERE is_active
		ORDER BY created_at DESC`
)

// Create inserts a new job position. IsActive defaults to true when the
// request leaves it unset.
func (r *JobPositionRepo) Create(
	ctx context.Context,
	req *model.CreateJobPositionRequest,
) (*model.JobPosition, error) {
	if req == nil {
		return nil, apperrors.Validation("create job position request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	var out model.JobPosition
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO job_positions (
				title, department, location, type, description, requirements, salary, is_active
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8
			) RETURNING `+jobPositionColumnsSQL,
			req.Title,
			strings.TrimSpace(req.Department),
			strings.TrimSpace(req.Location),
			req.Type,
			req.Description,
			req.Requirements,
			strings.TrimSpace(req.Salary),
			isActive,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobPosition])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a job position by ID.
func (r *JobPositionRepo) GetByID(ctx context.Context, id string) (*model.JobPosition, error) {
	var out model.JobPosition
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, jobPositionGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobPosition])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("job position %s not found", id)
		}
		return nil, fmt.Errorf("failed to get job position by ID: %w", apperrors.MapDBError(err))
	}
	return &out, nil
}

// List returns job positions, newest first. With activeOnly set only
// positions visible to applicants are returned.
func (r *JobPositionRepo) List(ctx context.Context, activeOnly bool) ([]*model.JobPosition, error) {
	q := jobPositionListQuery
	if activeOnly {
		q = jobPositionListActiveQuery
	}

	var rowsOut []model.JobPosition
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.JobPosition])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list job positions: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.JobPosition, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update replaces every mutable column of a job position and returns the
// updated record.
func (r *JobPositionRepo) Update(
	ctx context.Context,
	id string,
	req *model.UpdateJobPositionRequest,
) (*model.JobPosition, error) {
	if req == nil {
		return nil, apperrors.Validation("update job position request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.JobPosition
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE job_positions SET
				title = $2,
				department = $3,
				location = $4,
				type = $5,
				description = $6,
				requirements = $7,
				salary = $8,
				is_active = $9
			WHERE id = $1
			RETURNING `+jobPositionColumnsSQL,
			id,
			req.Title,
			strings.TrimSpace(req.Department),
			strings.TrimSpace(req.Location),
			req.Type,
			req.Description,
			req.Requirements,
			strings.TrimSpace(req.Salary),
			req.IsActive,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobPosition])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("job position %s not found", id)
		}
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete deletes a job position by ID. Returns false when no row matched.
func (r *JobPositionRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM job_positions WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete job position: %w", apperrors.MapDBError(err))
	}
	return rows > 0, nil
}

// CountActive returns the number of positions currently visible to applicants.
func (r *JobPositionRepo) CountActive(ctx context.Context) (int, error) {
	var count int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `SELECT COUNT(*) FROM job_positions WHERE is_active`).Scan(&count)
	})
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return count, nil
}
