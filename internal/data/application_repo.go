package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sisunitech/careers-api/internal/data/pgxutil"
	"github.com/sisunitech/careers-api/internal/domain/model"
	apperrors "github.com/sisunitech/careers-api/internal/errors"
)

// ApplicationRepo provides database operations for job applications.
type ApplicationRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewApplicationRepo creates a new ApplicationRepo with real time provider.
func NewApplicationRepo(db *sql.DB) *ApplicationRepo {
	return &ApplicationRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewApplicationRepoWithTimeProvider creates a new ApplicationRepo with a custom time provider (useful for tests).
func NewApplicationRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ApplicationRepo {
	return &ApplicationRepo{DB: db, timeProvider: tp}
}

// SQL query constants for static queries.
const (
	applicationColumnsSQL = `id, name, email, phone, preferred_role, experience, skills,
		cover_letter, resume_file_name, status, application_date, created_at, updated_at`

	applicationGetByIDQuery = `
		SELECT ` + applicationColumnsSQL + `
		FROM applications
		WHERE id = $1`

	applicationListQuery = `
		SELECT ` + applicationColumnsSQL + `
		FROM applications
		ORDER BY application_date DESC`

	applicationListByEmailQuery = `
		SELECT ` + applicationColumnsSQL + `
		FROM applications
		WHERE email = $1
		ORDER BY application_date DESC`
)

// Create inserts a new application with status pending and applicationDate
// assigned at insert time.
func (r *ApplicationRepo) Create(
	ctx context.Context,
	req *model.CreateApplicationRequest,
) (*model.Application, error) {
	if req == nil {
		return nil, apperrors.Validation("create application request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Application
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO applications (
				name, email, phone, preferred_role, experience, skills, cover_letter,
				status, application_date, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $9, $9
			) RETURNING `+applicationColumnsSQL,
			req.Name,
			req.Email,
			strings.TrimSpace(req.Phone),
			strings.TrimSpace(req.PreferredRole),
			req.Experience,
			req.Skills,
			req.CoverLetter,
			model.ApplicationStatusPending,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Application])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves an application by ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id string) (*model.Application, error) {
	var out model.Application
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, applicationGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Application])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("application %s not found", id)
		}
		return nil, fmt.Errorf("failed to get application by ID: %w", apperrors.MapDBError(err))
	}
	return &out, nil
}

// List returns all applications, newest first.
func (r *ApplicationRepo) List(ctx context.Context) ([]*model.Application, error) {
	return r.listByQuery(ctx, applicationListQuery, "failed to list applications")
}

// ListByEmail returns applications for the given address. The input is
// lowercased before matching since emails are stored lowercased.
func (r *ApplicationRepo) ListByEmail(ctx context.Context, email string) ([]*model.Application, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	return r.listByQuery(ctx, applicationListByEmailQuery, "failed to list applications by email", normalized)
}

// UpdateStatus overwrites the status field and returns the updated record.
// The write is unconditional; concurrent updates resolve last-write-wins.
func (r *ApplicationRepo) UpdateStatus(
	ctx context.Context,
	id string,
	status model.ApplicationStatus,
) (*model.Application, error) {
	if !status.Valid() {
		return nil, apperrors.ValidationField("status",
			"status must be one of: pending, reviewed, interview, hired, rejected")
	}

	var out model.Application
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE applications SET status = $2
			WHERE id = $1
			RETURNING `+applicationColumnsSQL, id, status)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Application])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("application %s not found", id)
		}
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// SetResumeFileName records the stored resume name for an application.
func (r *ApplicationRepo) SetResumeFileName(
	ctx context.Context,
	id, storedName string,
) (*model.Application, error) {
	var out model.Application
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE applications SET resume_file_name = $2
			WHERE id = $1
			RETURNING `+applicationColumnsSQL, id, storedName)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Application])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("application %s not found", id)
		}
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete deletes an application by ID. Returns false when no row matched,
// so deleting the same id twice reports NotFound on the second call.
func (r *ApplicationRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete application: %w", apperrors.MapDBError(err))
	}
	return rows > 0, nil
}

// Count returns the total number of applications.
func (r *ApplicationRepo) Count(ctx context.Context) (int, error) {
	return r.countByQuery(ctx, `SELECT COUNT(*) FROM applications`)
}

// CountByStatus returns the number of applications with the given status.
func (r *ApplicationRepo) CountByStatus(ctx context.Context, status model.ApplicationStatus) (int, error) {
	return r.countByQuery(ctx, `SELECT COUNT(*) FROM applications WHERE status = $1`, status)
}

// CountSince returns the number of applications submitted at or after t.
func (r *ApplicationRepo) CountSince(ctx context.Context, t time.Time) (int, error) {
	return r.countByQuery(ctx, `SELECT COUNT(*) FROM applications WHERE application_date >= $1`, t)
}

// --- helpers ---

func (r *ApplicationRepo) listByQuery(
	ctx context.Context,
	q string,
	errMsg string,
	args ...any,
) ([]*model.Application, error) {
	var rowsOut []model.Application
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Application])
		return err
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", errMsg, apperrors.MapDBError(err))
	}

	res := make([]*model.Application, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

func (r *ApplicationRepo) countByQuery(ctx context.Context, q string, args ...any) (int, error) {
	var count int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, q, args...).Scan(&count)
	})
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return count, nil
}
