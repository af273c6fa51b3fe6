package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sisunitech/careers-api/internal/data/pgxutil"
	"github.com/sisunitech/careers-api/internal/domain/model"
	apperrors "github.com/sisunitech/careers-api/internal/errors"
)

// ContactRepo provides database operations for contact messages.
type ContactRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewContactRepo creates a new ContactRepo with real time provider.
func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewContactRepoWithTimeProvider creates a new ContactRepo with a custom time provider (useful for tests).
func NewContactRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ContactRepo {
	return &ContactRepo{DB: db, timeProvider: tp}
}

const (
	contactColumnsSQL = `id, name, email, subject, message, status, submitted_at, created_at, updated_at`

	contactListQuery = `
		SELECT ` + contactColumnsSQL + `
		FROM contacts
		ORDER BY submitted_at DESC`
)

// Create inserts a new contact message with status new.
func (r *ContactRepo) Create(ctx context.Context, req *model.CreateContactRequest) (*model.Contact, error) {
	if req == nil {
		return nil, apperrors.Validation("create contact request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Contact
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO contacts (
				name, email, subject, message, status, submitted_at, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $6, $6
			) RETURNING `+contactColumnsSQL,
			req.Name,
			req.Email,
			req.Subject,
			req.Message,
			model.ContactStatusNew,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Contact])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List returns all contact messages, newest first.
func (r *ContactRepo) List(ctx context.Context) ([]*model.Contact, error) {
	var rowsOut []model.Contact
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, contactListQuery)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Contact])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.Contact, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// UpdateStatus overwrites the triage status and returns the updated record.
func (r *ContactRepo) UpdateStatus(
	ctx context.Context,
	id string,
	status model.ContactStatus,
) (*model.Contact, error) {
	if !status.Valid() {
		return nil, apperrors.ValidationField("status",
			"status must be one of: new, read, replied, closed")
	}

	var out model.Contact
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE contacts SET status = $2
			WHERE id = $1
			RETURNING `+contactColumnsSQL, id, status)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Contact])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("contact %s not found", id)
		}
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete deletes a contact message by ID. Returns false when no row matched.
func (r *ContactRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete contact: %w", apperrors.MapDBError(err))
	}
	return rows > 0, nil
}
