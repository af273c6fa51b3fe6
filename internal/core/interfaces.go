// Package core defines the repository interfaces (hexagonal ports) for the
// careers portal. The service layer depends on these interfaces; the data
// layer provides the implementations.
package core

import (
	"context"
	"io"
	"time"

	"github.com/sisunitech/careers-api/internal/domain/model"
)

// ApplicationRepository provides persistence for job applications.
// Applications and job positions share one persistence layer with two
// collections rather than separate storage mechanisms.
type ApplicationRepository interface {
	// Create validates and inserts a new application with status pending
	// and applicationDate assigned at insert time.
	Create(ctx context.Context, req *model.CreateApplicationRequest) (*model.Application, error)

	// GetByID retrieves an application by ID.
	GetByID(ctx context.Context, id string) (*model.Application, error)

	// List returns all applications, newest first.
	List(ctx context.Context) ([]*model.Application, error)

	// ListByEmail returns applications whose email matches the given address.
	// The match is case-insensitive; emails are stored lowercased.
	ListByEmail(ctx context.Context, email string) ([]*model.Application, error)

	// UpdateStatus overwrites the status field and returns the updated record.
	UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus) (*model.Application, error)

	// SetResumeFileName records the stored resume name for an application.
	SetResumeFileName(ctx context.Context, id, storedName string) (*model.Application, error)

	// Delete removes the record. Returns false when the id does not exist,
	// so a second delete of the same id reports NotFound rather than success.
	Delete(ctx context.Context, id string) (bool, error)

	// CountByStatus returns the number of applications with the given status.
	CountByStatus(ctx context.Context, status model.ApplicationStatus) (int, error)

	// CountSince returns the number of applications submitted at or after t.
	CountSince(ctx context.Context, t time.Time) (int, error)

	// Count returns the total number of applications.
	Count(ctx context.Context) (int, error)
}

// JobPositionRepository provides persistence for job positions.
type JobPositionRepository interface {
	Create(ctx context.Context, req *model.CreateJobPositionRequest) (*model.JobPosition, error)
	GetByID(ctx context.Context, id string) (*model.JobPosition, error)

	// List returns job positions, newest first. When activeOnly is true only
	// positions visible to applicants are returned.
	List(ctx context.Context, activeOnly bool) ([]*model.JobPosition, error)

	// Update replaces the whole record.
	Update(ctx context.Context, id string, req *model.UpdateJobPositionRequest) (*model.JobPosition, error)

	Delete(ctx context.Context, id string) (bool, error)

	// CountActive returns the number of active job positions.
	CountActive(ctx context.Context) (int, error)
}

// ContactRepository provides persistence for contact messages.
type ContactRepository interface {
	Create(ctx context.Context, req *model.CreateContactRequest) (*model.Contact, error)
	List(ctx context.Context) ([]*model.Contact, error)
	UpdateStatus(ctx context.Context, id string, status model.ContactStatus) (*model.Contact, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ResumeStore stores uploaded resume files under opaque server-generated
// names. Callers never control the stored name; the original filename only
// contributes its extension, which is validated against an allowlist.
type ResumeStore interface {
	// Save persists the upload and returns the opaque stored name.
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)

	// Open returns a reader for a stored resume plus its modification time.
	Open(ctx context.Context, storedName string) (io.ReadSeekCloser, time.Time, error)

	// Remove deletes a stored resume. Missing files are not an error.
	Remove(ctx context.Context, storedName string) error
}
