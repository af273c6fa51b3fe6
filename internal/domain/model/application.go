// Package model contains the persisted entities of the careers portal and
// their request/validation types.
package model

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/sisunitech/careers-api/internal/errors"
)

const (
	maxNameLen  = 255
	maxEmailLen = 320
)

// ApplicationStatus is the moderation status of a job application.
type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusReviewed  ApplicationStatus = "reviewed"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusHired     ApplicationStatus = "hired"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

// Valid reports whether the application status is one of the supported values.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusInterview,
		ApplicationStatusHired, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

// ParseApplicationStatus normalizes a status string and reports whether it is supported.
// Any status may follow any other; there is no transition graph.
func ParseApplicationStatus(value string) (ApplicationStatus, bool) {
	status := ApplicationStatus(strings.ToLower(strings.TrimSpace(value)))
	if status.Valid() {
		return status, true
	}
	return "", false
}

// Application represents a candidate's submission for a job opening.
type Application struct {
	ID              string            `json:"id"                        db:"id"`
	Name            string            `json:"name"                      db:"name"`
	Email           string            `json:"email"                     db:"email"`
	Phone           string            `json:"phone"                     db:"phone"`
	PreferredRole   string            `json:"preferredRole"             db:"preferred_role"`
	Experience      string            `json:"experience"                db:"experience"`
	Skills          string            `json:"skills"                    db:"skills"`
	CoverLetter     string            `json:"coverLetter"               db:"cover_letter"`
	ResumeFileName  *string           `json:"resumeFileName,omitempty"  db:"resume_file_name"`
	Status          ApplicationStatus `json:"status"                    db:"status"`
	ApplicationDate time.Time         `json:"applicationDate"           db:"application_date"`
	CreatedAt       time.Time         `json:"created_at"                db:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"                db:"updated_at"`
}

// CreateApplicationRequest represents parameters to submit an Application.
// Status and ApplicationDate are assigned server-side.
type CreateApplicationRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PreferredRole string `json:"preferredRole"`
	Experience    string `json:"experience"`
	Skills        string `json:"skills"`
	CoverLetter   string `json:"coverLetter"`
}

// Validate validates CreateApplicationRequest and normalizes the email to
// lower case. Emails are stored lowercased so the by-email lookup stays
// case-insensitive.
func (r *CreateApplicationRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return apperrors.ValidationField("name", "name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return apperrors.ValidationField("name", "name cannot exceed 255 characters")
	}
	email := strings.ToLower(strings.TrimSpace(r.Email))
	if email == "" {
		return apperrors.ValidationField("email", "email is required and cannot be empty")
	}
	if utf8.RuneCountInString(email) > maxEmailLen || !strings.Contains(email, "@") {
		return apperrors.ValidationField("email", "email is not a valid address")
	}
	if strings.TrimSpace(r.PreferredRole) == "" {
		return apperrors.ValidationField("preferredRole", "preferred role is required")
	}
	if strings.TrimSpace(r.CoverLetter) == "" {
		return apperrors.ValidationField("coverLetter", "cover letter is required")
	}
	r.Name = name
	r.Email = email
	return nil
}

// UpdateApplicationStatusRequest carries the new status for an application.
// The update is an unconditional overwrite keyed by id; concurrent admin
// updates resolve last-write-wins.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks the requested status against the enumerated set.
func (r *UpdateApplicationStatusRequest) Validate() (ApplicationStatus, error) {
	status, ok := ParseApplicationStatus(r.Status)
	if !ok {
		return "", apperrors.ValidationField("status",
			"status must be one of: pending, reviewed, interview, hired, rejected")
	}
	return status, nil
}
