package model

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/sisunitech/careers-api/internal/errors"
)

// JobType is the employment type of a job position.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

// Valid reports whether the job type is one of the supported values.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	default:
		return false
	}
}

// ParseJobType normalizes a job type string and reports whether it is supported.
func ParseJobType(value string) (JobType, bool) {
	jt := JobType(strings.ToLower(strings.TrimSpace(value)))
	if jt.Valid() {
		return jt, true
	}
	return "", false
}

// JobPosition represents a postable opening. IsActive toggles visibility to
// applicants without deleting the record.
type JobPosition struct {
	ID           string    `json:"id"           db:"id"`
	Title        string    `json:"title"        db:"title"`
	Department   string    `json:"department"   db:"department"`
	Location     string    `json:"location"     db:"location"`
	Type         JobType   `json:"type"         db:"type"`
	Description  string    `json:"description"  db:"description"`
	Requirements string    `json:"requirements" db:"requirements"`
	Salary       string    `json:"salary"       db:"salary"`
	IsActive     bool      `json:"isActive"     db:"is_active"`
	CreatedAt    time.Time `json:"created_at"   db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"   db:"updated_at"`
}

// CreateJobPositionRequest represents parameters to create a JobPosition.
type CreateJobPositionRequest struct {
	Title        string  `json:"title"`
	Department   string  `json:"department"`
	Location     string  `json:"location"`
	Type         JobType `json:"type"`
	Description  string  `json:"description"`
	Requirements string  `json:"requirements"`
	Salary       string  `json:"salary"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

// Validate validates CreateJobPositionRequest.
func (r *CreateJobPositionRequest) Validate() error {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return apperrors.ValidationField("title", "title is required and cannot be empty")
	}
	if utf8.RuneCountInString(title) > maxNameLen {
		return apperrors.ValidationField("title", "title cannot exceed 255 characters")
	}
	jt, ok := ParseJobType(string(r.Type))
	if !ok {
		return apperrors.ValidationField("type",
			"type must be one of: full-time, part-time, contract, internship")
	}
	if strings.TrimSpace(r.Description) == "" {
		return apperrors.ValidationField("description", "description is required")
	}
	r.Title = title
	r.Type = jt
	return nil
}

// UpdateJobPositionRequest is a whole-record replace of a JobPosition.
// All fields are required; the update overwrites every mutable column.
type UpdateJobPositionRequest struct {
	Title        string  `json:"title"`
	Department   string  `json:"department"`
	Location     string  `json:"location"`
	Type         JobType `json:"type"`
	Description  string  `json:"description"`
	Requirements string  `json:"requirements"`
	Salary       string  `json:"salary"`
	IsActive     bool    `json:"isActive"`
}

// Validate validates UpdateJobPositionRequest.
func (r *UpdateJobPositionRequest) Validate() error {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return apperrors.ValidationField("title", "title is required and cannot be empty")
	}
	jt, ok := ParseJobType(string(r.Type))
	if !ok {
		return apperrors.ValidationField("type",
			"type must be one of: full-time, part-time, contract, internship")
	}
	if strings.TrimSpace(r.Description) == "" {
		return apperrors.ValidationField("description", "description is required")
	}
	r.Title = title
	r.Type = jt
	return nil
}
