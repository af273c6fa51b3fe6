package model

import (
	"strings"
	"time"

	apperrors "github.com/sisunitech/careers-api/internal/errors"
)

// ContactStatus is the triage status of a contact message. It is a separate
// lifecycle from ApplicationStatus and the two are not interchangeable.
type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
	ContactStatusClosed  ContactStatus = "closed"
)

// Valid reports whether the contact status is one of the supported values.
func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusClosed:
		return true
	default:
		return false
	}
}

// ParseContactStatus normalizes a contact status string and reports whether it is supported.
func ParseContactStatus(value string) (ContactStatus, bool) {
	status := ContactStatus(strings.ToLower(strings.TrimSpace(value)))
	if status.Valid() {
		return status, true
	}
	return "", false
}

// Contact represents a message submitted through the contact form.
type Contact struct {
	ID          string        `json:"id"          db:"id"`
	Name        string        `json:"name"        db:"name"`
	Email       string        `json:"email"       db:"email"`
	Subject     string        `json:"subject"     db:"subject"`
	Message     string        `json:"message"     db:"message"`
	Status      ContactStatus `json:"status"      db:"status"`
	SubmittedAt time.Time     `json:"submittedAt" db:"submitted_at"`
	CreatedAt   time.Time     `json:"created_at"  db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"  db:"updated_at"`
}

// CreateContactRequest represents parameters to submit a contact message.
type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate validates CreateContactRequest and lowercases the email.
func (r *CreateContactRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return apperrors.ValidationField("name", "name is required and cannot be empty")
	}
	email := strings.ToLower(strings.TrimSpace(r.Email))
	if email == "" || !strings.Contains(email, "@") {
		return apperrors.ValidationField("email", "email is not a valid address")
	}
	if strings.TrimSpace(r.Subject) == "" {
		return apperrors.ValidationField("subject", "subject is required")
	}
	if strings.TrimSpace(r.Message) == "" {
		return apperrors.ValidationField("message", "message is required")
	}
	r.Name = name
	r.Email = email
	return nil
}

// UpdateContactStatusRequest carries the new triage status for a contact message.
type UpdateContactStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks the requested status against the enumerated set.
func (r *UpdateContactStatusRequest) Validate() (ContactStatus, error) {
	status, ok := ParseContactStatus(r.Status)
	if !ok {
		return "", apperrors.ValidationField("status",
			"status must be one of: new, read, replied, closed")
	}
	return status, nil
}
