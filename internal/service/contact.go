package service

import (
	"context"

	"github.com/sisunitech/careers-api/internal/core"
	"github.com/sisunitech/careers-api/internal/domain/model"
	apperrors "github.com/sisunitech/careers-api/internal/errors"
)

// ContactServiceOptions groups dependencies for ContactService.
type ContactServiceOptions struct {
	Contacts core.ContactRepository
}

// ContactService orchestrates contact message triage.
type ContactService struct {
	contacts core.ContactRepository
}

// NewContactService constructs a new ContactService.
func NewContactService(opts ContactServiceOptions) *ContactService {
	return &ContactService{contacts: opts.Contacts}
}

// Create submits a contact message. Submission is open to anonymous visitors.
func (s *ContactService) Create(ctx context.Context, req *model.CreateContactRequest) (*model.Contact, error) {
	return s.contacts.Create(ctx, req)
}

// List returns all contact messages, newest first.
func (s *ContactService) List(ctx context.Context) ([]*model.Contact, error) {
	return s.contacts.List(ctx)
}

// UpdateStatus moves a contact message to the given triage status.
func (s *ContactService) UpdateStatus(
	ctx context.Context,
	id string,
	status model.ContactStatus,
) (*model.Contact, error) {
	return s.contacts.UpdateStatus(ctx, id, status)
}

// Delete removes a contact message.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	ok, err := s.contacts.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFoundf("contact %s not found", id)
	}
	return nil
}
