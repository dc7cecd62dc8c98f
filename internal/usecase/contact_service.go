package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/contact"
	"github.com/copa-nordeste/copa-api/internal/platform/id"
)

type ContactService struct {
	contactRepo contact.Repository
	ids         id.Generator
	now         func() time.Time
}

func NewContactService(contactRepo contact.Repository, ids id.Generator, now func() time.Time) *ContactService {
	if now == nil {
		now = time.Now
	}
	return &ContactService{
		contactRepo: contactRepo,
		ids:         ids,
		now:         now,
	}
}

type SubmitMessageInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SubmitMessage stores a contact-form submission. Messages always land
// unread regardless of what the client sent.
func (s *ContactService) SubmitMessage(ctx context.Context, input SubmitMessageInput) (contact.Message, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContactService.SubmitMessage")
	defer span.End()

	email := strings.TrimSpace(input.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return contact.Message{}, NewValidationError(FieldError{Field: "email", Message: "must be a valid email address"})
	}

	messageID, err := s.ids.NewID()
	if err != nil {
		return contact.Message{}, fmt.Errorf("generate contact id: %w", err)
	}

	m := contact.Message{
		ID:        messageID,
		Name:      strings.TrimSpace(input.Name),
		Email:     email,
		Subject:   strings.TrimSpace(input.Subject),
		Body:      strings.TrimSpace(input.Message),
		IsRead:    false,
		CreatedAt: s.now().UTC(),
	}
	if err := m.Validate(); err != nil {
		return contact.Message{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.contactRepo.Create(ctx, m)
	if err != nil {
		return contact.Message{}, fmt.Errorf("create contact: %w", err)
	}

	return created, nil
}

func (s *ContactService) ListMessages(ctx context.Context) ([]contact.Message, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContactService.ListMessages")
	defer span.End()

	messages, err := s.contactRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	return messages, nil
}
