package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/copa-nordeste/copa-api/internal/infrastructure/repository/memory"
	"github.com/copa-nordeste/copa-api/internal/platform/id"
)

func newContactService() *ContactService {
	now := func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return NewContactService(memory.NewContactRepository(), id.NewUUIDGenerator(), now)
}

func TestContactService_Submit_StoresUnread(t *testing.T) {
	svc := newContactService()

	msg, err := svc.SubmitMessage(t.Context(), SubmitMessageInput{
		Name:    "João Pereira",
		Email:   "joao@example.com",
		Subject: "Ticket refund",
		Message: "I could not attend the quarterfinal.",
	})
	if err != nil {
		t.Fatalf("submit message: %v", err)
	}
	if msg.IsRead {
		t.Fatal("fresh submissions must land unread")
	}
	if msg.ID == "" {
		t.Fatal("expected generated message id")
	}
}

func TestContactService_Submit_RejectsBadEmail(t *testing.T) {
	svc := newContactService()

	_, err := svc.SubmitMessage(t.Context(), SubmitMessageInput{
		Name:    "João Pereira",
		Email:   "not-an-address",
		Subject: "Hello",
		Message: "Hi there.",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected field-level details, got %v", err)
	}
	if len(validationErr.Fields) != 1 || validationErr.Fields[0].Field != "email" {
		t.Fatalf("expected email field violation, got %+v", validationErr.Fields)
	}
}

func TestContactService_List_ReturnsSubmissions(t *testing.T) {
	svc := newContactService()

	for _, subject := range []string{"First", "Second"} {
		if _, err := svc.SubmitMessage(t.Context(), SubmitMessageInput{
			Name:    "Maria",
			Email:   "maria@example.com",
			Subject: subject,
			Message: "Olá.",
		}); err != nil {
			t.Fatalf("submit %s: %v", subject, err)
		}
	}

	messages, err := svc.ListMessages(t.Context())
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
}
