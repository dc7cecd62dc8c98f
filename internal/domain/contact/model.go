package contact

import (
	"fmt"
	"time"
)

// Message is a public contact-form submission. It is always stored
// unread; only the admin side flips IsRead.
type Message struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Body      string
	IsRead    bool
	CreatedAt time.Time
}

func (m Message) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("contact id is required")
	}
	if m.Name == "" {
		return fmt.Errorf("contact name is required")
	}
	if m.Email == "" {
		return fmt.Errorf("contact email is required")
	}
	if m.Subject == "" {
		return fmt.Errorf("contact subject is required")
	}
	if m.Body == "" {
		return fmt.Errorf("contact message is required")
	}

	return nil
}
