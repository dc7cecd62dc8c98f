package postgres

import (
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/contact"
)

type contactTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Subject   string    `db:"subject"`
	Message   string    `db:"message"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

func contactFromRow(row contactTableModel) contact.Message {
	return contact.Message{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Subject:   row.Subject,
		Body:      row.Message,
		IsRead:    row.IsRead,
		CreatedAt: row.CreatedAt,
	}
}
