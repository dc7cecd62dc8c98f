package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/copa-nordeste/copa-api/internal/domain/contact"
	qb "github.com/copa-nordeste/copa-api/internal/platform/querybuilder"
)

type ContactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) List(ctx context.Context) ([]contact.Message, error) {
	query, args, err := qb.Select("*").From("contacts").
		OrderBy("created_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list contacts query: %w", err)
	}

	var rows []contactTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select contacts: %w", err)
	}

	out := make([]contact.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, contactFromRow(row))
	}

	return out, nil
}

func (r *ContactRepository) Create(ctx context.Context, m contact.Message) (contact.Message, error) {
	insertModel := contactTableModel{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Body,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
	query, args, err := qb.InsertModel("contacts", insertModel, "")
	if err != nil {
		return contact.Message{}, fmt.Errorf("build create contact query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return contact.Message{}, fmt.Errorf("create contact: %w", err)
	}

	return m, nil
}
