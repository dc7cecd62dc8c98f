package postgres

import (
	"database/sql"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/news"
)

type newsTableModel struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Content     string         `db:"content"`
	Excerpt     sql.NullString `db:"excerpt"`
	Author      string         `db:"author"`
	Image       sql.NullString `db:"image"`
	PublishedAt string         `db:"published_at"`
	IsPublished bool           `db:"is_published"`
	CreatedAt   time.Time      `db:"created_at"`
}

func articleFromRow(row newsTableModel) news.Article {
	return news.Article{
		ID:          row.ID,
		Title:       row.Title,
		Content:     row.Content,
		Excerpt:     nullStringValue(row.Excerpt),
		Author:      row.Author,
		Image:       nullStringValue(row.Image),
		PublishedAt: row.PublishedAt,
		IsPublished: row.IsPublished,
		CreatedAt:   row.CreatedAt,
	}
}
