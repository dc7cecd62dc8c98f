package postgres

import (
	"database/sql"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/referee"
)

type refereeTableModel struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Image     sql.NullString `db:"image"`
	CreatedAt time.Time      `db:"created_at"`
}

func refereeFromRow(row refereeTableModel) referee.Referee {
	return referee.Referee{
		ID:        row.ID,
		Name:      row.Name,
		Image:     nullStringValue(row.Image),
		CreatedAt: row.CreatedAt,
	}
}
