package postgres

import (
	"database/sql"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/athlete"
)

type athleteTableModel struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Document  sql.NullString `db:"document"`
	Image     sql.NullString `db:"image"`
	TeamID    sql.NullString `db:"team_id"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func athleteFromRow(row athleteTableModel) athlete.Athlete {
	return athlete.Athlete{
		ID:        row.ID,
		Name:      row.Name,
		Document:  nullStringValue(row.Document),
		Image:     nullStringValue(row.Image),
		TeamID:    nullStringValue(row.TeamID),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
