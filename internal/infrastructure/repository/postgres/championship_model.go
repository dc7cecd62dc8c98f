package postgres

import (
	"database/sql"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/championship"
)

type championshipTableModel struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Image     sql.NullString `db:"image"`
	StartDate string         `db:"start_date"`
	EndDate   string         `db:"end_date"`
	CreatedAt time.Time      `db:"created_at"`
}

func championshipFromRow(row championshipTableModel) championship.Championship {
	return championship.Championship{
		ID:        row.ID,
		Name:      row.Name,
		Image:     nullStringValue(row.Image),
		StartDate: row.StartDate,
		EndDate:   row.EndDate,
		CreatedAt: row.CreatedAt,
	}
}

type championshipEntryTableModel struct {
	ID             string    `db:"id"`
	ChampionshipID string    `db:"championship_id"`
	TeamID         string    `db:"team_id"`
	CreatedAt      time.Time `db:"created_at"`
}
