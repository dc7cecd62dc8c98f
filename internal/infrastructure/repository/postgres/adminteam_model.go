package postgres

import (
	"database/sql"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/adminteam"
)

type adminTeamTableModel struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Image       sql.NullString `db:"image"`
	Responsible sql.NullString `db:"responsible"`
	Phone       sql.NullString `db:"phone"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func adminTeamFromRow(row adminTeamTableModel) adminteam.Team {
	return adminteam.Team{
		ID:          row.ID,
		Name:        row.Name,
		Image:       nullStringValue(row.Image),
		Responsible: nullStringValue(row.Responsible),
		Phone:       nullStringValue(row.Phone),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
