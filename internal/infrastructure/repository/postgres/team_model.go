package postgres

import (
	"database/sql"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/team"
)

type teamTableModel struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	City        string         `db:"city"`
	State       string         `db:"state"`
	Logo        sql.NullString `db:"logo"`
	GamesPlayed int            `db:"games_played"`
	Wins        int            `db:"wins"`
	Draws       int            `db:"draws"`
	Losses      int            `db:"losses"`
	Points      int            `db:"points"`
	CreatedAt   time.Time      `db:"created_at"`
}

type teamInsertModel struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	City        string         `db:"city"`
	State       string         `db:"state"`
	Logo        sql.NullString `db:"logo"`
	GamesPlayed int            `db:"games_played"`
	Wins        int            `db:"wins"`
	Draws       int            `db:"draws"`
	Losses      int            `db:"losses"`
	Points      int            `db:"points"`
	CreatedAt   time.Time      `db:"created_at"`
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:          row.ID,
		Name:        row.Name,
		City:        row.City,
		State:       row.State,
		Logo:        nullStringValue(row.Logo),
		GamesPlayed: row.GamesPlayed,
		Wins:        row.Wins,
		Draws:       row.Draws,
		Losses:      row.Losses,
		Points:      row.Points,
		CreatedAt:   row.CreatedAt,
	}
}
