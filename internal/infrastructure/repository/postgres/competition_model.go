package postgres

import (
	"database/sql"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/competition"
)

type competitionTableModel struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	StartDate   string         `db:"start_date"`
	EndDate     string         `db:"end_date"`
	Phase       string         `db:"phase"`
	IsActive    bool           `db:"is_active"`
	CreatedAt   time.Time      `db:"created_at"`
}

func competitionFromRow(row competitionTableModel) competition.Competition {
	return competition.Competition{
		ID:          row.ID,
		Name:        row.Name,
		Description: nullStringValue(row.Description),
		StartDate:   row.StartDate,
		EndDate:     row.EndDate,
		Phase:       competition.Phase(row.Phase),
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
	}
}
