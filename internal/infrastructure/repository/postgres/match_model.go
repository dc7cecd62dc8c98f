package postgres

import (
	"database/sql"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/match"
)

type matchTableModel struct {
	ID            string         `db:"id"`
	HomeTeamID    sql.NullString `db:"home_team_id"`
	AwayTeamID    sql.NullString `db:"away_team_id"`
	HomeScore     sql.NullInt64  `db:"home_score"`
	AwayScore     sql.NullInt64  `db:"away_score"`
	MatchDate     string         `db:"match_date"`
	Status        string         `db:"status"`
	CompetitionID sql.NullString `db:"competition_id"`
	CreatedAt     time.Time      `db:"created_at"`
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:            row.ID,
		HomeTeamID:    nullStringValue(row.HomeTeamID),
		AwayTeamID:    nullStringValue(row.AwayTeamID),
		HomeScore:     nullIntValue(row.HomeScore),
		AwayScore:     nullIntValue(row.AwayScore),
		MatchDate:     row.MatchDate,
		Status:        match.Status(row.Status),
		CompetitionID: nullStringValue(row.CompetitionID),
		CreatedAt:     row.CreatedAt,
	}
}
