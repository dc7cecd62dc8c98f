package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/copa-nordeste/copa-api/internal/domain/team"
	qb "github.com/copa-nordeste/copa-api/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		OrderBy("points DESC", "created_at").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}

	return teamFromRow(row), true, nil
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	insertModel := teamInsertModel{
		ID:          t.ID,
		Name:        t.Name,
		City:        t.City,
		State:       t.State,
		Logo:        nullString(t.Logo),
		GamesPlayed: t.GamesPlayed,
		Wins:        t.Wins,
		Draws:       t.Draws,
		Losses:      t.Losses,
		Points:      t.Points,
		CreatedAt:   t.CreatedAt,
	}
	query, args, err := qb.InsertModel("teams", insertModel, "")
	if err != nil {
		return team.Team{}, fmt.Errorf("build create team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	return t, nil
}

func (r *TeamRepository) Update(ctx context.Context, teamID string, patch team.Patch) (team.Team, bool, error) {
	b := qb.Update("teams").
		SetIf(patch.Name != nil, "name", deref(patch.Name)).
		SetIf(patch.City != nil, "city", deref(patch.City)).
		SetIf(patch.State != nil, "state", deref(patch.State)).
		SetIf(patch.Logo != nil, "logo", nullString(deref(patch.Logo))).
		SetIf(patch.GamesPlayed != nil, "games_played", derefInt(patch.GamesPlayed)).
		SetIf(patch.Wins != nil, "wins", derefInt(patch.Wins)).
		SetIf(patch.Draws != nil, "draws", derefInt(patch.Draws)).
		SetIf(patch.Losses != nil, "losses", derefInt(patch.Losses)).
		SetIf(patch.Points != nil, "points", derefInt(patch.Points)).
		Where(qb.Eq("id", teamID))

	if !b.HasSets() {
		return r.GetByID(ctx, teamID)
	}

	query, args, err := b.Suffix("RETURNING *").ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build update team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("update team: %w", err)
	}

	return teamFromRow(row), true, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefBool(v *bool) bool {
	if v == nil {
		return false
	}
	return *v
}
