package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/copa-nordeste/copa-api/internal/domain/adminteam"
	"github.com/copa-nordeste/copa-api/internal/domain/championship"
	qb "github.com/copa-nordeste/copa-api/internal/platform/querybuilder"
)

type ChampionshipRepository struct {
	db *sqlx.DB
}

func NewChampionshipRepository(db *sqlx.DB) *ChampionshipRepository {
	return &ChampionshipRepository{db: db}
}

func (r *ChampionshipRepository) List(ctx context.Context) ([]championship.Championship, error) {
	query, args, err := qb.Select("*").From("championships").
		OrderBy("created_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list championships query: %w", err)
	}

	var rows []championshipTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select championships: %w", err)
	}

	out := make([]championship.Championship, 0, len(rows))
	for _, row := range rows {
		out = append(out, championshipFromRow(row))
	}

	return out, nil
}

func (r *ChampionshipRepository) GetByID(ctx context.Context, championshipID string) (championship.Championship, bool, error) {
	query, args, err := qb.Select("*").From("championships").
		Where(qb.Eq("id", championshipID)).
		ToSQL()
	if err != nil {
		return championship.Championship{}, false, fmt.Errorf("build get championship query: %w", err)
	}

	var row championshipTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return championship.Championship{}, false, nil
		}
		return championship.Championship{}, false, fmt.Errorf("get championship: %w", err)
	}

	return championshipFromRow(row), true, nil
}

func (r *ChampionshipRepository) Create(ctx context.Context, c championship.Championship) (championship.Championship, error) {
	insertModel := championshipTableModel{
		ID:        c.ID,
		Name:      c.Name,
		Image:     nullString(c.Image),
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		CreatedAt: c.CreatedAt,
	}
	query, args, err := qb.InsertModel("championships", insertModel, "")
	if err != nil {
		return championship.Championship{}, fmt.Errorf("build create championship query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return championship.Championship{}, fmt.Errorf("create championship: %w", err)
	}

	return c, nil
}

func (r *ChampionshipRepository) Update(ctx context.Context, championshipID string, patch championship.Patch) (championship.Championship, bool, error) {
	b := qb.Update("championships").
		SetIf(patch.Name != nil, "name", deref(patch.Name)).
		SetIf(patch.Image != nil, "image", nullString(deref(patch.Image))).
		SetIf(patch.StartDate != nil, "start_date", deref(patch.StartDate)).
		SetIf(patch.EndDate != nil, "end_date", deref(patch.EndDate)).
		Where(qb.Eq("id", championshipID))

	if !b.HasSets() {
		return r.GetByID(ctx, championshipID)
	}

	query, args, err := b.Suffix("RETURNING *").ToSQL()
	if err != nil {
		return championship.Championship{}, false, fmt.Errorf("build update championship query: %w", err)
	}

	var row championshipTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return championship.Championship{}, false, nil
		}
		return championship.Championship{}, false, fmt.Errorf("update championship: %w", err)
	}

	return championshipFromRow(row), true, nil
}

// Delete removes the championship and its roster rows in one
// transaction.
func (r *ChampionshipRepository) Delete(ctx context.Context, championshipID string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin delete championship: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	rosterQuery, rosterArgs, err := qb.DeleteFrom("championship_teams").
		Where(qb.Eq("championship_id", championshipID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete championship roster query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, rosterQuery, rosterArgs...); err != nil {
		return false, fmt.Errorf("delete championship roster: %w", err)
	}

	query, args, err := qb.DeleteFrom("championships").
		Where(qb.Eq("id", championshipID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete championship query: %w", err)
	}
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete championship: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete championship: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete championship: %w", err)
	}

	return affected > 0, nil
}

func (r *ChampionshipRepository) ListTeams(ctx context.Context, championshipID string) ([]adminteam.Team, error) {
	query, args, err := qb.Select("t.*").From("admin_teams t").
		Where(qb.Expr("t.id IN (SELECT team_id FROM championship_teams WHERE championship_id = ?)", championshipID)).
		OrderBy("t.name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list championship teams query: %w", err)
	}

	var rows []adminTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select championship teams: %w", err)
	}

	out := make([]adminteam.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, adminTeamFromRow(row))
	}

	return out, nil
}

func (r *ChampionshipRepository) AddTeam(ctx context.Context, entry championship.Entry) (championship.Entry, error) {
	insertModel := championshipEntryTableModel{
		ID:             entry.ID,
		ChampionshipID: entry.ChampionshipID,
		TeamID:         entry.TeamID,
		CreatedAt:      entry.CreatedAt,
	}
	query, args, err := qb.InsertModel("championship_teams", insertModel, "")
	if err != nil {
		return championship.Entry{}, fmt.Errorf("build add championship team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return championship.Entry{}, championship.ErrDuplicateEntry
		}
		return championship.Entry{}, fmt.Errorf("add championship team: %w", err)
	}

	return entry, nil
}

func (r *ChampionshipRepository) RemoveTeam(ctx context.Context, championshipID, teamID string) (bool, error) {
	query, args, err := qb.DeleteFrom("championship_teams").
		Where(qb.Eq("championship_id", championshipID), qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build remove championship team query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("remove championship team: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected remove championship team: %w", err)
	}

	return affected > 0, nil
}
