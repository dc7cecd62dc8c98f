package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/copa-nordeste/copa-api/internal/domain/adminteam"
	qb "github.com/copa-nordeste/copa-api/internal/platform/querybuilder"
)

type AdminTeamRepository struct {
	db *sqlx.DB
}

func NewAdminTeamRepository(db *sqlx.DB) *AdminTeamRepository {
	return &AdminTeamRepository{db: db}
}

func (r *AdminTeamRepository) List(ctx context.Context) ([]adminteam.Team, error) {
	query, args, err := qb.Select("*").From("admin_teams").
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list admin teams query: %w", err)
	}

	var rows []adminTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select admin teams: %w", err)
	}

	out := make([]adminteam.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, adminTeamFromRow(row))
	}

	return out, nil
}

func (r *AdminTeamRepository) GetByID(ctx context.Context, teamID string) (adminteam.Team, bool, error) {
	query, args, err := qb.Select("*").From("admin_teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return adminteam.Team{}, false, fmt.Errorf("build get admin team query: %w", err)
	}

	var row adminTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return adminteam.Team{}, false, nil
		}
		return adminteam.Team{}, false, fmt.Errorf("get admin team: %w", err)
	}

	return adminTeamFromRow(row), true, nil
}

func (r *AdminTeamRepository) Create(ctx context.Context, t adminteam.Team) (adminteam.Team, error) {
	insertModel := adminTeamTableModel{
		ID:          t.ID,
		Name:        t.Name,
		Image:       nullString(t.Image),
		Responsible: nullString(t.Responsible),
		Phone:       nullString(t.Phone),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	query, args, err := qb.InsertModel("admin_teams", insertModel, "")
	if err != nil {
		return adminteam.Team{}, fmt.Errorf("build create admin team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return adminteam.Team{}, fmt.Errorf("create admin team: %w", err)
	}

	return t, nil
}

func (r *AdminTeamRepository) Update(ctx context.Context, teamID string, patch adminteam.Patch) (adminteam.Team, bool, error) {
	b := qb.Update("admin_teams").
		SetIf(patch.Name != nil, "name", deref(patch.Name)).
		SetIf(patch.Image != nil, "image", nullString(deref(patch.Image))).
		SetIf(patch.Responsible != nil, "responsible", nullString(deref(patch.Responsible))).
		SetIf(patch.Phone != nil, "phone", nullString(deref(patch.Phone))).
		Where(qb.Eq("id", teamID))

	if !b.HasSets() {
		return r.GetByID(ctx, teamID)
	}

	query, args, err := b.
		SetExpr("updated_at", "NOW()").
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return adminteam.Team{}, false, fmt.Errorf("build update admin team query: %w", err)
	}

	var row adminTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return adminteam.Team{}, false, nil
		}
		return adminteam.Team{}, false, fmt.Errorf("update admin team: %w", err)
	}

	return adminTeamFromRow(row), true, nil
}

// Delete removes the team, its roster rows, and clears the team link on
// its athletes, all in one transaction.
func (r *AdminTeamRepository) Delete(ctx context.Context, teamID string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin delete admin team: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	rosterQuery, rosterArgs, err := qb.DeleteFrom("championship_teams").
		Where(qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete admin team roster query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, rosterQuery, rosterArgs...); err != nil {
		return false, fmt.Errorf("delete admin team roster: %w", err)
	}

	unlinkQuery, unlinkArgs, err := qb.Update("athletes").
		SetExpr("team_id", "NULL").
		Where(qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build unlink athletes query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, unlinkQuery, unlinkArgs...); err != nil {
		return false, fmt.Errorf("unlink athletes: %w", err)
	}

	query, args, err := qb.DeleteFrom("admin_teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete admin team query: %w", err)
	}
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete admin team: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete admin team: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete admin team: %w", err)
	}

	return affected > 0, nil
}
