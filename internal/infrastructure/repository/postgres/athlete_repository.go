package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/copa-nordeste/copa-api/internal/domain/athlete"
	qb "github.com/copa-nordeste/copa-api/internal/platform/querybuilder"
)

type AthleteRepository struct {
	db *sqlx.DB
}

func NewAthleteRepository(db *sqlx.DB) *AthleteRepository {
	return &AthleteRepository{db: db}
}

func (r *AthleteRepository) List(ctx context.Context) ([]athlete.Athlete, error) {
	query, args, err := qb.Select("*").From("athletes").
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list athletes query: %w", err)
	}

	return r.selectAthletes(ctx, query, args)
}

func (r *AthleteRepository) ListByTeam(ctx context.Context, teamID string) ([]athlete.Athlete, error) {
	query, args, err := qb.Select("*").From("athletes").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list athletes by team query: %w", err)
	}

	return r.selectAthletes(ctx, query, args)
}

func (r *AthleteRepository) GetByID(ctx context.Context, athleteID string) (athlete.Athlete, bool, error) {
	query, args, err := qb.Select("*").From("athletes").
		Where(qb.Eq("id", athleteID)).
		ToSQL()
	if err != nil {
		return athlete.Athlete{}, false, fmt.Errorf("build get athlete query: %w", err)
	}

	var row athleteTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return athlete.Athlete{}, false, nil
		}
		return athlete.Athlete{}, false, fmt.Errorf("get athlete: %w", err)
	}

	return athleteFromRow(row), true, nil
}

func (r *AthleteRepository) Create(ctx context.Context, a athlete.Athlete) (athlete.Athlete, error) {
	insertModel := athleteTableModel{
		ID:        a.ID,
		Name:      a.Name,
		Document:  nullString(a.Document),
		Image:     nullString(a.Image),
		TeamID:    nullString(a.TeamID),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	query, args, err := qb.InsertModel("athletes", insertModel, "")
	if err != nil {
		return athlete.Athlete{}, fmt.Errorf("build create athlete query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return athlete.Athlete{}, fmt.Errorf("create athlete: %w", err)
	}

	return a, nil
}

func (r *AthleteRepository) Update(ctx context.Context, athleteID string, patch athlete.Patch) (athlete.Athlete, bool, error) {
	b := qb.Update("athletes").
		SetIf(patch.Name != nil, "name", deref(patch.Name)).
		SetIf(patch.Document != nil, "document", nullString(deref(patch.Document))).
		SetIf(patch.Image != nil, "image", nullString(deref(patch.Image))).
		SetIf(patch.TeamID != nil, "team_id", nullString(deref(patch.TeamID))).
		Where(qb.Eq("id", athleteID))

	if !b.HasSets() {
		return r.GetByID(ctx, athleteID)
	}

	query, args, err := b.
		SetExpr("updated_at", "NOW()").
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return athlete.Athlete{}, false, fmt.Errorf("build update athlete query: %w", err)
	}

	var row athleteTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return athlete.Athlete{}, false, nil
		}
		return athlete.Athlete{}, false, fmt.Errorf("update athlete: %w", err)
	}

	return athleteFromRow(row), true, nil
}

func (r *AthleteRepository) Delete(ctx context.Context, athleteID string) (bool, error) {
	query, args, err := qb.DeleteFrom("athletes").
		Where(qb.Eq("id", athleteID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete athlete query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete athlete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete athlete: %w", err)
	}

	return affected > 0, nil
}

func (r *AthleteRepository) selectAthletes(ctx context.Context, query string, args []any) ([]athlete.Athlete, error) {
	var rows []athleteTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select athletes: %w", err)
	}

	out := make([]athlete.Athlete, 0, len(rows))
	for _, row := range rows {
		out = append(out, athleteFromRow(row))
	}

	return out, nil
}
