package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/copa-nordeste/copa-api/internal/domain/referee"
	qb "github.com/copa-nordeste/copa-api/internal/platform/querybuilder"
)

type RefereeRepository struct {
	db *sqlx.DB
}

func NewRefereeRepository(db *sqlx.DB) *RefereeRepository {
	return &RefereeRepository{db: db}
}

func (r *RefereeRepository) List(ctx context.Context) ([]referee.Referee, error) {
	query, args, err := qb.Select("*").From("referees").
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list referees query: %w", err)
	}

	var rows []refereeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select referees: %w", err)
	}

	out := make([]referee.Referee, 0, len(rows))
	for _, row := range rows {
		out = append(out, refereeFromRow(row))
	}

	return out, nil
}

func (r *RefereeRepository) GetByID(ctx context.Context, refereeID string) (referee.Referee, bool, error) {
	query, args, err := qb.Select("*").From("referees").
		Where(qb.Eq("id", refereeID)).
		ToSQL()
	if err != nil {
		return referee.Referee{}, false, fmt.Errorf("build get referee query: %w", err)
	}

	var row refereeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return referee.Referee{}, false, nil
		}
		return referee.Referee{}, false, fmt.Errorf("get referee: %w", err)
	}

	return refereeFromRow(row), true, nil
}

func (r *RefereeRepository) Create(ctx context.Context, ref referee.Referee) (referee.Referee, error) {
	insertModel := refereeTableModel{
		ID:        ref.ID,
		Name:      ref.Name,
		Image:     nullString(ref.Image),
		CreatedAt: ref.CreatedAt,
	}
	query, args, err := qb.InsertModel("referees", insertModel, "")
	if err != nil {
		return referee.Referee{}, fmt.Errorf("build create referee query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return referee.Referee{}, fmt.Errorf("create referee: %w", err)
	}

	return ref, nil
}

func (r *RefereeRepository) Update(ctx context.Context, refereeID string, patch referee.Patch) (referee.Referee, bool, error) {
	b := qb.Update("referees").
		SetIf(patch.Name != nil, "name", deref(patch.Name)).
		SetIf(patch.Image != nil, "image", nullString(deref(patch.Image))).
		Where(qb.Eq("id", refereeID))

	if !b.HasSets() {
		return r.GetByID(ctx, refereeID)
	}

	query, args, err := b.Suffix("RETURNING *").ToSQL()
	if err != nil {
		return referee.Referee{}, false, fmt.Errorf("build update referee query: %w", err)
	}

	var row refereeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return referee.Referee{}, false, nil
		}
		return referee.Referee{}, false, fmt.Errorf("update referee: %w", err)
	}

	return refereeFromRow(row), true, nil
}

func (r *RefereeRepository) Delete(ctx context.Context, refereeID string) (bool, error) {
	query, args, err := qb.DeleteFrom("referees").
		Where(qb.Eq("id", refereeID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete referee query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete referee: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete referee: %w", err)
	}

	return affected > 0, nil
}
