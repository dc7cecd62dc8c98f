package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/copa-nordeste/copa-api/internal/domain/competition"
	qb "github.com/copa-nordeste/copa-api/internal/platform/querybuilder"
)

type CompetitionRepository struct {
	db *sqlx.DB
}

func NewCompetitionRepository(db *sqlx.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) List(ctx context.Context) ([]competition.Competition, error) {
	query, args, err := qb.Select("*").From("competitions").
		OrderBy("start_date").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list competitions query: %w", err)
	}

	var rows []competitionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}

	out := make([]competition.Competition, 0, len(rows))
	for _, row := range rows {
		out = append(out, competitionFromRow(row))
	}

	return out, nil
}

func (r *CompetitionRepository) GetByID(ctx context.Context, competitionID string) (competition.Competition, bool, error) {
	query, args, err := qb.Select("*").From("competitions").
		Where(qb.Eq("id", competitionID)).
		ToSQL()
	if err != nil {
		return competition.Competition{}, false, fmt.Errorf("build get competition query: %w", err)
	}

	var row competitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Competition{}, false, nil
		}
		return competition.Competition{}, false, fmt.Errorf("get competition: %w", err)
	}

	return competitionFromRow(row), true, nil
}

func (r *CompetitionRepository) Create(ctx context.Context, c competition.Competition) (competition.Competition, error) {
	insertModel := competitionTableModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: nullString(c.Description),
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Phase:       string(c.Phase),
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
	query, args, err := qb.InsertModel("competitions", insertModel, "")
	if err != nil {
		return competition.Competition{}, fmt.Errorf("build create competition query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return competition.Competition{}, fmt.Errorf("create competition: %w", err)
	}

	return c, nil
}
