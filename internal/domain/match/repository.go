package match

import "context"

type Repository interface {
	List(ctx context.Context) ([]Match, error)
	ListByCompetition(ctx context.Context, competitionID string) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Create(ctx context.Context, m Match) (Match, error)
}
