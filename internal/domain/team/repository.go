package team

import "context"

// Repository describes public team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	Create(ctx context.Context, t Team) (Team, error)
	Update(ctx context.Context, teamID string, patch Patch) (Team, bool, error)
}

// Patch carries a partial update; nil fields keep their stored value.
type Patch struct {
	Name        *string
	City        *string
	State       *string
	Logo        *string
	GamesPlayed *int
	Wins        *int
	Draws       *int
	Losses      *int
	Points      *int
}
