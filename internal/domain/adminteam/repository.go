package adminteam

import "context"

// Repository persists admin teams. Deleting a team removes its roster
// rows; athletes pointing at it keep existing with the link cleared.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	Create(ctx context.Context, t Team) (Team, error)
	Update(ctx context.Context, teamID string, patch Patch) (Team, bool, error)
	Delete(ctx context.Context, teamID string) (bool, error)
}

type Patch struct {
	Name        *string
	Image       *string
	Responsible *string
	Phone       *string
}
