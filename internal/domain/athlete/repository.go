package athlete

import "context"

type Repository interface {
	List(ctx context.Context) ([]Athlete, error)
	ListByTeam(ctx context.Context, teamID string) ([]Athlete, error)
	GetByID(ctx context.Context, athleteID string) (Athlete, bool, error)
	Create(ctx context.Context, a Athlete) (Athlete, error)
	Update(ctx context.Context, athleteID string, patch Patch) (Athlete, bool, error)
	Delete(ctx context.Context, athleteID string) (bool, error)
}

type Patch struct {
	Name     *string
	Document *string
	Image    *string
	TeamID   *string
}
