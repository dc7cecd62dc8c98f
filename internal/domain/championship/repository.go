package championship

import (
	"context"

	"github.com/copa-nordeste/copa-api/internal/domain/adminteam"
)

// Repository persists championships and their team roster. List returns
// the most recently created championship first. Deleting a championship
// removes its roster rows in the same unit of work.
type Repository interface {
	List(ctx context.Context) ([]Championship, error)
	GetByID(ctx context.Context, championshipID string) (Championship, bool, error)
	Create(ctx context.Context, c Championship) (Championship, error)
	Update(ctx context.Context, championshipID string, patch Patch) (Championship, bool, error)
	Delete(ctx context.Context, championshipID string) (bool, error)

	ListTeams(ctx context.Context, championshipID string) ([]adminteam.Team, error)
	AddTeam(ctx context.Context, entry Entry) (Entry, error)
	RemoveTeam(ctx context.Context, championshipID, teamID string) (bool, error)
}

type Patch struct {
	Name      *string
	Image     *string
	StartDate *string
	EndDate   *string
}
