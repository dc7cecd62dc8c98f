package referee

import "context"

type Repository interface {
	List(ctx context.Context) ([]Referee, error)
	GetByID(ctx context.Context, refereeID string) (Referee, bool, error)
	Create(ctx context.Context, r Referee) (Referee, error)
	Update(ctx context.Context, refereeID string, patch Patch) (Referee, bool, error)
	Delete(ctx context.Context, refereeID string) (bool, error)
}

type Patch struct {
	Name  *string
	Image *string
}
