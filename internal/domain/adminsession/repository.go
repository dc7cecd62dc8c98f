package adminsession

import "context"

type Repository interface {
	Get(ctx context.Context, token string) (Session, bool, error)
	Save(ctx context.Context, s Session) error
	Delete(ctx context.Context, token string) (bool, error)
}
