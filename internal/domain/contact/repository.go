package contact

import "context"

type Repository interface {
	List(ctx context.Context) ([]Message, error)
	Create(ctx context.Context, m Message) (Message, error)
}
