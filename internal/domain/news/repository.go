package news

import "context"

type Repository interface {
	List(ctx context.Context) ([]Article, error)
	ListPublished(ctx context.Context) ([]Article, error)
	GetByID(ctx context.Context, articleID string) (Article, bool, error)
	Create(ctx context.Context, a Article) (Article, error)
	Update(ctx context.Context, articleID string, patch Patch) (Article, bool, error)
	Delete(ctx context.Context, articleID string) (bool, error)
}

type Patch struct {
	Title       *string
	Content     *string
	Excerpt     *string
	Author      *string
	Image       *string
	PublishedAt *string
	IsPublished *bool
}
