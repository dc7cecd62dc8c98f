package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/news"
	"github.com/copa-nordeste/copa-api/internal/platform/cache"
	"github.com/copa-nordeste/copa-api/internal/platform/id"
)

const publishedNewsCacheKey = "news:published"

// NewsService serves the public article feed and the admin side that
// maintains it. Unpublished articles stay out of the public surface.
type NewsService struct {
	newsRepo news.Repository
	cache    *cache.Store
	ids      id.Generator
	now      func() time.Time
}

func NewNewsService(newsRepo news.Repository, cacheStore *cache.Store, ids id.Generator, now func() time.Time) *NewsService {
	if now == nil {
		now = time.Now
	}
	return &NewsService{
		newsRepo: newsRepo,
		cache:    cacheStore,
		ids:      ids,
		now:      now,
	}
}

// CreateArticleInput carries the insertable article fields.
type CreateArticleInput struct {
	Title       string
	Content     string
	Excerpt     string
	Author      string
	Image       string
	PublishedAt string
	IsPublished bool
}

func (s *NewsService) ListPublishedArticles(ctx context.Context) ([]news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.ListPublishedArticles")
	defer span.End()

	if s.cache == nil {
		articles, err := s.newsRepo.ListPublished(ctx)
		if err != nil {
			return nil, fmt.Errorf("list published news: %w", err)
		}
		return articles, nil
	}

	out, err := s.cache.GetOrLoad(ctx, publishedNewsCacheKey, func(ctx context.Context) (any, error) {
		return s.newsRepo.ListPublished(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list published news: %w", err)
	}

	articles, ok := out.([]news.Article)
	if !ok {
		return nil, fmt.Errorf("unexpected cached value type %T", out)
	}

	return articles, nil
}

// GetPublishedArticle is the public read; drafts answer not-found.
func (s *NewsService) GetPublishedArticle(ctx context.Context, articleID string) (news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.GetPublishedArticle")
	defer span.End()

	a, err := s.getArticle(ctx, articleID)
	if err != nil {
		return news.Article{}, err
	}
	if !a.IsPublished {
		return news.Article{}, fmt.Errorf("%w: news=%s", ErrNotFound, articleID)
	}

	return a, nil
}

func (s *NewsService) ListAllArticles(ctx context.Context) ([]news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.ListAllArticles")
	defer span.End()

	articles, err := s.newsRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}

	return articles, nil
}

func (s *NewsService) CreateArticle(ctx context.Context, input CreateArticleInput) (news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.CreateArticle")
	defer span.End()

	articleID, err := s.ids.NewID()
	if err != nil {
		return news.Article{}, fmt.Errorf("generate news id: %w", err)
	}

	a := news.Article{
		ID:          articleID,
		Title:       strings.TrimSpace(input.Title),
		Content:     input.Content,
		Excerpt:     input.Excerpt,
		Author:      strings.TrimSpace(input.Author),
		Image:       input.Image,
		PublishedAt: input.PublishedAt,
		IsPublished: input.IsPublished,
		CreatedAt:   s.now().UTC(),
	}
	if err := a.Validate(); err != nil {
		return news.Article{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.newsRepo.Create(ctx, a)
	if err != nil {
		return news.Article{}, fmt.Errorf("create news: %w", err)
	}
	s.invalidate(ctx)

	return created, nil
}

func (s *NewsService) UpdateArticle(ctx context.Context, articleID string, patch news.Patch) (news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.UpdateArticle")
	defer span.End()

	articleID = strings.TrimSpace(articleID)
	if articleID == "" {
		return news.Article{}, fmt.Errorf("%w: news id is required", ErrInvalidInput)
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return news.Article{}, fmt.Errorf("%w: news title cannot be blank", ErrInvalidInput)
	}

	updated, exists, err := s.newsRepo.Update(ctx, articleID, patch)
	if err != nil {
		return news.Article{}, fmt.Errorf("update news: %w", err)
	}
	if !exists {
		return news.Article{}, fmt.Errorf("%w: news=%s", ErrNotFound, articleID)
	}
	s.invalidate(ctx)

	return updated, nil
}

func (s *NewsService) DeleteArticle(ctx context.Context, articleID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.DeleteArticle")
	defer span.End()

	articleID = strings.TrimSpace(articleID)
	if articleID == "" {
		return fmt.Errorf("%w: news id is required", ErrInvalidInput)
	}

	removed, err := s.newsRepo.Delete(ctx, articleID)
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	if !removed {
		return fmt.Errorf("%w: news=%s", ErrNotFound, articleID)
	}
	s.invalidate(ctx)

	return nil
}

func (s *NewsService) getArticle(ctx context.Context, articleID string) (news.Article, error) {
	articleID = strings.TrimSpace(articleID)
	if articleID == "" {
		return news.Article{}, fmt.Errorf("%w: news id is required", ErrInvalidInput)
	}

	a, exists, err := s.newsRepo.GetByID(ctx, articleID)
	if err != nil {
		return news.Article{}, fmt.Errorf("get news: %w", err)
	}
	if !exists {
		return news.Article{}, fmt.Errorf("%w: news=%s", ErrNotFound, articleID)
	}

	return a, nil
}

func (s *NewsService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Delete(ctx, publishedNewsCacheKey)
	}
}
