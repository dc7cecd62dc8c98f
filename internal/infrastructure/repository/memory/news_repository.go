package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/copa-nordeste/copa-api/internal/domain/news"
)

type NewsRepository struct {
	mu    sync.RWMutex
	items map[string]news.Article
}

func NewNewsRepository(articles []news.Article) *NewsRepository {
	items := make(map[string]news.Article, len(articles))
	for _, a := range articles {
		items[a.ID] = a
	}

	return &NewsRepository{items: items}
}

func (r *NewsRepository) List(_ context.Context) ([]news.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(news.Article) bool { return true }), nil
}

func (r *NewsRepository) ListPublished(_ context.Context) ([]news.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(a news.Article) bool { return a.IsPublished }), nil
}

func (r *NewsRepository) GetByID(_ context.Context, articleID string) (news.Article, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.items[articleID]
	if !ok {
		return news.Article{}, false, nil
	}

	return a, true, nil
}

func (r *NewsRepository) Create(_ context.Context, a news.Article) (news.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[a.ID] = a
	return a, nil
}

func (r *NewsRepository) Update(_ context.Context, articleID string, patch news.Patch) (news.Article, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.items[articleID]
	if !ok {
		return news.Article{}, false, nil
	}

	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Content != nil {
		a.Content = *patch.Content
	}
	if patch.Excerpt != nil {
		a.Excerpt = *patch.Excerpt
	}
	if patch.Author != nil {
		a.Author = *patch.Author
	}
	if patch.Image != nil {
		a.Image = *patch.Image
	}
	if patch.PublishedAt != nil {
		a.PublishedAt = *patch.PublishedAt
	}
	if patch.IsPublished != nil {
		a.IsPublished = *patch.IsPublished
	}

	r.items[articleID] = a
	return a, true, nil
}

func (r *NewsRepository) Delete(_ context.Context, articleID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[articleID]; !ok {
		return false, nil
	}
	delete(r.items, articleID)

	return true, nil
}

// collect assumes the read lock is held.
func (r *NewsRepository) collect(keep func(news.Article) bool) []news.Article {
	out := make([]news.Article, 0, len(r.items))
	for _, a := range r.items {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PublishedAt > out[j].PublishedAt })

	return out
}
