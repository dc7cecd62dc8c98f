package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/news"
	"github.com/copa-nordeste/copa-api/internal/infrastructure/repository/memory"
	"github.com/copa-nordeste/copa-api/internal/platform/cache"
	"github.com/copa-nordeste/copa-api/internal/platform/id"
)

func newNewsService() *NewsService {
	now := func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return NewNewsService(
		memory.NewNewsRepository(memory.SeedNews()),
		cache.NewStore(time.Minute),
		id.NewUUIDGenerator(),
		now,
	)
}

func TestNewsService_PublishedListing_ExcludesDrafts(t *testing.T) {
	svc := newNewsService()

	published, err := svc.ListPublishedArticles(t.Context())
	if err != nil {
		t.Fatalf("list published: %v", err)
	}
	all, err := svc.ListAllArticles(t.Context())
	if err != nil {
		t.Fatalf("list all: %v", err)
	}

	if len(published) >= len(all) {
		t.Fatalf("seed should carry at least one draft: published=%d all=%d", len(published), len(all))
	}
	for _, a := range published {
		if !a.IsPublished {
			t.Fatalf("draft leaked into published listing: %+v", a)
		}
	}
}

func TestNewsService_PublishedListing_NewestFirst(t *testing.T) {
	svc := newNewsService()

	published, err := svc.ListPublishedArticles(t.Context())
	if err != nil {
		t.Fatalf("list published: %v", err)
	}
	for i := 1; i < len(published); i++ {
		if published[i-1].PublishedAt < published[i].PublishedAt {
			t.Fatalf("listing out of order at %d: %s before %s", i, published[i-1].PublishedAt, published[i].PublishedAt)
		}
	}
}

func TestNewsService_GetPublished_DraftAnswersNotFound(t *testing.T) {
	svc := newNewsService()

	all, err := svc.ListAllArticles(t.Context())
	if err != nil {
		t.Fatalf("list all: %v", err)
	}

	var draftID string
	for _, a := range all {
		if !a.IsPublished {
			draftID = a.ID
			break
		}
	}
	if draftID == "" {
		t.Fatal("expected a seeded draft article")
	}

	_, err = svc.GetPublishedArticle(t.Context(), draftID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for draft, got %v", err)
	}
}

func TestNewsService_Create_InvalidatesPublishedCache(t *testing.T) {
	svc := newNewsService()

	before, err := svc.ListPublishedArticles(t.Context())
	if err != nil {
		t.Fatalf("list published: %v", err)
	}

	if _, err := svc.CreateArticle(t.Context(), CreateArticleInput{
		Title:       "Final set for Arena Castelão",
		Content:     "The decisive match moves to Fortaleza.",
		Author:      "Redação",
		PublishedAt: "2026-03-01",
		IsPublished: true,
	}); err != nil {
		t.Fatalf("create article: %v", err)
	}

	after, err := svc.ListPublishedArticles(t.Context())
	if err != nil {
		t.Fatalf("list published after create: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("cached listing was not invalidated: before=%d after=%d", len(before), len(after))
	}
}

func TestNewsService_Update_PublishFlagFlipsVisibility(t *testing.T) {
	svc := newNewsService()

	created, err := svc.CreateArticle(t.Context(), CreateArticleInput{
		Title:   "Group draw preview",
		Content: "Who meets whom in the first round.",
		Author:  "Redação",
	})
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}

	if _, err := svc.GetPublishedArticle(t.Context(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("draft should be invisible, got %v", err)
	}

	publish := true
	publishedAt := "2026-03-02"
	if _, err := svc.UpdateArticle(t.Context(), created.ID, news.Patch{IsPublished: &publish, PublishedAt: &publishedAt}); err != nil {
		t.Fatalf("publish article: %v", err)
	}

	got, err := svc.GetPublishedArticle(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("published article should be visible: %v", err)
	}
	if got.PublishedAt != publishedAt {
		t.Fatalf("unexpected publish date: %s", got.PublishedAt)
	}
}

func TestNewsService_Delete_Twice(t *testing.T) {
	svc := newNewsService()

	created, err := svc.CreateArticle(t.Context(), CreateArticleInput{
		Title:   "Short-lived note",
		Content: "Gone soon.",
		Author:  "Redação",
	})
	if err != nil {
		t.Fatalf("create article: %v", err)
	}

	if err := svc.DeleteArticle(t.Context(), created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	err = svc.DeleteArticle(t.Context(), created.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
