package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/copa-nordeste/copa-api/internal/domain/news"
	qb "github.com/copa-nordeste/copa-api/internal/platform/querybuilder"
)

type NewsRepository struct {
	db *sqlx.DB
}

func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) List(ctx context.Context) ([]news.Article, error) {
	query, args, err := qb.Select("*").From("news").
		OrderBy("published_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list news query: %w", err)
	}

	return r.selectArticles(ctx, query, args)
}

func (r *NewsRepository) ListPublished(ctx context.Context) ([]news.Article, error) {
	query, args, err := qb.Select("*").From("news").
		Where(qb.Eq("is_published", true)).
		OrderBy("published_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list published news query: %w", err)
	}

	return r.selectArticles(ctx, query, args)
}

func (r *NewsRepository) GetByID(ctx context.Context, articleID string) (news.Article, bool, error) {
	query, args, err := qb.Select("*").From("news").
		Where(qb.Eq("id", articleID)).
		ToSQL()
	if err != nil {
		return news.Article{}, false, fmt.Errorf("build get news query: %w", err)
	}

	var row newsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return news.Article{}, false, nil
		}
		return news.Article{}, false, fmt.Errorf("get news: %w", err)
	}

	return articleFromRow(row), true, nil
}

func (r *NewsRepository) Create(ctx context.Context, a news.Article) (news.Article, error) {
	insertModel := newsTableModel{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		Excerpt:     nullString(a.Excerpt),
		Author:      a.Author,
		Image:       nullString(a.Image),
		PublishedAt: a.PublishedAt,
		IsPublished: a.IsPublished,
		CreatedAt:   a.CreatedAt,
	}
	query, args, err := qb.InsertModel("news", insertModel, "")
	if err != nil {
		return news.Article{}, fmt.Errorf("build create news query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return news.Article{}, fmt.Errorf("create news: %w", err)
	}

	return a, nil
}

func (r *NewsRepository) Update(ctx context.Context, articleID string, patch news.Patch) (news.Article, bool, error) {
	b := qb.Update("news").
		SetIf(patch.Title != nil, "title", deref(patch.Title)).
		SetIf(patch.Content != nil, "content", deref(patch.Content)).
		SetIf(patch.Excerpt != nil, "excerpt", nullString(deref(patch.Excerpt))).
		SetIf(patch.Author != nil, "author", deref(patch.Author)).
		SetIf(patch.Image != nil, "image", nullString(deref(patch.Image))).
		SetIf(patch.PublishedAt != nil, "published_at", deref(patch.PublishedAt)).
		SetIf(patch.IsPublished != nil, "is_published", derefBool(patch.IsPublished)).
		Where(qb.Eq("id", articleID))

	if !b.HasSets() {
		return r.GetByID(ctx, articleID)
	}

	query, args, err := b.Suffix("RETURNING *").ToSQL()
	if err != nil {
		return news.Article{}, false, fmt.Errorf("build update news query: %w", err)
	}

	var row newsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return news.Article{}, false, nil
		}
		return news.Article{}, false, fmt.Errorf("update news: %w", err)
	}

	return articleFromRow(row), true, nil
}

func (r *NewsRepository) Delete(ctx context.Context, articleID string) (bool, error) {
	query, args, err := qb.DeleteFrom("news").
		Where(qb.Eq("id", articleID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete news query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete news: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete news: %w", err)
	}

	return affected > 0, nil
}

func (r *NewsRepository) selectArticles(ctx context.Context, query string, args []any) ([]news.Article, error) {
	var rows []newsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select news: %w", err)
	}

	out := make([]news.Article, 0, len(rows))
	for _, row := range rows {
		out = append(out, articleFromRow(row))
	}

	return out, nil
}
