package httpapi

import (
	"net/http"

	"github.com/copa-nordeste/copa-api/internal/domain/news"
	"github.com/copa-nordeste/copa-api/internal/usecase"
)

type createNewsRequest struct {
	Title       string `json:"title" validate:"required,max=300"`
	Content     string `json:"content" validate:"required"`
	Excerpt     string `json:"excerpt" validate:"omitempty,max=500"`
	Author      string `json:"author" validate:"required,max=200"`
	Image       string `json:"image"`
	PublishedAt string `json:"publishedAt" validate:"required,datetime=2006-01-02"`
	IsPublished bool   `json:"isPublished"`
}

type updateNewsRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=300"`
	Content     *string `json:"content"`
	Excerpt     *string `json:"excerpt" validate:"omitempty,max=500"`
	Author      *string `json:"author" validate:"omitempty,max=200"`
	Image       *string `json:"image"`
	PublishedAt *string `json:"publishedAt" validate:"omitempty,datetime=2006-01-02"`
	IsPublished *bool   `json:"isPublished"`
}

// ListAllNews is the admin listing; unlike the public feed it includes
// drafts.
func (h *Handler) ListAllNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAllNews")
	defer span.End()

	articles, err := h.newsService.ListAllArticles(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list all news failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]newsDTO, 0, len(articles))
	for _, a := range articles {
		items = append(items, newsToDTO(a))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateNews")
	defer span.End()

	var req createNewsRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.newsService.CreateArticle(ctx, usecase.CreateArticleInput{
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Author:      req.Author,
		Image:       req.Image,
		PublishedAt: req.PublishedAt,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create news failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, newsToDTO(created))
}

func (h *Handler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateNews")
	defer span.End()

	articleID := r.PathValue("newsID")

	var req updateNewsRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.newsService.UpdateArticle(ctx, articleID, news.Patch{
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Author:      req.Author,
		Image:       req.Image,
		PublishedAt: req.PublishedAt,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update news failed", "news_id", articleID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, newsToDTO(updated))
}

func (h *Handler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteNews")
	defer span.End()

	articleID := r.PathValue("newsID")
	if err := h.newsService.DeleteArticle(ctx, articleID); err != nil {
		h.logger.WarnContext(ctx, "delete news failed", "news_id", articleID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeMessage(ctx, w, http.StatusOK, "News deleted successfully")
}

func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListContacts")
	defer span.End()

	messages, err := h.contactService.ListMessages(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list contacts failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]contactDTO, 0, len(messages))
	for _, m := range messages {
		items = append(items, contactToDTO(m))
	}

	writeJSON(ctx, w, http.StatusOK, items)
}
