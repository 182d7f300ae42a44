package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/contextkeys"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port/usecases_port"
)

type BlogHandler struct {
	feedUC    usecases_port.GetBlogFeedUseCase
	articleUC usecases_port.GetBlogArticleUseCase
}

func NewBlogHandler(feedUC usecases_port.GetBlogFeedUseCase,
	articleUC usecases_port.GetBlogArticleUseCase) *BlogHandler {
	return &BlogHandler{
		feedUC:    feedUC,
		articleUC: articleUC,
	}
}

// GetBlogFeed обрабатывает GET /api/v1/blogs
func (h *BlogHandler) GetBlogFeed(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "GetBlogFeed",
	})
	handlerLogger.Debug("Processing request for blog feed", nil)

	previews, err := h.feedUC.Execute(r.Context())
	if err != nil {
		respondDomainError(w, handlerLogger, err, "Failed to load blog feed")
		return
	}

	response := BlogFeedResponse{
		Count: len(previews),
		Data:  make([]BlogPreviewResponse, len(previews)),
	}
	for i, preview := range previews {
		response.Data[i] = BlogPreviewResponse{
			ID:          preview.ID,
			Tag:         preview.Tag,
			Date:        preview.Date,
			Title:       preview.Title,
			Image:       preview.Image,
			ArticleLink: preview.ArticleLink,
		}
	}

	handlerLogger.Info("Successfully loaded blog feed", port.Fields{
		"total_articles": response.Count,
	})

	RespondWithJSON(w, http.StatusOK, response)
}

// GetBlogArticle обрабатывает GET /api/v1/blogs/{blogID}
func (h *BlogHandler) GetBlogArticle(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	blogID := chi.URLParam(r, "blogID")

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "GetBlogArticle",
		"blog_id": blogID,
	})
	handlerLogger.Debug("Processing request for blog article", nil)

	article, err := h.articleUC.Execute(r.Context(), blogID)
	if err != nil {
		respondDomainError(w, handlerLogger, err, "Blog article not found")
		return
	}

	response := BlogArticleResponse{
		ID:           article.ID,
		Tag:          article.Tag,
		Date:         article.Date,
		ArticleTitle: article.ArticleTitle,
		ArticleImage: article.ArticleImage,
		Content:      article.Content,
	}

	handlerLogger.Info("Successfully loaded blog article", nil)
	RespondWithJSON(w, http.StatusOK, response)
}
