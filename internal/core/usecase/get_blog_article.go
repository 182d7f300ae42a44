package usecase

import (
	"context"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/contextkeys"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port"
)

// GetBlogArticleUseCase - одна статья блога по идентификатору.
type GetBlogArticleUseCase struct {
	source port.ContentSourcePort
}

func NewGetBlogArticleUseCase(source port.ContentSourcePort) *GetBlogArticleUseCase {
	return &GetBlogArticleUseCase{source: source}
}

func (uc *GetBlogArticleUseCase) Execute(ctx context.Context, blogID string) (*domain.BlogArticle, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetBlogArticle",
		"blog_id":  blogID,
	})

	ucLogger.Debug("Use case started", nil)

	article, err := uc.source.FetchBlogArticle(ctx, blogID)
	if err != nil {
		ucLogger.Error("Content source returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return article, nil
}
