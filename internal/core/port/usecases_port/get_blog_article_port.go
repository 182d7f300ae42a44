package usecases_port

import (
	"context"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
)

type GetBlogArticleUseCase interface {
	Execute(ctx context.Context, blogID string) (*domain.BlogArticle, error)
}
