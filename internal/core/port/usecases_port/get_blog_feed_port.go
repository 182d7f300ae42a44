package usecases_port

import (
	"context"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
)

type GetBlogFeedUseCase interface {
	Execute(ctx context.Context) ([]domain.BlogPreview, error)
}
