package usecases_port

import (
	"context"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
)

type GetPageContentUseCase interface {
	Execute(ctx context.Context, pageName string) (domain.PageContent, error)
}
