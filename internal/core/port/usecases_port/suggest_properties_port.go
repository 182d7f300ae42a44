package usecases_port

import (
	"context"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
)

type SuggestPropertiesUseCase interface {
	Execute(ctx context.Context, query string) (*domain.SearchResult, error)
}
