package usecases_port

import (
	"context"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
)

// CatalogPage - результат просмотра каталога с примененными фильтрами.
type CatalogPage struct {
	Cards    []domain.Card
	Count    int
	Category string
	Sort     string
}

type BrowsePropertiesUseCase interface {
	Execute(ctx context.Context, category, sortKey string) (*CatalogPage, error)
}
