package usecase

import (
	"context"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/contextkeys"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port"
)

// SuggestPropertiesUseCase - поисковые подсказки по каталогу.
type SuggestPropertiesUseCase struct {
	loader *CatalogLoader
}

func NewSuggestPropertiesUseCase(loader *CatalogLoader) *SuggestPropertiesUseCase {
	return &SuggestPropertiesUseCase{loader: loader}
}

func (uc *SuggestPropertiesUseCase) Execute(ctx context.Context, query string) (*domain.SearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SuggestProperties",
	})

	ucLogger.Debug("Use case started", nil)

	records, err := uc.loader.LoadAll(ctx)
	if err != nil {
		ucLogger.Error("Catalog loader returned an error", err, nil)
		return nil, err
	}

	result := domain.SearchCatalog(records, query)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"suggestions": len(result.Suggestions),
		"no_results":  result.NoResults,
	})

	return &result, nil
}
