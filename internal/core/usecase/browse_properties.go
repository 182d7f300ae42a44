package usecase

import (
	"context"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/contextkeys"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port/usecases_port"
)

// BrowsePropertiesUseCase собирает страницу каталога: грузит полный
// список и применяет фильтр/сортировку через CatalogState. Состояние
// живет в пределах одного запроса, как и у страницы в браузере.
type BrowsePropertiesUseCase struct {
	loader *CatalogLoader
}

func NewBrowsePropertiesUseCase(loader *CatalogLoader) *BrowsePropertiesUseCase {
	return &BrowsePropertiesUseCase{loader: loader}
}

func (uc *BrowsePropertiesUseCase) Execute(ctx context.Context, category, sortKey string) (*usecases_port.CatalogPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "BrowseProperties",
		"category": category,
		"sort":     sortKey,
	})

	ucLogger.Info("Use case started", nil)

	records, err := uc.loader.LoadAll(ctx)
	if err != nil {
		ucLogger.Error("Catalog loader returned an error", err, nil)
		return nil, err
	}

	state := domain.NewCatalogState(records)
	state.SetCategory(category)
	state.SetSort(sortKey)

	visible := state.GetVisible()
	cards := make([]domain.Card, len(visible))
	for i, record := range visible {
		cards[i] = domain.NewCard(record)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_loaded":  len(records),
		"total_visible": len(cards),
	})

	return &usecases_port.CatalogPage{
		Cards:    cards,
		Count:    len(cards),
		Category: state.Category(),
		Sort:     state.Sort(),
	}, nil
}
