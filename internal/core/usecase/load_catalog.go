package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/contextkeys"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port"
)

// CatalogLoader загружает полный каталог: индексный документ, затем
// все карточки объектов параллельно. Семантика join - все или ничего:
// ошибка любой загрузки валит операцию целиком, частичный список
// не возвращается. Результат сохраняет порядок индекса, а не порядок
// завершения запросов.
type CatalogLoader struct {
	source port.ContentSourcePort
}

func NewCatalogLoader(source port.ContentSourcePort) *CatalogLoader {
	return &CatalogLoader{source: source}
}

func (l *CatalogLoader) LoadAll(ctx context.Context) ([]domain.PropertyRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	ids, err := l.source.FetchPropertyIndex(ctx)
	if err != nil {
		logger.Error("Failed to fetch property index", err, nil)
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	records := make([]domain.PropertyRecord, len(ids))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		group.Go(func() error {
			record, err := l.source.FetchProperty(groupCtx, id)
			if err != nil {
				return fmt.Errorf("property %s: %w", id, err)
			}
			records[i] = *record
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		logger.Error("Catalog load failed", err, port.Fields{"total_ids": len(ids)})
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	logger.Debug("Catalog loaded", port.Fields{"total_records": len(records)})
	return records, nil
}
