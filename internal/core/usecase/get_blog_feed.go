package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/contextkeys"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port"
)

// GetBlogFeedUseCase собирает ленту блога: индекс + статьи тем же
// параллельным join "все или ничего", что и каталог.
type GetBlogFeedUseCase struct {
	source port.ContentSourcePort
}

func NewGetBlogFeedUseCase(source port.ContentSourcePort) *GetBlogFeedUseCase {
	return &GetBlogFeedUseCase{source: source}
}

func (uc *GetBlogFeedUseCase) Execute(ctx context.Context) ([]domain.BlogPreview, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetBlogFeed",
	})

	ucLogger.Debug("Use case started", nil)

	ids, err := uc.source.FetchBlogIndex(ctx)
	if err != nil {
		ucLogger.Error("Failed to fetch blog index", err, nil)
		return nil, fmt.Errorf("load blog feed: %w", err)
	}

	previews := make([]domain.BlogPreview, len(ids))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		group.Go(func() error {
			article, err := uc.source.FetchBlogArticle(groupCtx, id)
			if err != nil {
				return fmt.Errorf("blog %s: %w", id, err)
			}
			previews[i] = domain.NewBlogPreview(*article)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		ucLogger.Error("Blog feed load failed", err, port.Fields{"total_ids": len(ids)})
		return nil, fmt.Errorf("load blog feed: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_articles": len(previews),
	})

	return previews, nil
}
