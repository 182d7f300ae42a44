package usecase

import (
	"context"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/contextkeys"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port"
)

// GetPageContentUseCase - CMS-документ страницы (тексты, ссылки, подписи).
type GetPageContentUseCase struct {
	source port.ContentSourcePort
}

func NewGetPageContentUseCase(source port.ContentSourcePort) *GetPageContentUseCase {
	return &GetPageContentUseCase{source: source}
}

func (uc *GetPageContentUseCase) Execute(ctx context.Context, pageName string) (domain.PageContent, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetPageContent",
		"page":     pageName,
	})

	ucLogger.Debug("Use case started", nil)

	content, err := uc.source.FetchPageContent(ctx, pageName)
	if err != nil {
		ucLogger.Error("Content source returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_keys": len(content),
	})

	return content, nil
}
