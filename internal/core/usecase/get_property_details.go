package usecase

import (
	"context"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/contextkeys"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port"
)

// GetPropertyDetailsUseCase - детальное представление одного объекта.
type GetPropertyDetailsUseCase struct {
	source port.ContentSourcePort
}

func NewGetPropertyDetailsUseCase(source port.ContentSourcePort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{source: source}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, propertyID string) (*domain.DetailView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
		"property_id": propertyID,
	})

	ucLogger.Debug("Use case started", nil)

	record, err := uc.source.FetchProperty(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Content source returned an error", err, nil)
		return nil, err
	}

	view := domain.NewDetailView(*record)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"images": len(view.Images),
	})

	return &view, nil
}
