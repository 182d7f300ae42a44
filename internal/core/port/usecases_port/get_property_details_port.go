package usecases_port

import (
	"context"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
)

type GetPropertyDetailsUseCase interface {
	Execute(ctx context.Context, propertyID string) (*domain.DetailView, error)
}
