package usecases_port

import (
	"context"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port"
)

type ExchangeTokenUseCase interface {
	// AuthorizeURL строит адрес страницы авторизации провайдера
	// для первичного редиректа из CMS-редактора.
	AuthorizeURL(redirectURI, scope string) string

	Execute(ctx context.Context, provider, code string) (*port.OAuthTokenData, error)
}
