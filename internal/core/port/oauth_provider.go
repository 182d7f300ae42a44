package port

import "context"

// OAuthTokenData - ответ провайдера на обмен авторизационного кода.
// Структура целиком ретранслируется окну-инициатору CMS-редактора.
type OAuthTokenData struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
}

// OAuthProviderPort - контракт identity-провайдера (GitHub).
type OAuthProviderPort interface {
	// AuthorizeURL строит URL страницы авторизации провайдера.
	AuthorizeURL(redirectURI, scope string) string

	// ExchangeCode обменивает авторизационный код на токен доступа.
	// Ответ провайдера с полем error оборачивается в domain.ErrValidation.
	ExchangeCode(ctx context.Context, code string) (*OAuthTokenData, error)
}
