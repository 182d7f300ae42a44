package usecase

import (
	"context"
	"fmt"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/contextkeys"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port"
)

// ProviderGitHub - единственный поддерживаемый identity-провайдер.
const ProviderGitHub = "github"

// ExchangeTokenUseCase обменивает авторизационный код CMS-редактора
// на токен доступа провайдера.
type ExchangeTokenUseCase struct {
	provider port.OAuthProviderPort
}

func NewExchangeTokenUseCase(provider port.OAuthProviderPort) *ExchangeTokenUseCase {
	return &ExchangeTokenUseCase{provider: provider}
}

func (uc *ExchangeTokenUseCase) AuthorizeURL(redirectURI, scope string) string {
	return uc.provider.AuthorizeURL(redirectURI, scope)
}

func (uc *ExchangeTokenUseCase) Execute(ctx context.Context, provider, code string) (*port.OAuthTokenData, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ExchangeToken",
		"provider": provider,
	})

	// Редирект обратно от GitHub приходит без параметра provider.
	if provider != "" && provider != ProviderGitHub {
		ucLogger.Warn("Unsupported OAuth provider requested", nil)
		return nil, fmt.Errorf("unsupported provider %q: %w", provider, domain.ErrValidation)
	}
	if code == "" {
		ucLogger.Warn("Authorization code is missing", nil)
		return nil, fmt.Errorf("no authorization code provided: %w", domain.ErrValidation)
	}

	ucLogger.Info("Use case started", nil)

	token, err := uc.provider.ExchangeCode(ctx, code)
	if err != nil {
		ucLogger.Error("Token exchange failed", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return token, nil
}
