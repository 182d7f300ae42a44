package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/usecase"
)

type fakeOAuthProvider struct {
	exchangedCode string
	token         *port.OAuthTokenData
	err           error
}

func (f *fakeOAuthProvider) AuthorizeURL(redirectURI, scope string) string {
	return "https://example.com/authorize?redirect_uri=" + redirectURI + "&scope=" + scope
}

func (f *fakeOAuthProvider) ExchangeCode(ctx context.Context, code string) (*port.OAuthTokenData, error) {
	f.exchangedCode = code
	return f.token, f.err
}

func TestExchangeTokenSuccess(t *testing.T) {
	t.Parallel()

	provider := &fakeOAuthProvider{token: &port.OAuthTokenData{AccessToken: "gho_abc", TokenType: "bearer", Scope: "repo,user"}}
	uc := usecase.NewExchangeTokenUseCase(provider)

	token, err := uc.Execute(context.Background(), "github", "code-123")
	require.NoError(t, err)
	assert.Equal(t, "gho_abc", token.AccessToken)
	assert.Equal(t, "code-123", provider.exchangedCode)
}

func TestExchangeTokenEmptyProviderAccepted(t *testing.T) {
	t.Parallel()

	provider := &fakeOAuthProvider{token: &port.OAuthTokenData{AccessToken: "gho_abc"}}
	uc := usecase.NewExchangeTokenUseCase(provider)

	// редирект от GitHub приходит без параметра provider
	_, err := uc.Execute(context.Background(), "", "code-123")
	assert.NoError(t, err)
}

func TestExchangeTokenUnsupportedProvider(t *testing.T) {
	t.Parallel()

	provider := &fakeOAuthProvider{}
	uc := usecase.NewExchangeTokenUseCase(provider)

	_, err := uc.Execute(context.Background(), "gitlab", "code-123")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, provider.exchangedCode)
}

func TestExchangeTokenMissingCode(t *testing.T) {
	t.Parallel()

	uc := usecase.NewExchangeTokenUseCase(&fakeOAuthProvider{})

	_, err := uc.Execute(context.Background(), "github", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExchangeTokenProviderError(t *testing.T) {
	t.Parallel()

	provider := &fakeOAuthProvider{err: fmt.Errorf("bad code: %w", domain.ErrValidation)}
	uc := usecase.NewExchangeTokenUseCase(provider)

	_, err := uc.Execute(context.Background(), "github", "expired")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExchangeTokenAuthorizeURLDelegates(t *testing.T) {
	t.Parallel()

	uc := usecase.NewExchangeTokenUseCase(&fakeOAuthProvider{})

	url := uc.AuthorizeURL("https://site.example/auth/callback", "repo,user")
	assert.Contains(t, url, "redirect_uri=https://site.example/auth/callback")
}
