package githuboauth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port"
)

const (
	defaultAuthorizeEndpoint = "https://github.com/login/oauth/authorize"
	defaultTokenEndpoint     = "https://github.com/login/oauth/access_token"
)

// Config - настройки GitHub OAuth-приложения CMS-редактора.
type Config struct {
	ClientID     string
	ClientSecret string

	// Эндпоинты переопределяются только в тестах.
	AuthorizeEndpoint string
	TokenEndpoint     string
}

// Client реализует OAuthProviderPort для GitHub.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("github oauth client id and secret are required")
	}
	if cfg.AuthorizeEndpoint == "" {
		cfg.AuthorizeEndpoint = defaultAuthorizeEndpoint
	}
	if cfg.TokenEndpoint == "" {
		cfg.TokenEndpoint = defaultTokenEndpoint
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
	}, nil
}

// AuthorizeURL строит адрес страницы авторизации GitHub.
func (c *Client) AuthorizeURL(redirectURI, scope string) string {
	return fmt.Sprintf("%s?client_id=%s&redirect_uri=%s&scope=%s",
		c.cfg.AuthorizeEndpoint,
		url.QueryEscape(c.cfg.ClientID),
		url.QueryEscape(redirectURI),
		url.QueryEscape(scope),
	)
}

// DTO для запроса обмена кода.
type exchangeRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Code         string `json:"code"`
}

// Ответ GitHub: либо токен, либо пара error/error_description.
type exchangeResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	Scope            string `json:"scope"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ExchangeCode обменивает авторизационный код на токен доступа.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*port.OAuthTokenData, error) {
	reqBody, err := json.Marshal(exchangeRequest{
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		Code:         code,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal exchange request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenEndpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create exchange request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send exchange request to github: %v: %w", err, domain.ErrNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("github returned non-200 status: %d, body: %s: %w",
			resp.StatusCode, string(bodyBytes), domain.ErrNetwork)
	}

	var data exchangeResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode exchange response: %v: %w", err, domain.ErrValidation)
	}

	if data.Error != "" {
		return nil, fmt.Errorf("github oauth error: %s: %w", data.ErrorDescription, domain.ErrValidation)
	}
	if data.AccessToken == "" {
		return nil, fmt.Errorf("github response contains no access token: %w", domain.ErrValidation)
	}

	return &port.OAuthTokenData{
		AccessToken: data.AccessToken,
		TokenType:   data.TokenType,
		Scope:       data.Scope,
	}, nil
}
