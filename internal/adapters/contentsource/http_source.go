package contentsource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/constants"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/contextkeys"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
)

// HTTPSource реализует ContentSourcePort поверх удаленного origin
// со статикой сайта (baseURL + /content/...).
type HTTPSource struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPSource(baseURL string) (*HTTPSource, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("content base URL is required")
	}
	return &HTTPSource{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
	}, nil
}

// get выполняет запрос документа и возвращает тело.
// Сетевые проблемы - ErrNetwork, 404 - ErrNotFound, прочие статусы - ErrNetwork.
func (s *HTTPSource) get(ctx context.Context, path string) ([]byte, error) {
	url := s.baseURL + "/" + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %v: %w", url, err, domain.ErrNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("document %s: %w", path, domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("document %s returned status %d: %w", path, resp.StatusCode, domain.ErrNetwork)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s body: %v: %w", url, err, domain.ErrNetwork)
	}
	return body, nil
}

func (s *HTTPSource) FetchPropertyIndex(ctx context.Context) ([]string, error) {
	raw, err := s.get(ctx, constants.PropertyIndexPath)
	if err != nil {
		return nil, err
	}
	return parsePropertyIndex(raw)
}

func (s *HTTPSource) FetchProperty(ctx context.Context, propertyID string) (*domain.PropertyRecord, error) {
	raw, err := s.get(ctx, fmt.Sprintf(constants.PropertyDocumentPath, propertyID))
	if err != nil {
		return nil, err
	}
	return toDomainProperty(raw)
}

func (s *HTTPSource) FetchBlogIndex(ctx context.Context) ([]string, error) {
	raw, err := s.get(ctx, constants.BlogIndexPath)
	if err != nil {
		return nil, err
	}
	return parseBlogIndex(raw)
}

func (s *HTTPSource) FetchBlogArticle(ctx context.Context, blogID string) (*domain.BlogArticle, error) {
	raw, err := s.get(ctx, fmt.Sprintf(constants.BlogDocumentPath, blogID))
	if err != nil {
		return nil, err
	}
	return toDomainArticle(raw)
}

func (s *HTTPSource) FetchPageContent(ctx context.Context, pageName string) (domain.PageContent, error) {
	raw, err := s.get(ctx, fmt.Sprintf(constants.PageDocumentPath, pageName))
	if err != nil {
		return nil, err
	}
	return toDomainPageContent(raw)
}
