package formbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/contextkeys"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
)

// Client реализует EnquiryGatewayPort: пересылает обращение контактной
// формы во внешний форм-бэкенд. Сервис - только ретранслятор, письмо
// отправляет сам бэкенд.
type Client struct {
	endpointURL string
	accessKey   string
	httpClient  *http.Client
}

func NewClient(endpointURL, accessKey string) (*Client, error) {
	if endpointURL == "" {
		return nil, fmt.Errorf("form backend endpoint URL is required")
	}
	return &Client{
		endpointURL: endpointURL,
		accessKey:   accessKey,
		httpClient:  &http.Client{},
	}, nil
}

// DTO в формате форм-бэкенда.
type submissionRequest struct {
	AccessKey string `json:"access_key,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
}

func (c *Client) Submit(ctx context.Context, enquiry domain.Enquiry) error {
	reqBody, err := json.Marshal(submissionRequest{
		AccessKey: c.accessKey,
		Name:      enquiry.Name,
		Email:     enquiry.Email,
		Phone:     enquiry.Phone,
		Subject:   enquiry.Subject,
		Message:   enquiry.Message,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal enquiry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create enquiry request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send enquiry to form backend: %v: %w", err, domain.ErrNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("form backend returned status %d, body: %s: %w",
			resp.StatusCode, string(bodyBytes), domain.ErrNetwork)
	}

	return nil
}
