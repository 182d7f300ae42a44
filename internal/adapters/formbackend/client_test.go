package formbackend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/adapters/formbackend"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	t.Parallel()

	_, err := formbackend.NewClient("", "key")
	assert.Error(t, err)
}

func TestSubmitSendsEnquiry(t *testing.T) {
	t.Parallel()

	var payload map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)

	client, err := formbackend.NewClient(ts.URL, "access-key-1")
	require.NoError(t, err)

	enquiry := domain.Enquiry{
		Name:    "Abin Thomas",
		Email:   "abin@example.com",
		Message: "Interested in the hillside house.",
	}
	require.NoError(t, client.Submit(context.Background(), enquiry))

	assert.Equal(t, "access-key-1", payload["access_key"])
	assert.Equal(t, "Abin Thomas", payload["name"])
	assert.Equal(t, "Interested in the hillside house.", payload["message"])
	// пустой телефон не сериализуется
	_, hasPhone := payload["phone"]
	assert.False(t, hasPhone)
}

func TestSubmitNon2xxIsNetworkError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	t.Cleanup(ts.Close)

	client, err := formbackend.NewClient(ts.URL, "")
	require.NoError(t, err)

	err = client.Submit(context.Background(), domain.Enquiry{Name: "A", Email: "a@b.c", Message: "hello"})
	assert.ErrorIs(t, err, domain.ErrNetwork)
}
