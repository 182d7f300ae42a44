package configs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/configs"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONTENT_BASE_URL", "https://site.example")

	cfg, err := configs.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "property-site-service", cfg.AppName)
	assert.Equal(t, "8080", cfg.Rest.Port)
	assert.Equal(t, []string{"*"}, cfg.Rest.AllowedOrigins)
	assert.Equal(t, "https://site.example", cfg.Content.BaseURL)
	assert.False(t, cfg.FluentBit.Enabled)
}

func TestLoadConfigRequiresContentSource(t *testing.T) {
	t.Setenv("CONTENT_DIR", "")
	t.Setenv("CONTENT_BASE_URL", "")

	_, err := configs.LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigAllowedOrigins(t *testing.T) {
	t.Setenv("CONTENT_DIR", ".")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := configs.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Rest.AllowedOrigins)
}

func TestLoadConfigFluentBitRequiresHost(t *testing.T) {
	t.Setenv("CONTENT_DIR", ".")
	t.Setenv("FLUENTBIT_ENABLED", "true")
	t.Setenv("FLUENTBIT_HOST", "")

	cfg, err := configs.LoadConfig()
	require.NoError(t, err)
	// без хоста Fluent Bit отключается, а не роняет запуск
	assert.False(t, cfg.FluentBit.Enabled)
}
