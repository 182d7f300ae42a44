package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig хранит всю конфигурацию приложения.
type AppConfig struct {
	AppName string

	Rest    RestConfig
	Content ContentConfig
	OAuth   OAuthConfig
	Form    FormConfig

	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

type RestConfig struct {
	Port           string
	AllowedOrigins []string
}

// ContentConfig выбирает источник контента: локальная директория
// имеет приоритет над удаленным origin.
type ContentConfig struct {
	Dir     string
	BaseURL string
}

type OAuthConfig struct {
	GitHubClientID     string
	GitHubClientSecret string
	// RedirectBaseURL - публичный адрес сервиса, на который GitHub
	// возвращает пользователя (…/auth/callback).
	RedirectBaseURL string
}

type FormConfig struct {
	EndpointURL string
	AccessKey   string
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// LoadConfig загружает конфигурацию из переменных окружения.
// Рекомендуется использовать .env файл для локальной разработки.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		AppName: getEnv("APP_NAME", "property-site-service"),
	}

	cfg.Rest.Port = getEnv("PORT", "8080")
	cfg.Rest.AllowedOrigins = splitAndTrim(getEnv("ALLOWED_ORIGINS", "*"))

	cfg.Content.Dir = getEnv("CONTENT_DIR", "")
	cfg.Content.BaseURL = getEnv("CONTENT_BASE_URL", "")
	if cfg.Content.Dir == "" && cfg.Content.BaseURL == "" {
		return nil, fmt.Errorf("either CONTENT_DIR or CONTENT_BASE_URL is required")
	}

	cfg.OAuth.GitHubClientID = getEnv("GITHUB_CLIENT_ID", "")
	cfg.OAuth.GitHubClientSecret = getEnv("GITHUB_CLIENT_SECRET", "")
	cfg.OAuth.RedirectBaseURL = getEnv("OAUTH_REDIRECT_BASE_URL", "")

	cfg.Form.EndpointURL = getEnv("FORM_ENDPOINT_URL", "")
	cfg.Form.AccessKey = getEnv("FORM_ACCESS_KEY", "")

	cfg.StdoutLogger.Level = getEnv("STDOUT_LOG_LEVEL", "debug")

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnv("FLUENTBIT_LOG_LEVEL", "info")
	}

	return cfg, nil
}

// getEnv - вспомогательная функция для чтения переменных окружения с значением по умолчанию.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
