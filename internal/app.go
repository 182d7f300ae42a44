package internal

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"

	logger_adapter "github.com/abin-codes/orukachavadakaran-realestate/internal/adapters/logger"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/adapters/contentsource"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/adapters/formbackend"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/adapters/githuboauth"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/adapters/rest"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/configs"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/usecase"
	"github.com/abin-codes/orukachavadakaran-realestate/pkg/fluentlogger"
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	// Создаем наш композитный логгер
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. СОЗДАЕМ БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. ИНИЦИАЛИЗАЦИЯ ИСХОДЯЩИХ АДАПТЕРОВ ---
	// Локальная директория контента имеет приоритет: так сервис работает
	// рядом с чекаутом репозитория без сетевых запросов.
	var source port.ContentSourcePort
	if appConfig.Content.Dir != "" {
		fileSource, err := contentsource.NewFileSource(appConfig.Content.Dir)
		if err != nil {
			appLogger.Error("Failed to create file content source", err, nil)
			return nil, fmt.Errorf("failed to create file content source: %w", err)
		}
		source = fileSource
		appLogger.Info("Content source initialized", port.Fields{"mode": "file", "root": appConfig.Content.Dir})
	} else {
		httpSource, err := contentsource.NewHTTPSource(appConfig.Content.BaseURL)
		if err != nil {
			appLogger.Error("Failed to create http content source", err, nil)
			return nil, fmt.Errorf("failed to create http content source: %w", err)
		}
		source = httpSource
		appLogger.Info("Content source initialized", port.Fields{"mode": "http", "base_url": appConfig.Content.BaseURL})
	}

	oauthClient, err := githuboauth.NewClient(githuboauth.Config{
		ClientID:     appConfig.OAuth.GitHubClientID,
		ClientSecret: appConfig.OAuth.GitHubClientSecret,
	})
	if err != nil {
		appLogger.Error("Failed to create github oauth client", err, nil)
		return nil, fmt.Errorf("failed to create github oauth client: %w", err)
	}

	formClient, err := formbackend.NewClient(appConfig.Form.EndpointURL, appConfig.Form.AccessKey)
	if err != nil {
		appLogger.Error("Failed to create form backend client", err, nil)
		return nil, fmt.Errorf("failed to create form backend client: %w", err)
	}

	appLogger.Info("All outgoing adapters initialized.", nil)

	// --- 4. ИНИЦИАЛИЗАЦИЯ USE CASES (ядра бизнес-логики) ---
	catalogLoader := usecase.NewCatalogLoader(source)

	browsePropertiesUseCase := usecase.NewBrowsePropertiesUseCase(catalogLoader)
	suggestPropertiesUseCase := usecase.NewSuggestPropertiesUseCase(catalogLoader)
	getPropertyDetailsUseCase := usecase.NewGetPropertyDetailsUseCase(source)

	getBlogFeedUseCase := usecase.NewGetBlogFeedUseCase(source)
	getBlogArticleUseCase := usecase.NewGetBlogArticleUseCase(source)

	getPageContentUseCase := usecase.NewGetPageContentUseCase(source)

	exchangeTokenUseCase := usecase.NewExchangeTokenUseCase(oauthClient)
	submitEnquiryUseCase := usecase.NewSubmitEnquiryUseCase(formClient)

	appLogger.Info("All use cases initialized.", nil)

	// --- 5. REST API Server ---
	catalogHandlers := rest.NewCatalogHandler(browsePropertiesUseCase, suggestPropertiesUseCase, getPropertyDetailsUseCase)
	blogHandlers := rest.NewBlogHandler(getBlogFeedUseCase, getBlogArticleUseCase)
	pageHandlers := rest.NewPageContentHandler(getPageContentUseCase)
	enquiryHandlers := rest.NewEnquiryHandler(submitEnquiryUseCase)

	redirectURI := strings.TrimSuffix(appConfig.OAuth.RedirectBaseURL, "/") + "/auth/callback"
	authHandlers := rest.NewAuthHandler(exchangeTokenUseCase, redirectURI)

	apiServer := rest.NewServer(appConfig.Rest.Port, appConfig.Rest.AllowedOrigins,
		catalogHandlers, blogHandlers, pageHandlers, enquiryHandlers, authHandlers, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:       appConfig,
		apiServer:    apiServer,
		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := a.apiServer.Stop(shutdownCtx); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.Port})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	}

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
