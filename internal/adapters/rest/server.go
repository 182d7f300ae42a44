package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	core_port "github.com/abin-codes/orukachavadakaran-realestate/internal/core/port"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	allowedOrigins []string,
	catalogHandlers *CatalogHandler,
	blogHandlers *BlogHandler,
	pageHandlers *PageContentHandler,
	enquiryHandlers *EnquiryHandler,
	authHandlers *AuthHandler,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Trace-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/properties", catalogHandlers.BrowseProperties)
		r.Get("/properties/suggest", catalogHandlers.SuggestProperties)
		r.Get("/properties/{propertyID}", catalogHandlers.GetPropertyDetails)

		r.Get("/blogs", blogHandlers.GetBlogFeed)
		r.Get("/blogs/{blogID}", blogHandlers.GetBlogArticle)

		r.Get("/pages/{pageName}", pageHandlers.GetPageContent)

		r.Post("/enquiries", enquiryHandlers.SubmitEnquiry)
	})

	// OAuth-коллбэк живет вне /api/v1: его адрес зашит в настройки
	// CMS-редактора и GitHub-приложения.
	r.Get("/auth/callback", authHandlers.Callback)

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

// Handler возвращает корневой роутер сервера.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
