package rest

import (
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/contextkeys"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port/usecases_port"
)

// Имя страницы попадает в путь документа, поэтому ограничиваем алфавит.
var pageNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

type PageContentHandler struct {
	contentUC usecases_port.GetPageContentUseCase
}

func NewPageContentHandler(contentUC usecases_port.GetPageContentUseCase) *PageContentHandler {
	return &PageContentHandler{contentUC: contentUC}
}

// GetPageContent обрабатывает GET /api/v1/pages/{pageName}
func (h *PageContentHandler) GetPageContent(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	pageName := chi.URLParam(r, "pageName")
	if !pageNamePattern.MatchString(pageName) {
		logger.Warn("Invalid page name format", port.Fields{"page": pageName})
		WriteJSONError(w, http.StatusBadRequest, "Invalid page name")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "GetPageContent",
		"page":    pageName,
	})
	handlerLogger.Debug("Processing request for page content", nil)

	content, err := h.contentUC.Execute(r.Context(), pageName)
	if err != nil {
		respondDomainError(w, handlerLogger, err, "Failed to load page content")
		return
	}

	handlerLogger.Info("Successfully loaded page content", port.Fields{
		"total_keys": len(content),
	})

	// Плоский документ отдаем как есть: отсутствующие ключи
	// потребитель резолвит в пустую строку.
	RespondWithJSON(w, http.StatusOK, content)
}
