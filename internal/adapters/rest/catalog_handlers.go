package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/contextkeys"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port/usecases_port"
)

type CatalogHandler struct {
	browseUC  usecases_port.BrowsePropertiesUseCase
	suggestUC usecases_port.SuggestPropertiesUseCase
	detailsUC usecases_port.GetPropertyDetailsUseCase
}

func NewCatalogHandler(browseUC usecases_port.BrowsePropertiesUseCase,
	suggestUC usecases_port.SuggestPropertiesUseCase,
	detailsUC usecases_port.GetPropertyDetailsUseCase) *CatalogHandler {
	return &CatalogHandler{
		browseUC:  browseUC,
		suggestUC: suggestUC,
		detailsUC: detailsUC,
	}
}

// BrowseProperties обрабатывает GET /api/v1/properties
func (h *CatalogHandler) BrowseProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	query := r.URL.Query()
	category := query.Get("category")
	sortKey := query.Get("sort")

	handlerLogger := logger.WithFields(port.Fields{
		"handler":  "BrowseProperties",
		"category": category,
		"sort":     sortKey,
	})
	handlerLogger.Debug("Processing request to browse properties", nil)

	page, err := h.browseUC.Execute(r.Context(), category, sortKey)
	if err != nil {
		respondDomainError(w, handlerLogger, err, "Failed to load properties")
		return
	}

	response := CatalogResponse{
		Count:    page.Count,
		Category: page.Category,
		Sort:     page.Sort,
		Data:     make([]CardResponse, len(page.Cards)),
	}
	for i, card := range page.Cards {
		response.Data[i] = CardResponse{
			ID:               card.ID,
			Badge:            card.Badge,
			CategorySlug:     card.CategorySlug,
			Location:         card.Location,
			Title:            card.Title,
			ShortDescription: card.ShortDescription,
			PriceDisplay:     card.PriceDisplay,
			Image:            card.Image,
			DetailTarget:     card.DetailTarget,
		}
	}

	handlerLogger.Info("Successfully browsed properties", port.Fields{
		"total_visible": page.Count,
	})

	RespondWithJSON(w, http.StatusOK, response)
}

// SuggestProperties обрабатывает GET /api/v1/properties/suggest
func (h *CatalogHandler) SuggestProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	searchTerm := r.URL.Query().Get("q")

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "SuggestProperties",
	})
	handlerLogger.Debug("Processing request for search suggestions", nil)

	result, err := h.suggestUC.Execute(r.Context(), searchTerm)
	if err != nil {
		respondDomainError(w, handlerLogger, err, "Failed to search properties")
		return
	}

	response := SuggestResponse{
		NoResults: result.NoResults,
		Data:      make([]SuggestionResponse, len(result.Suggestions)),
	}
	for i, s := range result.Suggestions {
		response.Data[i] = SuggestionResponse{
			ID:       s.ID,
			Title:    s.Title,
			Location: s.Location,
		}
	}

	handlerLogger.Info("Successfully built suggestions", port.Fields{
		"suggestions": len(response.Data),
		"no_results":  response.NoResults,
	})

	RespondWithJSON(w, http.StatusOK, response)
}

// GetPropertyDetails обрабатывает GET /api/v1/properties/{propertyID}
func (h *CatalogHandler) GetPropertyDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	propertyID := chi.URLParam(r, "propertyID")
	if propertyID == "" {
		logger.Warn("Property ID is missing", nil)
		WriteJSONError(w, http.StatusBadRequest, "Property ID is required")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":     "GetPropertyDetails",
		"property_id": propertyID,
	})
	handlerLogger.Debug("Processing request for property details", nil)

	view, err := h.detailsUC.Execute(r.Context(), propertyID)
	if err != nil {
		// Неизвестный объект - 404 с целью возврата на список,
		// как alert+redirect на исходной странице.
		if errors.Is(err, domain.ErrNotFound) {
			handlerLogger.Warn("Property not found", nil)
			RespondWithJSON(w, http.StatusNotFound, NotFoundRedirectResponse{
				Error:    "Property Not Found",
				Redirect: "property.html",
			})
			return
		}
		respondDomainError(w, handlerLogger, err, "Error loading property details")
		return
	}

	specs := make([]SpecItemResponse, len(view.Specifications))
	for i, spec := range view.Specifications {
		specs[i] = SpecItemResponse{Label: spec.Label, Value: spec.Value}
	}

	response := DetailResponse{
		ID:              view.ID,
		Name:            view.Name,
		LocationFull:    view.LocationFull,
		PriceDisplay:    view.PriceDisplay,
		Status:          view.Status,
		StatusLabel:     view.StatusLabel,
		LongDescription: view.LongDescription,
		Specifications:  specs,
		Amenities:       view.Amenities,
		NearbyLandmarks: view.NearbyLandmarks,
		OtherFeatures:   view.OtherFeatures,
		Images:          view.Images,
	}

	handlerLogger.Info("Successfully loaded property details", nil)
	RespondWithJSON(w, http.StatusOK, response)
}
