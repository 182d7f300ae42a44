package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondDomainError маппит категорию ошибки в HTTP-статус.
func respondDomainError(w http.ResponseWriter, logger port.LoggerPort, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, message)
	case errors.Is(err, domain.ErrValidation):
		WriteJSONError(w, http.StatusBadRequest, message)
	case errors.Is(err, domain.ErrNetwork), errors.Is(err, domain.ErrParse):
		WriteJSONError(w, http.StatusBadGateway, message)
	default:
		WriteJSONError(w, http.StatusInternalServerError, message)
	}
	logger.Error("Request failed", err, nil)
}
