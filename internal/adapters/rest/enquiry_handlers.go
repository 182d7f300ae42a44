package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/contextkeys"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port/usecases_port"
)

var validate = validator.New()

type EnquiryHandler struct {
	submitUC usecases_port.SubmitEnquiryUseCase
}

func NewEnquiryHandler(submitUC usecases_port.SubmitEnquiryUseCase) *EnquiryHandler {
	return &EnquiryHandler{submitUC: submitUC}
}

// SubmitEnquiry обрабатывает POST /api/v1/enquiries
func (h *EnquiryHandler) SubmitEnquiry(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req EnquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		logger.Warn("Enquiry validation failed", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid enquiry: "+err.Error())
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "SubmitEnquiry",
	})
	handlerLogger.Debug("Processing enquiry submission", nil)

	enquiry := domain.Enquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.submitUC.Execute(r.Context(), enquiry); err != nil {
		respondDomainError(w, handlerLogger, err, "Failed to submit enquiry")
		return
	}

	handlerLogger.Info("Enquiry submitted successfully", nil)
	RespondWithJSON(w, http.StatusOK, map[string]string{
		"status": "sent",
	})
}
