package usecase

import (
	"context"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/contextkeys"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/port"
)

// SubmitEnquiryUseCase пересылает обращение контактной формы
// во внешний форм-бэкенд.
type SubmitEnquiryUseCase struct {
	gateway port.EnquiryGatewayPort
}

func NewSubmitEnquiryUseCase(gateway port.EnquiryGatewayPort) *SubmitEnquiryUseCase {
	return &SubmitEnquiryUseCase{gateway: gateway}
}

func (uc *SubmitEnquiryUseCase) Execute(ctx context.Context, enquiry domain.Enquiry) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SubmitEnquiry",
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.gateway.Submit(ctx, enquiry); err != nil {
		ucLogger.Error("Form backend returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
