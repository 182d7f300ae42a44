package usecases_port

import (
	"context"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
)

type SubmitEnquiryUseCase interface {
	Execute(ctx context.Context, enquiry domain.Enquiry) error
}
