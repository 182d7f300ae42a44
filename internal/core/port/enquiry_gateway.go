package port

import (
	"context"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
)

// EnquiryGatewayPort - внешний форм-бэкенд, принимающий обращения
// контактной формы.
type EnquiryGatewayPort interface {
	Submit(ctx context.Context, enquiry domain.Enquiry) error
}
