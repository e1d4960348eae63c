package interfaces

//go:generate mockgen -source=payment_update_repository_interface.go -destination=mocks/payment_update_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"paypal_connector/internal/domain/entities"
)

// IPaymentUpdateRepository abstracts DynamoDB persistence for PaymentUpdate audit records.

type IPaymentUpdateRepository interface {
	Create(ctx context.Context, u entities.PaymentUpdate) (entities.PaymentUpdate, error)
	ListByPaymentID(ctx context.Context, paymentID string) ([]entities.PaymentUpdate, error)
}
