package interfaces

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mock_interfaces

import (
	"context"
	"encoding/json"

	"paypal_connector/internal/domain/entities"
)

// IPaymentGateway abstracts the remote payment provider (PayPal REST v1).
//
// Every method performs one authenticated HTTPS exchange and returns the
// provider body verbatim. Provider rejections come back as
// *httpsclient.TransportError so callers can inspect the status code.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	GetPayment(ctx context.Context, paymentID string) (json.RawMessage, error)
	UpdatePayment(ctx context.Context, paymentID string, ops entities.PatchRequest) (json.RawMessage, error)
	ExecutePayment(ctx context.Context, paymentID, payerID string) (json.RawMessage, error)
}
