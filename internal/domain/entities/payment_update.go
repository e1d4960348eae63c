package entities

import (
	"encoding/json"
	"time"
)

// PaymentUpdateStatus is the outcome of a PATCH sent to the payment provider.
type PaymentUpdateStatus string

const (
	PaymentUpdateStatusApplied  PaymentUpdateStatus = "applied"
	PaymentUpdateStatusRejected PaymentUpdateStatus = "rejected"
)

// PaymentUpdate is the audit record of one patch request sent for a payment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_id-index): payment_id
//
// Operations keeps the exact JSON array that was sent and ProviderResponse the
// body the provider answered with (success body or rejection body).
// ProviderStatusCode is only set on rejected records.
type PaymentUpdate struct {
	ID                 string              `json:"id"`
	PaymentID          string              `json:"payment_id"`
	Date               time.Time           `json:"date"`
	Status             PaymentUpdateStatus `json:"status"`
	ProviderStatusCode int                 `json:"provider_status_code,omitempty"`

	Operations       json.RawMessage `json:"operations"`
	ProviderResponse json.RawMessage `json:"provider_response,omitempty"`
}
