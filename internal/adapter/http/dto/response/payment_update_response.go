package response

import (
	"encoding/json"
	"time"

	"paypal_connector/internal/domain/entities"
)

type PaymentUpdateResponse struct {
	ID                 string          `json:"id"`
	PaymentID          string          `json:"payment_id"`
	Date               time.Time       `json:"date"`
	Status             string          `json:"status"`
	ProviderStatusCode int             `json:"provider_status_code,omitempty"`
	Operations         json.RawMessage `json:"operations" swaggertype:"array,object"`
	ProviderResponse   json.RawMessage `json:"provider_response,omitempty" swaggertype:"object"`
}

func FromPaymentUpdate(u entities.PaymentUpdate) PaymentUpdateResponse {
	return PaymentUpdateResponse{
		ID:                 u.ID,
		PaymentID:          u.PaymentID,
		Date:               u.Date,
		Status:             string(u.Status),
		ProviderStatusCode: u.ProviderStatusCode,
		Operations:         u.Operations,
		ProviderResponse:   u.ProviderResponse,
	}
}

func FromPaymentUpdates(updates []entities.PaymentUpdate) []PaymentUpdateResponse {
	out := make([]PaymentUpdateResponse, 0, len(updates))
	for _, u := range updates {
		out = append(out, FromPaymentUpdate(u))
	}
	return out
}
