package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"paypal_connector/internal/domain/entities"
	"paypal_connector/internal/infrastructure/httpsclient"
	"paypal_connector/internal/infrastructure/logging"
	"paypal_connector/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentID           = errors.New("invalid payment_id")
	ErrInvalidPayerID             = errors.New("invalid payer_id")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrInvalidPatchRequest        = errors.New("invalid patch request")
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayRejected     = errors.New("payment gateway rejected the request")
	ErrPaymentGatewayUnavailable  = errors.New("payment gateway unavailable")
	ErrPaymentGatewayInterrupted  = errors.New("payment gateway call interrupted")
)

// Paths of the payment fragments that can be patched.
const (
	PathPayerInfo       = "/payer/payer_info"
	PathShippingAddress = "/transactions/0/item_list/shipping_address"
	PathAmount          = "/transactions/0/amount"
)

var log = logging.Subsystem("payment-usecase")

// IPaymentUpdateUseCase covers the payment calls of the PayPal connector.
//
// Every update is sent as one PATCH with a JSON array of operations and is
// recorded as a PaymentUpdate, whether the provider applied it or rejected it.
type IPaymentUpdateUseCase interface {
	CreatePayment(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	GetPayment(ctx context.Context, paymentID string) (json.RawMessage, error)
	ExecutePayment(ctx context.Context, paymentID, payerID string) (json.RawMessage, error)
	UpdatePayment(ctx context.Context, paymentID string, ops entities.PatchRequest) (entities.PaymentUpdate, error)
	UpdatePayerInfo(ctx context.Context, paymentID string, payer entities.PayerInfo) (entities.PaymentUpdate, error)
	UpdateShippingAddress(ctx context.Context, paymentID string, addr entities.ShippingAddress) (entities.PaymentUpdate, error)
	UpdateAmount(ctx context.Context, paymentID string, amount entities.Amount) (entities.PaymentUpdate, error)
	ListUpdates(ctx context.Context, paymentID string) ([]entities.PaymentUpdate, error)
}

type PaymentUpdateUseCase struct {
	repo    interfaces.IPaymentUpdateRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUpdateUseCase = (*PaymentUpdateUseCase)(nil)

func NewPaymentUpdateUseCase(repo interfaces.IPaymentUpdateRepository, gateway interfaces.IPaymentGateway) *PaymentUpdateUseCase {
	return &PaymentUpdateUseCase{repo: repo, gateway: gateway}
}

func (u *PaymentUpdateUseCase) CreatePayment(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	log.Infof("[payment][usecase] create start payload_len=%d", len(payload))
	if len(payload) == 0 || !json.Valid(payload) {
		log.Infof("[payment][usecase] invalid payload (empty or not-json)")
		return nil, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return nil, errors.New("payment gateway not configured")
	}

	resp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Errorf("[payment][usecase] create failed err=%v", err)
		return nil, mapGatewayError(err)
	}
	log.Infof("[payment][usecase] create success response_len=%d", len(resp))
	return resp, nil
}

func (u *PaymentUpdateUseCase) GetPayment(ctx context.Context, paymentID string) (json.RawMessage, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, ErrInvalidPaymentID
	}
	if u.gateway == nil {
		return nil, errors.New("payment gateway not configured")
	}

	resp, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		log.Errorf("[payment][usecase] get failed payment_id=%s err=%v", paymentID, err)
		return nil, mapGatewayError(err)
	}
	return resp, nil
}

func (u *PaymentUpdateUseCase) ExecutePayment(ctx context.Context, paymentID, payerID string) (json.RawMessage, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, ErrInvalidPaymentID
	}
	payerID = strings.TrimSpace(payerID)
	if payerID == "" {
		return nil, ErrInvalidPayerID
	}
	if u.gateway == nil {
		return nil, errors.New("payment gateway not configured")
	}

	log.Infof("[payment][usecase] execute start payment_id=%s", paymentID)
	resp, err := u.gateway.ExecutePayment(ctx, paymentID, payerID)
	if err != nil {
		log.Errorf("[payment][usecase] execute failed payment_id=%s err=%v", paymentID, err)
		return nil, mapGatewayError(err)
	}
	log.Infof("[payment][usecase] execute success payment_id=%s", paymentID)
	return resp, nil
}

func (u *PaymentUpdateUseCase) UpdatePayment(ctx context.Context, paymentID string, ops entities.PatchRequest) (entities.PaymentUpdate, error) {
	log.Infof("[payment][usecase] update start raw_payment_id=%q operations=%d", paymentID, len(ops))
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		log.Infof("[payment][usecase] invalid payment_id (empty)")
		return entities.PaymentUpdate{}, ErrInvalidPaymentID
	}
	body, err := ops.Body()
	if err != nil {
		log.Infof("[payment][usecase] invalid patch request payment_id=%s err=%v", paymentID, err)
		return entities.PaymentUpdate{}, fmt.Errorf("%w: %w", ErrInvalidPatchRequest, err)
	}
	if u.gateway == nil {
		log.Errorf("[payment][usecase] gateway not configured payment_id=%s", paymentID)
		return entities.PaymentUpdate{}, errors.New("payment gateway not configured")
	}
	if u.repo == nil {
		log.Errorf("[payment][usecase] payment update repository not configured payment_id=%s", paymentID)
		return entities.PaymentUpdate{}, errors.New("payment update repository not configured")
	}

	record := entities.PaymentUpdate{
		ID:         uuid.NewString(),
		PaymentID:  paymentID,
		Date:       time.Now().UTC(),
		Operations: body,
	}

	log.Infof("[payment][usecase] calling payment gateway payment_id=%s", paymentID)
	resp, err := u.gateway.UpdatePayment(ctx, paymentID, ops)
	if err != nil {
		log.Errorf("[payment][usecase] payment gateway failed payment_id=%s err=%v", paymentID, err)
		var te *httpsclient.TransportError
		if errors.As(err, &te) {
			record.Status = entities.PaymentUpdateStatusRejected
			record.ProviderStatusCode = te.StatusCode
			record.ProviderResponse = asJSON(te.Body)
			if _, rErr := u.repo.Create(ctx, record); rErr != nil {
				log.Errorf("[payment][usecase] payment update repository create failed payment_id=%s update_id=%s err=%v", paymentID, record.ID, rErr)
			}
		}
		return entities.PaymentUpdate{}, mapGatewayError(err)
	}

	record.Status = entities.PaymentUpdateStatusApplied
	record.ProviderResponse = asJSON(string(resp))

	created, err := u.repo.Create(ctx, record)
	if err != nil {
		log.Errorf("[payment][usecase] payment update repository create failed payment_id=%s update_id=%s err=%v", paymentID, record.ID, err)
		return entities.PaymentUpdate{}, err
	}
	log.Infof("[payment][usecase] update success payment_id=%s update_id=%s status=%s", paymentID, created.ID, created.Status)
	return created, nil
}

func (u *PaymentUpdateUseCase) UpdatePayerInfo(ctx context.Context, paymentID string, payer entities.PayerInfo) (entities.PaymentUpdate, error) {
	return u.replace(ctx, paymentID, PathPayerInfo, payer)
}

func (u *PaymentUpdateUseCase) UpdateShippingAddress(ctx context.Context, paymentID string, addr entities.ShippingAddress) (entities.PaymentUpdate, error) {
	return u.replace(ctx, paymentID, PathShippingAddress, addr)
}

func (u *PaymentUpdateUseCase) UpdateAmount(ctx context.Context, paymentID string, amount entities.Amount) (entities.PaymentUpdate, error) {
	return u.replace(ctx, paymentID, PathAmount, amount)
}

func (u *PaymentUpdateUseCase) replace(ctx context.Context, paymentID, path string, value entities.Updatable) (entities.PaymentUpdate, error) {
	op, err := entities.NewPatchOperation(entities.OperationReplace, path, value)
	if err != nil {
		return entities.PaymentUpdate{}, fmt.Errorf("%w: %w", ErrInvalidPatchRequest, err)
	}
	return u.UpdatePayment(ctx, paymentID, entities.PatchRequest{op})
}

func (u *PaymentUpdateUseCase) ListUpdates(ctx context.Context, paymentID string) ([]entities.PaymentUpdate, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, ErrInvalidPaymentID
	}
	if u.repo == nil {
		return nil, errors.New("payment update repository not configured")
	}
	return u.repo.ListByPaymentID(ctx, paymentID)
}

// mapGatewayError keeps the original error in the chain so callers can still
// reach the TransportError and its status code.
func mapGatewayError(err error) error {
	var te *httpsclient.TransportError
	switch {
	case errors.As(err, &te):
		switch te.StatusCode {
		case http.StatusBadRequest, http.StatusUnprocessableEntity:
			return fmt.Errorf("%w: %w", ErrPaymentGatewayBadRequest, err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %w", ErrPaymentGatewayUnauthorized, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", ErrPaymentNotFound, err)
		default:
			return fmt.Errorf("%w: %w", ErrPaymentGatewayRejected, err)
		}
	case errors.Is(err, httpsclient.ErrInterrupted):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayInterrupted, err)
	case errors.Is(err, httpsclient.ErrIO):
		return fmt.Errorf("%w: %w", ErrPaymentGatewayUnavailable, err)
	case errors.Is(err, entities.ErrInvalidPatchOperation), errors.Is(err, entities.ErrEmptyPatchRequest):
		return fmt.Errorf("%w: %w", ErrInvalidPatchRequest, err)
	default:
		return err
	}
}

func asJSON(s string) json.RawMessage {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if json.Valid([]byte(s)) {
		return json.RawMessage(s)
	}
	b, _ := json.Marshal(s)
	return b
}
