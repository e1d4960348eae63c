package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"paypal_connector/internal/adapter/http/dto/request"
	"paypal_connector/internal/adapter/http/dto/response"
	"paypal_connector/internal/domain/entities"
	"paypal_connector/internal/infrastructure/httpsclient"
	"paypal_connector/internal/infrastructure/logging"
	"paypal_connector/internal/usecase"
	"paypal_connector/pkg"

	"github.com/gin-gonic/gin"
)

var log = logging.Subsystem("payment-handler")

// PaymentHandler handles HTTP requests for PayPal payments and their updates.

type PaymentHandler struct {
	usecase usecase.IPaymentUpdateUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUpdateUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment godoc
// @Summary      Create a PayPal payment
// @Description  Forwards the payment resource to PayPal and returns its answer verbatim.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment  body      object  true  "PayPal payment resource"
// @Success      201      {object}  object
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil || !json.Valid(raw) {
		log.Infof("[payment][handler] create invalid payload err=%v", err)
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	created, err := h.usecase.CreatePayment(c.Request.Context(), raw)
	if err != nil {
		log.Errorf("[payment][handler] create failed err=%v", err)
		writeError(c, mapPaymentError(err))
		return
	}
	log.Infof("[payment][handler] create success response_len=%d", len(created))
	c.Data(http.StatusCreated, gin.MIMEJSON, created)
}

// GetPayment godoc
// @Summary      Show a PayPal payment
// @Tags         payments
// @Produce      json
// @Param        payment_id  path      string  true  "PayPal payment id"
// @Success      200         {object}  object
// @Failure      404         {object}  pkg.HTTPError
// @Failure      502         {object}  pkg.HTTPError
// @Router       /payments/{payment_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	paymentID := c.Param("payment_id")
	log.Infof("[payment][handler] get start payment_id=%s", paymentID)

	payment, err := h.usecase.GetPayment(c.Request.Context(), paymentID)
	if err != nil {
		log.Errorf("[payment][handler] get failed payment_id=%s err=%v", paymentID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	c.Data(http.StatusOK, gin.MIMEJSON, payment)
}

// ExecutePayment godoc
// @Summary      Execute an approved PayPal payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment_id  path      string                          true  "PayPal payment id"
// @Param        request     body      request.ExecutePaymentRequest  true  "Payer approval"
// @Success      200         {object}  object
// @Failure      400         {object}  pkg.HTTPError
// @Failure      502         {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/execute [post]
func (h *PaymentHandler) ExecutePayment(c *gin.Context) {
	paymentID := c.Param("payment_id")
	var req request.ExecutePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Infof("[payment][handler] execute invalid payload payment_id=%s err=%v", paymentID, err)
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	executed, err := h.usecase.ExecutePayment(c.Request.Context(), paymentID, req.PayerID)
	if err != nil {
		log.Errorf("[payment][handler] execute failed payment_id=%s err=%v", paymentID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	log.Infof("[payment][handler] execute success payment_id=%s", paymentID)
	c.Data(http.StatusOK, gin.MIMEJSON, executed)
}

// UpdatePayment godoc
// @Summary      Patch a PayPal payment
// @Description  Sends the JSON patch array as is and records the outcome.
// @Tags         payment-updates
// @Accept       json
// @Produce      json
// @Param        payment_id  path      string  true  "PayPal payment id"
// @Param        operations  body      array   true  "Patch operations"
// @Success      200         {object}  response.PaymentUpdateResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      502         {object}  pkg.HTTPError
// @Router       /payments/{payment_id} [patch]
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	paymentID := c.Param("payment_id")
	raw, err := c.GetRawData()
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}
	ops, err := entities.ParsePatchRequest(raw)
	if err != nil {
		log.Infof("[payment][handler] update invalid patch payment_id=%s err=%v", paymentID, err)
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	h.respondUpdate(c, paymentID, func() (entities.PaymentUpdate, error) {
		return h.usecase.UpdatePayment(c.Request.Context(), paymentID, ops)
	})
}

// UpdatePayerInfo godoc
// @Summary      Replace the payer info of a PayPal payment
// @Tags         payment-updates
// @Accept       json
// @Produce      json
// @Param        payment_id  path      string                     true  "PayPal payment id"
// @Param        payer       body      request.PayerInfoRequest  true  "Payer info"
// @Success      200         {object}  response.PaymentUpdateResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      502         {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/payer [patch]
func (h *PaymentHandler) UpdatePayerInfo(c *gin.Context) {
	paymentID := c.Param("payment_id")
	var req request.PayerInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsEmpty() {
		log.Infof("[payment][handler] payer invalid payload payment_id=%s err=%v", paymentID, err)
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	h.respondUpdate(c, paymentID, func() (entities.PaymentUpdate, error) {
		return h.usecase.UpdatePayerInfo(c.Request.Context(), paymentID, req.ToEntity())
	})
}

// UpdateShippingAddress godoc
// @Summary      Replace the shipping address of a PayPal payment
// @Tags         payment-updates
// @Accept       json
// @Produce      json
// @Param        payment_id  path      string                           true  "PayPal payment id"
// @Param        address     body      request.ShippingAddressRequest  true  "Shipping address"
// @Success      200         {object}  response.PaymentUpdateResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      502         {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/shipping-address [patch]
func (h *PaymentHandler) UpdateShippingAddress(c *gin.Context) {
	paymentID := c.Param("payment_id")
	var req request.ShippingAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Infof("[payment][handler] shipping-address invalid payload payment_id=%s err=%v", paymentID, err)
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	h.respondUpdate(c, paymentID, func() (entities.PaymentUpdate, error) {
		return h.usecase.UpdateShippingAddress(c.Request.Context(), paymentID, req.ToEntity())
	})
}

// UpdateAmount godoc
// @Summary      Replace the transaction amount of a PayPal payment
// @Tags         payment-updates
// @Accept       json
// @Produce      json
// @Param        payment_id  path      string                  true  "PayPal payment id"
// @Param        amount      body      request.AmountRequest  true  "Amount"
// @Success      200         {object}  response.PaymentUpdateResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      502         {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/amount [patch]
func (h *PaymentHandler) UpdateAmount(c *gin.Context) {
	paymentID := c.Param("payment_id")
	var req request.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Infof("[payment][handler] amount invalid payload payment_id=%s err=%v", paymentID, err)
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	h.respondUpdate(c, paymentID, func() (entities.PaymentUpdate, error) {
		return h.usecase.UpdateAmount(c.Request.Context(), paymentID, req.ToEntity())
	})
}

// ListUpdates godoc
// @Summary      List the recorded updates of a PayPal payment
// @Tags         payment-updates
// @Produce      json
// @Param        payment_id  path      string  true  "PayPal payment id"
// @Success      200         {array}   response.PaymentUpdateResponse
// @Failure      400         {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/updates [get]
func (h *PaymentHandler) ListUpdates(c *gin.Context) {
	paymentID := c.Param("payment_id")
	updates, err := h.usecase.ListUpdates(c.Request.Context(), paymentID)
	if err != nil {
		log.Errorf("[payment][handler] list-updates failed payment_id=%s err=%v", paymentID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentUpdates(updates))
}

func (h *PaymentHandler) respondUpdate(c *gin.Context, paymentID string, update func() (entities.PaymentUpdate, error)) {
	log.Infof("[payment][handler] update start payment_id=%s route=%s", paymentID, c.FullPath())
	updated, err := update()
	if err != nil {
		log.Errorf("[payment][handler] update failed payment_id=%s err=%v", paymentID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	log.Infof("[payment][handler] update success payment_id=%s update_id=%s status=%s", paymentID, updated.ID, updated.Status)
	c.JSON(http.StatusOK, response.FromPaymentUpdate(updated))
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidPayerID),
		errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrInvalidPatchRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		appErr := pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_BAD_REQUEST", "Payment provider rejected the request data", http.StatusBadRequest).
			WithDetail("provider_status_code", httpsclient.StatusCode(err))
		if body := providerBody(err); body != nil {
			appErr.WithDetail("provider_response", body)
		}
		return appErr
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_ERROR", "Payment provider rejected the request", http.StatusBadGateway).
			WithDetail("provider_status_code", httpsclient.StatusCode(err))
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayInterrupted):
		return pkg.NewDomainError("PAYMENT_PROVIDER_INTERRUPTED", "Payment provider call interrupted", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// providerBody returns the provider rejection body as JSON when it is JSON.
func providerBody(err error) any {
	var te *httpsclient.TransportError
	if !errors.As(err, &te) || strings.TrimSpace(te.Body) == "" {
		return nil
	}
	if json.Valid([]byte(te.Body)) {
		return json.RawMessage(te.Body)
	}
	return te.Body
}
