package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"paypal_connector/internal/adapter/http/handlers/mocks"
	"paypal_connector/internal/domain/entities"
	"paypal_connector/internal/infrastructure/httpsclient"
	"paypal_connector/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payments", h.CreatePayment)
	r.GET("/v1/payments/:payment_id", h.GetPayment)
	r.POST("/v1/payments/:payment_id/execute", h.ExecutePayment)
	r.PATCH("/v1/payments/:payment_id", h.UpdatePayment)
	r.PATCH("/v1/payments/:payment_id/payer", h.UpdatePayerInfo)
	r.PATCH("/v1/payments/:payment_id/shipping-address", h.UpdateShippingAddress)
	r.PATCH("/v1/payments/:payment_id/amount", h.UpdateAmount)
	r.GET("/v1/payments/:payment_id/updates", h.ListUpdates)
	return r
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUpdateUseCase(ctrl)

		w := serve(newRouter(NewPaymentHandler(uc)), http.MethodPost, "/v1/payments", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns provider body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUpdateUseCase(ctrl)

		uc.EXPECT().CreatePayment(gomock.Any(), json.RawMessage(`{"intent":"sale"}`)).Return(json.RawMessage(`{"id":"PAY-1","state":"created"}`), nil)

		w := serve(newRouter(NewPaymentHandler(uc)), http.MethodPost, "/v1/payments", `{"intent":"sale"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if w.Body.String() != `{"id":"PAY-1","state":"created"}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUpdateUseCase(ctrl)

	notFound := wrapGatewayError(usecase.ErrPaymentNotFound, &httpsclient.TransportError{StatusCode: http.StatusNotFound})
	uc.EXPECT().GetPayment(gomock.Any(), "PAY-404").Return(nil, notFound)
	uc.EXPECT().GetPayment(gomock.Any(), "PAY-1").Return(json.RawMessage(`{"id":"PAY-1"}`), nil)

	r := newRouter(NewPaymentHandler(uc))
	if w := serve(r, http.MethodGet, "/v1/payments/PAY-404", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	w := serve(r, http.MethodGet, "/v1/payments/PAY-1", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"id":"PAY-1"}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestPaymentHandler_ExecutePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing payer id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUpdateUseCase(ctrl)

		w := serve(newRouter(NewPaymentHandler(uc)), http.MethodPost, "/v1/payments/PAY-1/execute", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUpdateUseCase(ctrl)

		uc.EXPECT().ExecutePayment(gomock.Any(), "PAY-1", "PAYER-1").Return(json.RawMessage(`{"id":"PAY-1","state":"approved"}`), nil)

		w := serve(newRouter(NewPaymentHandler(uc)), http.MethodPost, "/v1/payments/PAY-1/execute", `{"payer_id":"PAYER-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_UpdatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid patch body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUpdateUseCase(ctrl)
		r := newRouter(NewPaymentHandler(uc))

		for _, body := range []string{`{`, `[]`, `[{"op":"remove","path":"/a","value":[1]}]`, `[{"op":"replace","path":"/a","value":[]}]`} {
			if w := serve(r, http.MethodPatch, "/v1/payments/PAY-1", body); w.Code != http.StatusBadRequest {
				t.Fatalf("body %s: expected 400, got %d", body, w.Code)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUpdateUseCase(ctrl)

		body := `[{"op":"REPLACE","path":"/transactions/0/amount","value":[{"currency":"USD","total":"10.00"}]}]`
		now := time.Now().UTC()
		uc.EXPECT().UpdatePayment(gomock.Any(), "PAY-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, ops entities.PatchRequest) (entities.PaymentUpdate, error) {
			if len(ops) != 1 || ops[0].Op() != entities.OperationReplace || ops[0].Path() != "/transactions/0/amount" {
				t.Fatalf("unexpected ops: %+v", ops)
			}
			return entities.PaymentUpdate{ID: "u-1", PaymentID: "PAY-1", Date: now, Status: entities.PaymentUpdateStatusApplied, Operations: json.RawMessage(`[]`)}, nil
		})

		w := serve(newRouter(NewPaymentHandler(uc)), http.MethodPatch, "/v1/payments/PAY-1", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if got["id"] != "u-1" || got["status"] != "applied" {
			t.Fatalf("unexpected body: %v", got)
		}
	})

	t.Run("provider rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUpdateUseCase(ctrl)

		rejected := wrapGatewayError(usecase.ErrPaymentGatewayBadRequest, &httpsclient.TransportError{StatusCode: http.StatusBadRequest, Body: `{"name":"VALIDATION_ERROR"}`})
		uc.EXPECT().UpdatePayment(gomock.Any(), "PAY-1", gomock.Any()).Return(entities.PaymentUpdate{}, rejected)

		w := serve(newRouter(NewPaymentHandler(uc)), http.MethodPatch, "/v1/payments/PAY-1", `[{"op":"add","path":"/a","value":[1]}]`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"provider_response":{"name":"VALIDATION_ERROR"}`) {
			t.Fatalf("expected provider response in body, got %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_UpdatePayerInfo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty payer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUpdateUseCase(ctrl)

		w := serve(newRouter(NewPaymentHandler(uc)), http.MethodPatch, "/v1/payments/PAY-1/payer", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("long email is cut not rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUpdateUseCase(ctrl)

		email := strings.Repeat("x", 200) + "@example.com"
		uc.EXPECT().UpdatePayerInfo(gomock.Any(), "PAY-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, p entities.PayerInfo) (entities.PaymentUpdate, error) {
			if len(p.Email()) != entities.MaxEmailLength {
				t.Fatalf("expected email of %d chars, got %d", entities.MaxEmailLength, len(p.Email()))
			}
			return entities.PaymentUpdate{ID: "u-1", Status: entities.PaymentUpdateStatusApplied}, nil
		})

		w := serve(newRouter(NewPaymentHandler(uc)), http.MethodPatch, "/v1/payments/PAY-1/payer", `{"email":"`+email+`"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_UpdateShippingAddressAndAmount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUpdateUseCase(ctrl)
	r := newRouter(NewPaymentHandler(uc))

	if w := serve(r, http.MethodPatch, "/v1/payments/PAY-1/shipping-address", `{"line1":"1 Main St"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if w := serve(r, http.MethodPatch, "/v1/payments/PAY-1/amount", `{"currency":"USD","total":"ten"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().UpdateShippingAddress(gomock.Any(), "PAY-1", entities.ShippingAddress{Line1: "1 Main St", City: "San Jose", CountryCode: "US"}).
		Return(entities.PaymentUpdate{ID: "u-1"}, nil)
	if w := serve(r, http.MethodPatch, "/v1/payments/PAY-1/shipping-address", `{"line1":"1 Main St","city":"San Jose","country_code":"us"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().UpdateAmount(gomock.Any(), "PAY-1", entities.Amount{Currency: "USD", Total: "30.11"}).
		Return(entities.PaymentUpdate{ID: "u-2"}, nil)
	if w := serve(r, http.MethodPatch, "/v1/payments/PAY-1/amount", `{"currency":"usd","total":"30.11"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPaymentHandler_ListUpdates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUpdateUseCase(ctrl)

	uc.EXPECT().ListUpdates(gomock.Any(), "PAY-1").Return([]entities.PaymentUpdate{{ID: "u-1"}, {ID: "u-2"}}, nil)

	w := serve(newRouter(NewPaymentHandler(uc)), http.MethodGet, "/v1/payments/PAY-1/updates", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || len(got) != 2 {
		t.Fatalf("unexpected body %s err=%v", w.Body.String(), err)
	}
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPaymentID, http.StatusBadRequest},
		{usecase.ErrInvalidPayerID, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentPayload, http.StatusBadRequest},
		{usecase.ErrInvalidPatchRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrPaymentNotFound, http.StatusNotFound},
		{usecase.ErrPaymentGatewayRejected, http.StatusBadGateway},
		{usecase.ErrPaymentGatewayUnavailable, http.StatusServiceUnavailable},
		{usecase.ErrPaymentGatewayInterrupted, http.StatusServiceUnavailable},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}

	rejected := mapPaymentError(wrapGatewayError(usecase.ErrPaymentGatewayRejected, &httpsclient.TransportError{StatusCode: http.StatusInternalServerError}))
	if rejected.ToHTTPError().Details["provider_status_code"] != http.StatusInternalServerError {
		t.Fatalf("expected provider status code in details, got %+v", rejected.ToHTTPError().Details)
	}
}

func wrapGatewayError(sentinel error, cause error) error {
	return errors.Join(sentinel, cause)
}
