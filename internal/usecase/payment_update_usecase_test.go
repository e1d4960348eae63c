package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"paypal_connector/internal/domain/entities"
	"paypal_connector/internal/infrastructure/httpsclient"
	mock_interfaces "paypal_connector/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func replaceCountry(t *testing.T) entities.PatchRequest {
	t.Helper()
	payer := entities.PayerInfo{}
	payer.SetCountryCode("US")
	op, err := entities.NewPatchOperation(entities.OperationReplace, "/payer/payer_info", payer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return entities.PatchRequest{op}
}

func TestPaymentUpdateUseCase_UpdatePayment_Validations(t *testing.T) {
	t.Run("empty payment id", func(t *testing.T) {
		uc := NewPaymentUpdateUseCase(nil, nil)
		_, err := uc.UpdatePayment(context.Background(), " ", replaceCountry(t))
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("empty patch request", func(t *testing.T) {
		uc := NewPaymentUpdateUseCase(nil, nil)
		_, err := uc.UpdatePayment(context.Background(), "PAY-1", nil)
		if !errors.Is(err, ErrInvalidPatchRequest) || !errors.Is(err, entities.ErrEmptyPatchRequest) {
			t.Fatalf("expected ErrInvalidPatchRequest wrapping ErrEmptyPatchRequest, got %v", err)
		}
	})

	t.Run("zero value operation", func(t *testing.T) {
		uc := NewPaymentUpdateUseCase(nil, nil)
		_, err := uc.UpdatePayment(context.Background(), "PAY-1", entities.PatchRequest{{}})
		if !errors.Is(err, ErrInvalidPatchRequest) {
			t.Fatalf("expected ErrInvalidPatchRequest, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentUpdateRepository(ctrl)
		uc := NewPaymentUpdateUseCase(repo, nil)

		_, err := uc.UpdatePayment(context.Background(), "PAY-1", replaceCountry(t))
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("repository not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUpdateUseCase(nil, gateway)

		_, err := uc.UpdatePayment(context.Background(), "PAY-1", replaceCountry(t))
		if err == nil || err.Error() != "payment update repository not configured" {
			t.Fatalf("expected repository not configured error, got %v", err)
		}
	})
}

func TestPaymentUpdateUseCase_UpdatePayment_Applied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentUpdateRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPaymentUpdateUseCase(repo, gateway)

	ops := replaceCountry(t)
	gateway.EXPECT().UpdatePayment(gomock.Any(), "PAY-1", ops).Return(json.RawMessage(`{"id":"PAY-1","state":"created"}`), nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.PaymentUpdate) (entities.PaymentUpdate, error) {
		if u.ID == "" || u.Date.IsZero() {
			t.Fatalf("expected id and date to be set, got %+v", u)
		}
		if u.PaymentID != "PAY-1" || u.Status != entities.PaymentUpdateStatusApplied || u.ProviderStatusCode != 0 {
			t.Fatalf("unexpected record: %+v", u)
		}
		if string(u.Operations) != `[{"op":"replace","path":"/payer/payer_info","value":[{"country_code":"US"}]}]` {
			t.Fatalf("unexpected operations: %s", u.Operations)
		}
		if string(u.ProviderResponse) != `{"id":"PAY-1","state":"created"}` {
			t.Fatalf("unexpected provider response: %s", u.ProviderResponse)
		}
		return u, nil
	})

	got, err := uc.UpdatePayment(context.Background(), " PAY-1 ", ops)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.PaymentUpdateStatusApplied {
		t.Fatalf("expected applied, got %s", got.Status)
	}
}

func TestPaymentUpdateUseCase_UpdatePayment_Rejected(t *testing.T) {
	t.Run("rejection is recorded and mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentUpdateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUpdateUseCase(repo, gateway)

		rejection := &httpsclient.TransportError{StatusCode: http.StatusBadRequest, Body: `{"name":"VALIDATION_ERROR"}`}
		gateway.EXPECT().UpdatePayment(gomock.Any(), "PAY-1", gomock.Any()).Return(nil, rejection)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.PaymentUpdate) (entities.PaymentUpdate, error) {
			if u.Status != entities.PaymentUpdateStatusRejected || u.ProviderStatusCode != http.StatusBadRequest {
				t.Fatalf("unexpected record: %+v", u)
			}
			if string(u.ProviderResponse) != `{"name":"VALIDATION_ERROR"}` {
				t.Fatalf("unexpected provider response: %s", u.ProviderResponse)
			}
			return u, nil
		})

		_, err := uc.UpdatePayment(context.Background(), "PAY-1", replaceCountry(t))
		if !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
		if httpsclient.StatusCode(err) != http.StatusBadRequest {
			t.Fatalf("expected status code to stay reachable, got %d", httpsclient.StatusCode(err))
		}
	})

	t.Run("non json rejection body is stored as a string", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentUpdateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUpdateUseCase(repo, gateway)

		gateway.EXPECT().UpdatePayment(gomock.Any(), "PAY-1", gomock.Any()).Return(nil, &httpsclient.TransportError{StatusCode: http.StatusBadGateway, Body: "bad gateway"})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.PaymentUpdate) (entities.PaymentUpdate, error) {
			if string(u.ProviderResponse) != `"bad gateway"` {
				t.Fatalf("unexpected provider response: %s", u.ProviderResponse)
			}
			return u, nil
		})

		_, err := uc.UpdatePayment(context.Background(), "PAY-1", replaceCountry(t))
		if !errors.Is(err, ErrPaymentGatewayRejected) {
			t.Fatalf("expected ErrPaymentGatewayRejected, got %v", err)
		}
	})

	t.Run("audit failure keeps the gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentUpdateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUpdateUseCase(repo, gateway)

		gateway.EXPECT().UpdatePayment(gomock.Any(), "PAY-1", gomock.Any()).Return(nil, &httpsclient.TransportError{StatusCode: http.StatusNotFound})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentUpdate{}, errors.New("db"))

		_, err := uc.UpdatePayment(context.Background(), "PAY-1", replaceCountry(t))
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}

func TestPaymentUpdateUseCase_UpdatePayment_ExchangeFailures(t *testing.T) {
	cases := []struct {
		name    string
		gwErr   error
		wantErr error
	}{
		{name: "io error", gwErr: errors.Join(httpsclient.ErrIO, errors.New("connection refused")), wantErr: ErrPaymentGatewayUnavailable},
		{name: "interrupted", gwErr: errors.Join(httpsclient.ErrInterrupted, context.Canceled), wantErr: ErrPaymentGatewayInterrupted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIPaymentUpdateRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewPaymentUpdateUseCase(repo, gateway)

			gateway.EXPECT().UpdatePayment(gomock.Any(), "PAY-1", gomock.Any()).Return(nil, tc.gwErr)

			_, err := uc.UpdatePayment(context.Background(), "PAY-1", replaceCountry(t))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestPaymentUpdateUseCase_UpdatePayment_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentUpdateRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPaymentUpdateUseCase(repo, gateway)

	gateway.EXPECT().UpdatePayment(gomock.Any(), "PAY-1", gomock.Any()).Return(json.RawMessage(`{}`), nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentUpdate{}, errors.New("db"))

	_, err := uc.UpdatePayment(context.Background(), "PAY-1", replaceCountry(t))
	if err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestPaymentUpdateUseCase_ReplaceFragments(t *testing.T) {
	cases := []struct {
		name     string
		call     func(uc *PaymentUpdateUseCase) (entities.PaymentUpdate, error)
		wantBody string
	}{
		{
			name: "payer info",
			call: func(uc *PaymentUpdateUseCase) (entities.PaymentUpdate, error) {
				payer := entities.PayerInfo{}
				payer.SetEmail("buyer@example.com")
				payer.SetFirstName("Ana")
				return uc.UpdatePayerInfo(context.Background(), "PAY-1", payer)
			},
			wantBody: `[{"op":"replace","path":"/payer/payer_info","value":[{"email":"buyer@example.com","first_name":"Ana"}]}]`,
		},
		{
			name: "shipping address",
			call: func(uc *PaymentUpdateUseCase) (entities.PaymentUpdate, error) {
				return uc.UpdateShippingAddress(context.Background(), "PAY-1", entities.ShippingAddress{Line1: "1 Main St", City: "San Jose", CountryCode: "US"})
			},
			wantBody: `[{"op":"replace","path":"/transactions/0/item_list/shipping_address","value":[{"line1":"1 Main St","city":"San Jose","country_code":"US"}]}]`,
		},
		{
			name: "amount",
			call: func(uc *PaymentUpdateUseCase) (entities.PaymentUpdate, error) {
				return uc.UpdateAmount(context.Background(), "PAY-1", entities.Amount{Currency: "USD", Total: "30.11"})
			},
			wantBody: `[{"op":"replace","path":"/transactions/0/amount","value":[{"currency":"USD","total":"30.11"}]}]`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIPaymentUpdateRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewPaymentUpdateUseCase(repo, gateway)

			gateway.EXPECT().UpdatePayment(gomock.Any(), "PAY-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, ops entities.PatchRequest) (json.RawMessage, error) {
				body, err := ops.Body()
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if string(body) != tc.wantBody {
					t.Fatalf("unexpected body: %s", body)
				}
				return json.RawMessage(`{"id":"PAY-1"}`), nil
			})
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.PaymentUpdate) (entities.PaymentUpdate, error) {
				return u, nil
			})

			got, err := tc.call(uc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got.Operations) != tc.wantBody {
				t.Fatalf("unexpected operations: %s", got.Operations)
			}
		})
	}
}

func TestPaymentUpdateUseCase_GetPayment(t *testing.T) {
	t.Run("empty payment id", func(t *testing.T) {
		uc := NewPaymentUpdateUseCase(nil, nil)
		if _, err := uc.GetPayment(context.Background(), ""); !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	statusCases := []struct {
		status  int
		wantErr error
	}{
		{status: http.StatusNotFound, wantErr: ErrPaymentNotFound},
		{status: http.StatusUnauthorized, wantErr: ErrPaymentGatewayUnauthorized},
		{status: http.StatusInternalServerError, wantErr: ErrPaymentGatewayRejected},
	}
	for _, tc := range statusCases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewPaymentUpdateUseCase(nil, gateway)

			gateway.EXPECT().GetPayment(gomock.Any(), "PAY-1").Return(nil, &httpsclient.TransportError{StatusCode: tc.status})
			if _, err := uc.GetPayment(context.Background(), "PAY-1"); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUpdateUseCase(nil, gateway)

		gateway.EXPECT().GetPayment(gomock.Any(), "PAY-1").Return(json.RawMessage(`{"id":"PAY-1"}`), nil)
		got, err := uc.GetPayment(context.Background(), "PAY-1")
		if err != nil || string(got) != `{"id":"PAY-1"}` {
			t.Fatalf("unexpected result %s err=%v", got, err)
		}
	})
}

func TestPaymentUpdateUseCase_CreatePayment(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		uc := NewPaymentUpdateUseCase(nil, nil)
		for _, p := range []json.RawMessage{nil, json.RawMessage(`{`)} {
			if _, err := uc.CreatePayment(context.Background(), p); !errors.Is(err, ErrInvalidPaymentPayload) {
				t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUpdateUseCase(nil, gateway)

		gateway.EXPECT().CreatePayment(gomock.Any(), json.RawMessage(`{"intent":"sale"}`)).Return(json.RawMessage(`{"id":"PAY-1","state":"created"}`), nil)
		got, err := uc.CreatePayment(context.Background(), json.RawMessage(`{"intent":"sale"}`))
		if err != nil || string(got) != `{"id":"PAY-1","state":"created"}` {
			t.Fatalf("unexpected result %s err=%v", got, err)
		}
	})
}

func TestPaymentUpdateUseCase_ExecutePayment(t *testing.T) {
	t.Run("empty payer id", func(t *testing.T) {
		uc := NewPaymentUpdateUseCase(nil, nil)
		if _, err := uc.ExecutePayment(context.Background(), "PAY-1", " "); !errors.Is(err, ErrInvalidPayerID) {
			t.Fatalf("expected ErrInvalidPayerID, got %v", err)
		}
	})

	t.Run("gateway io error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUpdateUseCase(nil, gateway)

		gateway.EXPECT().ExecutePayment(gomock.Any(), "PAY-1", "PAYER-1").Return(nil, errors.Join(httpsclient.ErrIO, errors.New("timeout")))
		if _, err := uc.ExecutePayment(context.Background(), "PAY-1", "PAYER-1"); !errors.Is(err, ErrPaymentGatewayUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})
}

func TestPaymentUpdateUseCase_ListUpdates(t *testing.T) {
	t.Run("empty payment id", func(t *testing.T) {
		uc := NewPaymentUpdateUseCase(nil, nil)
		if _, err := uc.ListUpdates(context.Background(), ""); !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentUpdateRepository(ctrl)
		uc := NewPaymentUpdateUseCase(repo, nil)

		repo.EXPECT().ListByPaymentID(gomock.Any(), "PAY-1").Return([]entities.PaymentUpdate{{ID: "u-1", PaymentID: "PAY-1"}}, nil)
		got, err := uc.ListUpdates(context.Background(), "PAY-1")
		if err != nil || len(got) != 1 || got[0].ID != "u-1" {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})
}
