package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"paypal_connector/internal/domain/entities"
	"paypal_connector/internal/infrastructure/httpsclient"
	"paypal_connector/internal/infrastructure/logging"
	"paypal_connector/internal/infrastructure/metrics"
	"paypal_connector/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrMissingPayPalCredentials = errors.New("missing PAYPAL_CLIENT_ID or PAYPAL_CLIENT_SECRET")
var ErrPayPalGatewayNotConfigured = errors.New("paypal gateway not configured")
var ErrInvalidTokenResponse = errors.New("paypal token response without access_token")

const (
	pathToken   = "/v1/oauth2/token"
	pathPayment = "/v1/payments/payment"

	// tokenRefreshMargin renews the access token before PayPal expires it.
	tokenRefreshMargin = time.Minute
)

// PayPalGatewayConfig configures a PayPalGateway. HTTPClient and Metrics are optional.
type PayPalGatewayConfig struct {
	BaseURL        string
	ClientID       string
	ClientSecret   string
	AcceptLanguage string
	KeepAlive      bool
	Mock           bool
	HTTPClient     *http.Client
	Metrics        *metrics.Outbound
}

// PayPalGateway talks to the PayPal payments API. A fresh immutable
// httpsclient.Client is built for every call; only the access token is cached.
type PayPalGateway struct {
	cfg    PayPalGatewayConfig
	logger *logrus.Entry
	now    func() time.Time

	// tokenSem is a one-slot lock over token and tokenExpiry that waiters can
	// leave when their context ends.
	tokenSem    chan struct{}
	token       string
	tokenExpiry time.Time
}

var _ interfaces.IPaymentGateway = (*PayPalGateway)(nil)

func NewPayPalGateway(cfg PayPalGatewayConfig) (*PayPalGateway, error) {
	logger := logging.Subsystem("payment-gateway")
	if cfg.Mock {
		logger.Infof("[payment][gateway] mock mode enabled")
		return newPayPalGateway(cfg, logger), nil
	}

	if strings.TrimSpace(cfg.ClientID) == "" || strings.TrimSpace(cfg.ClientSecret) == "" {
		logger.Warnf("[payment][gateway] missing PAYPAL_CLIENT_ID or PAYPAL_CLIENT_SECRET")
		return nil, ErrMissingPayPalCredentials
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	logger.Infof("[payment][gateway] PayPal client initialized base_url=%s", cfg.BaseURL)

	return newPayPalGateway(cfg, logger), nil
}

func newPayPalGateway(cfg PayPalGatewayConfig, logger *logrus.Entry) *PayPalGateway {
	return &PayPalGateway{cfg: cfg, logger: logger, now: time.Now, tokenSem: make(chan struct{}, 1)}
}

type tokenResponse struct {
	Scope       string `json:"scope"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	AppID       string `json:"app_id"`
	ExpiresIn   int64  `json:"expires_in"`
}

// GetAccessToken returns the cached OAuth2 token or fetches a new one with the
// client credentials grant.
func (g *PayPalGateway) GetAccessToken(ctx context.Context) (string, error) {
	if g == nil {
		return "", ErrPayPalGatewayNotConfigured
	}
	if g.cfg.Mock {
		return "A21AAMock", nil
	}

	if err := g.lockToken(ctx); err != nil {
		return "", err
	}
	defer g.unlockToken()
	if g.token != "" && g.now().Before(g.tokenExpiry) {
		return g.token, nil
	}

	start := time.Now()
	g.logger.Debugf("[payment][gateway] token request start")
	client, err := g.newBuilder(g.cfg.BaseURL+pathToken, httpsclient.MethodPost).
		BasicAuthorization(g.cfg.ClientID + ":" + g.cfg.ClientSecret).
		ContentType(httpsclient.MimeTypeFormURLEncoded).
		Accept(httpsclient.MimeTypeJSON).
		Build()
	if err != nil {
		return "", err
	}
	raw, err := client.Send(ctx, []byte("grant_type=client_credentials"))
	g.cfg.Metrics.Observe("get_access_token", start, err)
	if err != nil {
		g.logger.Errorf("[payment][gateway] token request failed status=%d err=%v", httpsclient.StatusCode(err), err)
		return "", err
	}

	var tr tokenResponse
	if err := json.Unmarshal([]byte(raw), &tr); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTokenResponse, err)
	}
	if tr.AccessToken == "" {
		return "", ErrInvalidTokenResponse
	}

	lifetime := time.Duration(tr.ExpiresIn) * time.Second
	g.token = tr.AccessToken
	g.tokenExpiry = g.now().Add(lifetime - min(tokenRefreshMargin, lifetime/2))
	g.logger.Debugf("[payment][gateway] token request success expires_in=%d", tr.ExpiresIn)
	return g.token, nil
}

func (g *PayPalGateway) lockToken(ctx context.Context) error {
	select {
	case g.tokenSem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: waiting for access token: %w", httpsclient.ErrInterrupted, ctx.Err())
	}
}

func (g *PayPalGateway) unlockToken() {
	<-g.tokenSem
}

// dropToken forgets token unless another call already replaced it.
func (g *PayPalGateway) dropToken(ctx context.Context, token string) {
	if err := g.lockToken(ctx); err != nil {
		return
	}
	defer g.unlockToken()
	if g.token == token {
		g.token = ""
		g.tokenExpiry = time.Time{}
	}
}

func (g *PayPalGateway) CreatePayment(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	if g == nil {
		return nil, ErrPayPalGatewayNotConfigured
	}
	if g.cfg.Mock {
		return g.mockPayment(payload, "", "created")
	}
	g.logger.Infof("[payment][gateway] create start payload_len=%d", len(payload))
	return g.call(ctx, "create_payment", httpsclient.MethodPost, g.cfg.BaseURL+pathPayment, payload)
}

func (g *PayPalGateway) GetPayment(ctx context.Context, paymentID string) (json.RawMessage, error) {
	if g == nil {
		return nil, ErrPayPalGatewayNotConfigured
	}
	if g.cfg.Mock {
		return g.mockPayment(nil, paymentID, "created")
	}
	g.logger.Infof("[payment][gateway] get start payment_id=%s", paymentID)
	return g.call(ctx, "get_payment", httpsclient.MethodGet, g.paymentURL(paymentID), nil)
}

func (g *PayPalGateway) UpdatePayment(ctx context.Context, paymentID string, ops entities.PatchRequest) (json.RawMessage, error) {
	if g == nil {
		return nil, ErrPayPalGatewayNotConfigured
	}
	body, err := ops.Body()
	if err != nil {
		return nil, err
	}
	if g.cfg.Mock {
		return g.mockPayment(nil, paymentID, "created")
	}
	g.logger.Infof("[payment][gateway] update start payment_id=%s operations=%d", paymentID, len(ops))
	return g.call(ctx, "update_payment", httpsclient.MethodPatch, g.paymentURL(paymentID), body)
}

func (g *PayPalGateway) ExecutePayment(ctx context.Context, paymentID, payerID string) (json.RawMessage, error) {
	if g == nil {
		return nil, ErrPayPalGatewayNotConfigured
	}
	body, err := json.Marshal(map[string]string{"payer_id": payerID})
	if err != nil {
		return nil, err
	}
	if g.cfg.Mock {
		return g.mockPayment(nil, paymentID, "approved")
	}
	g.logger.Infof("[payment][gateway] execute start payment_id=%s", paymentID)
	return g.call(ctx, "execute_payment", httpsclient.MethodPost, g.paymentURL(paymentID)+"/execute", body)
}

func (g *PayPalGateway) call(ctx context.Context, operation string, method httpsclient.Method, target string, body []byte) (json.RawMessage, error) {
	start := time.Now()
	raw, rejected, err := g.send(ctx, method, target, body)
	if rejected {
		g.logger.Warnf("[payment][gateway] %s access token rejected, retrying with a new one", operation)
		raw, _, err = g.send(ctx, method, target, body)
	}
	g.cfg.Metrics.Observe(operation, start, err)
	if err != nil {
		g.logger.Errorf("[payment][gateway] %s failed status=%d err=%v", operation, httpsclient.StatusCode(err), err)
		return nil, err
	}
	g.logger.Infof("[payment][gateway] %s success response_len=%d", operation, len(raw))
	return json.RawMessage(raw), nil
}

// send performs one authenticated exchange. When PayPal answers 401 to the
// bearer token, the cached token is dropped and rejected is true.
func (g *PayPalGateway) send(ctx context.Context, method httpsclient.Method, target string, body []byte) (raw string, rejected bool, err error) {
	token, err := g.GetAccessToken(ctx)
	if err != nil {
		return "", false, err
	}

	b := g.newBuilder(target, method).
		BearerAuthorization(token).
		Accept(httpsclient.MimeTypeJSON)
	if body != nil {
		b.ContentType(httpsclient.MimeTypeJSON)
	}
	client, err := b.Build()
	if err != nil {
		return "", false, err
	}

	raw, err = client.Send(ctx, body)
	if httpsclient.StatusCode(err) == http.StatusUnauthorized {
		g.dropToken(ctx, token)
		return raw, true, err
	}
	return raw, false, err
}

func (g *PayPalGateway) newBuilder(target string, method httpsclient.Method) *httpsclient.Builder {
	b := httpsclient.NewBuilder(target, method).
		Logger(g.logger).
		KeepAlive(g.cfg.KeepAlive)
	if g.cfg.AcceptLanguage != "" {
		b.AcceptLanguage(g.cfg.AcceptLanguage)
	}
	if g.cfg.HTTPClient != nil {
		b.HTTPClient(g.cfg.HTTPClient)
	}
	return b
}

func (g *PayPalGateway) paymentURL(paymentID string) string {
	return g.cfg.BaseURL + pathPayment + "/" + url.PathEscape(paymentID)
}

func (g *PayPalGateway) mockPayment(payload json.RawMessage, paymentID, state string) (json.RawMessage, error) {
	resp := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		if err := json.Unmarshal(payload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(payload)}
		}
	}
	if paymentID == "" {
		paymentID = "PAY-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	}
	now := g.now().UTC().Format(time.RFC3339)
	resp["id"] = paymentID
	resp["state"] = state
	if _, ok := resp["create_time"]; !ok {
		resp["create_time"] = now
	}
	resp["update_time"] = now

	b, err := json.Marshal(resp)
	if err != nil {
		g.logger.Errorf("[payment][gateway] mock response marshal failed err=%v", err)
		return nil, err
	}
	g.logger.Infof("[payment][gateway] mock response payment_id=%s state=%s", paymentID, state)
	return b, nil
}
