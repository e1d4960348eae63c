package httpsclient

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Method string

const (
	MethodPost  Method = http.MethodPost
	MethodGet   Method = http.MethodGet
	MethodPatch Method = http.MethodPatch
)

const (
	headerKeepAlive      = "keep-alive"
	headerAuthorization  = "Authorization"
	headerAcceptLanguage = "Accept-Language"
	headerContentType    = "Content-Type"
	headerAccept         = "Accept"
)

// defaultHTTPClient is shared by every Client that was not given its own, so
// connections are pooled and reused by the transport across clients.
var defaultHTTPClient = &http.Client{
	Transport: otelhttp.NewTransport(cleanhttp.DefaultPooledTransport()),
}

type requestConfig struct {
	url            string
	method         Method
	authorization  string
	acceptLanguage string
	contentType    MimeType
	accept         MimeType
	keepAlive      bool
}

// Builder collects the configuration of one request. It is not safe for
// concurrent use; call Build to obtain an immutable Client.
type Builder struct {
	cfg        requestConfig
	httpClient *http.Client
	logger     *logrus.Entry
}

// NewBuilder starts the configuration for url, e.g. "https://api.sandbox.paypal.com/v1/payments/payment".
func NewBuilder(url string, method Method) *Builder {
	return &Builder{
		cfg:    requestConfig{url: url, method: method},
		logger: logrus.WithField("subsystem", "https-client"),
	}
}

// BearerAuthorization sets authorization to "Bearer <accessToken>".
func (b *Builder) BearerAuthorization(accessToken string) *Builder {
	b.logger.Debugf("[https][client] authorization scheme=Bearer credential_len=%d", len(accessToken))
	b.cfg.authorization = "Bearer " + accessToken
	return b
}

// BasicAuthorization expects "<username>:<password>" and sets authorization
// to "Basic <base64(username:password)>".
func (b *Builder) BasicAuthorization(usernamePassword string) *Builder {
	if len(usernamePassword) < 10 {
		b.logger.Debugf("[https][client] authorization scheme=Basic credential looks too short credential_len=%d", len(usernamePassword))
	} else {
		b.logger.Debugf("[https][client] authorization scheme=Basic credential_len=%d", len(usernamePassword))
	}
	b.cfg.authorization = "Basic " + base64.StdEncoding.EncodeToString([]byte(usernamePassword))
	return b
}

func (b *Builder) AcceptLanguage(acceptLanguage string) *Builder {
	b.cfg.acceptLanguage = acceptLanguage
	return b
}

func (b *Builder) ContentType(contentType MimeType) *Builder {
	b.cfg.contentType = contentType
	return b
}

func (b *Builder) Accept(accept MimeType) *Builder {
	b.cfg.accept = accept
	return b
}

func (b *Builder) KeepAlive(keepAlive bool) *Builder {
	b.cfg.keepAlive = keepAlive
	return b
}

// HTTPClient replaces the pooled default client.
func (b *Builder) HTTPClient(httpClient *http.Client) *Builder {
	b.httpClient = httpClient
	return b
}

func (b *Builder) Logger(logger *logrus.Entry) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// Build validates the configuration and returns a snapshot of it. Changes made
// to the builder afterwards do not reach the returned Client.
func (b *Builder) Build() (*Client, error) {
	if strings.TrimSpace(b.cfg.url) == "" {
		return nil, fmt.Errorf("%w: url can't be empty", ErrInvalidArgument)
	}
	u, err := url.Parse(b.cfg.url)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid url %q", ErrInvalidArgument, b.cfg.url)
	}
	switch b.cfg.method {
	case MethodPost, MethodGet, MethodPatch:
	default:
		return nil, fmt.Errorf("%w: unsupported method %q", ErrInvalidArgument, b.cfg.method)
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = defaultHTTPClient
	}
	return &Client{cfg: b.cfg, httpClient: httpClient, logger: b.logger}, nil
}

// Client executes exactly one HTTPS exchange per Send. It holds no mutable
// state and may be shared between goroutines.
type Client struct {
	cfg        requestConfig
	httpClient *http.Client
	logger     *logrus.Entry
}

func (c *Client) Method() Method {
	return c.cfg.method
}

func (c *Client) URL() string {
	return c.cfg.url
}

// Send executes the call and returns the response body for status 200 and 201.
// A nil body means the request has no body: it is required for POST and PATCH
// and forbidden for GET.
func (c *Client) Send(ctx context.Context, body []byte) (string, error) {
	if err := c.checkBody(body); err != nil {
		return "", err
	}

	req, err := c.newRequest(ctx, body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	c.logger.Debugf("[https][client] send start method=%s url=%s body_len=%d", c.cfg.method, c.cfg.url, len(body))
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debugf("[https][client] send failed method=%s url=%s err=%v", c.cfg.method, c.cfg.url, err)
		return "", classify(ctx, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		c.logger.Debugf("[https][client] read body failed method=%s url=%s err=%v", c.cfg.method, c.cfg.url, err)
		return "", classify(ctx, err)
	}

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		c.logger.Debugf("[https][client] send rejected method=%s url=%s status=%d", c.cfg.method, c.cfg.url, res.StatusCode)
		return "", &TransportError{StatusCode: res.StatusCode, Body: string(raw)}
	}
	c.logger.Debugf("[https][client] send success method=%s url=%s status=%d", c.cfg.method, c.cfg.url, res.StatusCode)
	return string(raw), nil
}

func (c *Client) checkBody(body []byte) error {
	switch {
	case body == nil && c.cfg.method == MethodPost:
		return fmt.Errorf("%w: body can't be nil for POST calls", ErrInvalidArgument)
	case body == nil && c.cfg.method == MethodPatch:
		return fmt.Errorf("%w: body can't be nil for PATCH calls", ErrInvalidArgument)
	case body != nil && c.cfg.method == MethodGet:
		return fmt.Errorf("%w: body must be nil for GET calls", ErrInvalidArgument)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, body []byte) (*http.Request, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, string(c.cfg.method), c.cfg.url, reader)
	if err != nil {
		return nil, err
	}

	if c.cfg.keepAlive {
		req.Header.Set(headerKeepAlive, "true")
	}
	if c.cfg.authorization != "" {
		req.Header.Set(headerAuthorization, c.cfg.authorization)
	}
	if c.cfg.acceptLanguage != "" {
		c.logger.Debugf("[https][client] Accept-Language: %s", c.cfg.acceptLanguage)
		req.Header.Set(headerAcceptLanguage, c.cfg.acceptLanguage)
	}
	if c.cfg.contentType != "" {
		c.logger.Debugf("[https][client] Content-Type: %s", c.cfg.contentType)
		req.Header.Set(headerContentType, c.cfg.contentType.String())
	}
	if c.cfg.accept != "" {
		c.logger.Debugf("[https][client] Accept: %s", c.cfg.accept)
		req.Header.Set(headerAccept, c.cfg.accept.String())
	}
	return req, nil
}

// classify maps a failed exchange to ErrInterrupted when the caller cancelled
// it and to ErrIO otherwise. Deadline expiry counts as an I/O timeout.
func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	return fmt.Errorf("%w: %w", ErrIO, err)
}
