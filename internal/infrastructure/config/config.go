package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	PayPalModeSandbox = "sandbox"
	PayPalModeLive    = "live"

	payPalSandboxURL = "https://api.sandbox.paypal.com"
	payPalLiveURL    = "https://api.paypal.com"
)

// Config is read from the environment (and from .env through godotenv in cmd/api).
type Config struct {
	HTTPPort int    `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	PayPalMode            string `envconfig:"PAYPAL_MODE" default:"sandbox"`
	PayPalBaseURLOverride string `envconfig:"PAYPAL_BASE_URL"`
	PayPalClientID        string `envconfig:"PAYPAL_CLIENT_ID"`
	PayPalClientSecret    string `envconfig:"PAYPAL_CLIENT_SECRET"`
	PayPalAcceptLanguage  string `envconfig:"PAYPAL_ACCEPT_LANGUAGE" default:"en_US"`
	PayPalKeepAlive       bool   `envconfig:"PAYPAL_KEEP_ALIVE" default:"true"`
	PaymentGatewayMock    bool   `envconfig:"PAYMENT_GATEWAY_MOCK"`

	AWSRegion           string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID      string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey  string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint    string `envconfig:"DYNAMODB_ENDPOINT"`
	PaymentUpdatesTable string `envconfig:"PAYMENT_UPDATES_TABLE" default:"payment_updates"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// PayPalBaseURL returns PAYPAL_BASE_URL when set, otherwise the endpoint of PAYPAL_MODE.
func (c Config) PayPalBaseURL() string {
	if v := strings.TrimRight(strings.TrimSpace(c.PayPalBaseURLOverride), "/"); v != "" {
		return v
	}
	if strings.EqualFold(strings.TrimSpace(c.PayPalMode), PayPalModeLive) {
		return payPalLiveURL
	}
	return payPalSandboxURL
}
