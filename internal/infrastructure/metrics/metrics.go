package metrics

import (
	"errors"
	"time"

	"paypal_connector/internal/infrastructure/httpsclient"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess         = "success"
	OutcomeInvalidArgument = "invalid_argument"
	OutcomeIOError         = "io_error"
	OutcomeInterrupted     = "interrupted"
	OutcomeTransportError  = "transport_error"
	OutcomeOther           = "other"
)

// Outbound counts and times the calls made to the payment provider.
type Outbound struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

func NewOutbound(reg prometheus.Registerer) *Outbound {
	factory := promauto.With(reg)
	return &Outbound{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "paypal_connector",
			Name:      "outbound_requests_total",
			Help:      "Calls sent to the payment provider by operation and outcome.",
		}, []string{"operation", "outcome"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "paypal_connector",
			Name:      "outbound_request_duration_seconds",
			Help:      "Duration of calls sent to the payment provider.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

// Observe is a no-op on a nil receiver.
func (o *Outbound) Observe(operation string, start time.Time, err error) {
	if o == nil {
		return
	}
	o.Requests.WithLabelValues(operation, Outcome(err)).Inc()
	o.Duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, httpsclient.ErrInvalidArgument):
		return OutcomeInvalidArgument
	case errors.Is(err, httpsclient.ErrInterrupted):
		return OutcomeInterrupted
	case errors.Is(err, httpsclient.ErrIO):
		return OutcomeIOError
	case errors.Is(err, httpsclient.ErrTransport):
		return OutcomeTransportError
	default:
		return OutcomeOther
	}
}
