package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors describing API traffic.
// It is safe for concurrent use.
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec
	errorsTotal      *prometheus.CounterVec
}

// NewMetrics registers the request collectors on the given registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lcmap_client_requests_total",
				Help: "Total number of HTTP requests sent to the LCMAP API",
			},
			[]string{"method", "status_code", "host"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lcmap_client_request_duration_seconds",
				Help:    "Duration of HTTP requests sent to the LCMAP API in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "host"},
		),
		requestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "lcmap_client_requests_in_flight",
				Help: "Number of HTTP requests to the LCMAP API currently in flight",
			},
			[]string{"host"},
		),
		errorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lcmap_client_transport_errors_total",
				Help: "Total number of requests that failed before a response was received",
			},
			[]string{"method", "host"},
		),
	}
}

// MetricsTransport is a custom http.RoundTripper that records Prometheus metrics for each request.
type MetricsTransport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// metrics receives the observations.
	metrics *Metrics
}

// NewMetricsTransport wraps next with request metrics. A nil metrics value disables recording.
func NewMetricsTransport(next http.RoundTripper, metrics *Metrics) http.RoundTripper {
	if metrics == nil {
		return next
	}

	return &MetricsTransport{
		next:    next,
		metrics: metrics,
	}
}

// RoundTrip executes a single HTTP transaction and records its outcome.
// It implements the http.RoundTripper interface.
func (t *MetricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	host := req.URL.Host

	inFlight := t.metrics.requestsInFlight.WithLabelValues(host)
	inFlight.Inc()

	defer inFlight.Dec()

	startTime := time.Now()

	resp, err := t.next.RoundTrip(req)

	t.metrics.requestDuration.WithLabelValues(req.Method, host).Observe(time.Since(startTime).Seconds())

	if err != nil {
		t.metrics.errorsTotal.WithLabelValues(req.Method, host).Inc()

		return nil, err
	}

	t.metrics.requestsTotal.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode), host).Inc()

	return resp, nil
}

// CloseIdleConnections closes idle connections of the wrapped transport.
func (t *MetricsTransport) CloseIdleConnections() {
	closeIdleConnections(t.next)
}
