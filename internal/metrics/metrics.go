package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "walletscan"

// Collector groups the instruments shared by the ingestion pipeline and the
// upstream client. A nil *Collector is valid and records nothing.
type Collector struct {
	ingestions       *prometheus.CounterVec
	upstreamRecords  prometheus.Histogram
	upstreamDuration *prometheus.HistogramVec
	pages            prometheus.Counter
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		ingestions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ingestions_total",
				Help:      "Ingestion attempts by outcome",
			},
			[]string{"outcome"},
		),
		upstreamRecords: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_records",
				Help:      "Transactions returned by the explorer per ingestion",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		upstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "Explorer API latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"action", "status"},
		),
		pages: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pages_served_total",
				Help:      "Transaction pages read from the store",
			},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method and status class",
			},
			[]string{"method", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}

	reg.MustRegister(c.ingestions, c.upstreamRecords, c.upstreamDuration, c.pages, c.httpRequests, c.httpDuration)
	return c
}

func (c *Collector) IngestionOutcome(outcome string) {
	if c == nil {
		return
	}
	c.ingestions.WithLabelValues(outcome).Inc()
}

func (c *Collector) UpstreamRecords(count int) {
	if c == nil {
		return
	}
	c.upstreamRecords.Observe(float64(count))
}

func (c *Collector) UpstreamRequest(action, status string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.upstreamDuration.WithLabelValues(action, status).Observe(elapsed.Seconds())
}

func (c *Collector) PageServed() {
	if c == nil {
		return
	}
	c.pages.Inc()
}

// HTTPRequest records a served request. Status codes are grouped by class to
// keep label cardinality bounded.
func (c *Collector) HTTPRequest(method string, code int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.httpRequests.WithLabelValues(method, statusClass(code)).Inc()
	c.httpDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
