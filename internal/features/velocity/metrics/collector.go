package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector manages Prometheus metrics for the request pipeline
type Collector struct {
	tokenIssuance prometheus.Counter
	authRetries   prometheus.Counter
	requests      *prometheus.CounterVec
	registered    bool
	mu            sync.Mutex
}

// NewCollector creates a new metrics collector
func NewCollector() *Collector {
	return &Collector{
		tokenIssuance: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "velocity_token_issuance_total",
				Help: "Count of bearer tokens issued by the portal",
			},
		),
		authRetries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "velocity_auth_retries_total",
				Help: "Count of calls retried after a 401 re-issuance",
			},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "velocity_requests_total",
				Help: "Count of outbound API calls by outcome",
			},
			[]string{"outcome"}, // success, failure, unauthorized, error
		),
	}
}

// Register registers metrics with Prometheus
func (c *Collector) Register() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.registered {
		return
	}

	prometheus.MustRegister(c.tokenIssuance)
	prometheus.MustRegister(c.authRetries)
	prometheus.MustRegister(c.requests)

	c.registered = true
}

// RecordTokenIssuance increments the issuance counter
func (c *Collector) RecordTokenIssuance() {
	c.tokenIssuance.Inc()
}

// RecordAuthRetry increments the 401 retry counter
func (c *Collector) RecordAuthRetry() {
	c.authRetries.Inc()
}

// RecordRequest records the outcome of one outbound call
func (c *Collector) RecordRequest(outcome string) {
	c.requests.WithLabelValues(outcome).Inc()
}
