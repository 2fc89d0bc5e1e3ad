// Package metrics defines the Prometheus collectors exported on the ops
// endpoint.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RPCMetrics counts handled RPCs and their latency per method and status code.
type RPCMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRPCMetrics registers the RPC collectors on reg. A nil registerer yields a
// no-op recorder.
func NewRPCMetrics(reg prometheus.Registerer) *RPCMetrics {
	if reg == nil {
		return &RPCMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "identcore",
		Name:      "rpc_requests_total",
		Help:      "Handled RPCs by method and status code.",
	}, []string{"method", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "identcore",
		Name:      "rpc_duration_seconds",
		Help:      "RPC handling latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
	reg.MustRegister(requests, duration)
	return &RPCMetrics{requests: requests, duration: duration}
}

func (m *RPCMetrics) Observe(method, code string, elapsed time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	method = normalizeLabel(method)
	m.requests.WithLabelValues(method, normalizeLabel(code)).Inc()
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// RegisterRevokedTokens exports the size of the in-process revocation set.
func RegisterRevokedTokens(reg prometheus.Registerer, size func() int) {
	if reg == nil || size == nil {
		return
	}
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "identcore",
		Name:      "revoked_tokens",
		Help:      "Revoked tokens not yet past their expiry.",
	}, func() float64 { return float64(size()) }))
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
