package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Outbound AI call latency in milliseconds
	AICallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_call_latency_ms",
			Help:    "Outbound AI call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"provider", "status"},
	)

	// Analyzed email count by resulting category
	EmailAnalyzedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_analyzed_count",
			Help: "Total number of emails analyzed",
		},
		[]string{"category"}, // category: Produtivo, Improdutivo
	)
)

// RecordHTTPRequestDuration records HTTP request latency
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordAICallLatency records an outbound AI call latency
func RecordAICallLatency(provider, status string, duration time.Duration) {
	AICallLatency.WithLabelValues(provider, status).Observe(float64(duration.Milliseconds()))
}

// IncrementEmailAnalyzed increments the analyzed email counter
func IncrementEmailAnalyzed(category string) {
	EmailAnalyzedCount.WithLabelValues(category).Inc()
}
