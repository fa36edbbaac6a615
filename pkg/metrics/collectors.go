package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "realty_analyzer"

//nolint:gochecknoglobals
var (
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests by route, method and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	llmCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "llm",
		Name:      "calls_total",
		Help:      "Calls to the language model provider by operation and outcome.",
	}, []string{"provider", "operation", "outcome"})

	llmDecodeFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "llm",
		Name:      "decode_fallbacks_total",
		Help:      "Model responses that could not be decoded and were replaced by a fallback record.",
	}, []string{"operation"})

	analyses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "analyses_total",
		Help:      "Computed investment reports by verdict.",
	}, []string{"verdict"})
)

func ObserveHTTPRequest(method, route, status string, d time.Duration) {
	httpRequestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}

func IncLLMCall(provider, operation, outcome string) {
	llmCalls.WithLabelValues(provider, operation, outcome).Inc()
}

func IncLLMDecodeFallback(operation string) {
	llmDecodeFallbacks.WithLabelValues(operation).Inc()
}

func IncAnalysis(verdict string) {
	analyses.WithLabelValues(verdict).Inc()
}
