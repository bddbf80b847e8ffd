package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fable_requests_total",
			Help: "Total HTTP requests served, by route and status code.",
		},
		[]string{"route", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fable_request_duration_seconds",
			Help:    "HTTP request latency in seconds, by route.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"route"},
	)

	tokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fable_tokens_total",
			Help: "Whitespace-token counts reported in usage blocks, by direction.",
		},
		[]string{"direction"},
	)

	subjectFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fable_subject_fallbacks_total",
			Help: "Synthesis calls where no subject could be extracted from the prompt.",
		},
	)
)

// RecordRequest records one served HTTP request.
func RecordRequest(route string, status int, duration time.Duration) {
	requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordUsage records the token counts of one synthesized response.
func RecordUsage(inputTokens, outputTokens int) {
	tokensTotal.WithLabelValues("input").Add(float64(inputTokens))
	tokensTotal.WithLabelValues("output").Add(float64(outputTokens))
}

// RecordSubjectFallback counts a synthesis that used the default subject.
func RecordSubjectFallback() {
	subjectFallbacks.Inc()
}

// MetricsHandler exposes the prometheus scrape endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
