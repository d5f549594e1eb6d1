// Package metrics provides Prometheus metrics for the PokeAPI MCP server.
// It tracks tool call counts, latencies, upstream API performance, and audio
// download/playback outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "pokeapi_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// APILatency measures upstream PokeAPI call latency by action
	APILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "api_latency_seconds",
		Help:      "Upstream API call latency by action",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action"})

	// APIRequestsTotal counts upstream PokeAPI requests
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_requests_total",
		Help:      "Total upstream API requests by action and status",
	}, []string{"action", "status"})

	// APIErrors counts upstream PokeAPI errors by error code
	APIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_errors_total",
		Help:      "Upstream API errors by action and error code",
	}, []string{"action", "error_code"})

	// CryDownloadsTotal counts cry audio downloads by status
	CryDownloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "cry_downloads_total",
		Help:      "Total cry audio downloads by status",
	}, []string{"status"})

	// CryDownloadBytes tracks downloaded cry audio sizes
	CryDownloadBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "cry_download_bytes",
		Help:      "Cry audio size distribution in bytes",
		Buckets:   []float64{1000, 10000, 50000, 100000, 250000, 500000, 1000000},
	})

	// PlaybacksTotal counts playback attempts by platform and outcome
	PlaybacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "playbacks_total",
		Help:      "Cry playback attempts by platform and outcome",
	}, []string{"platform", "status"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})
)

// RecordRequest records a completed request with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPICall records an upstream API call
func RecordAPICall(action string, duration float64, success bool, errorCode string) {
	status := "success"
	if !success {
		status = "error"
	}
	APIRequestsTotal.WithLabelValues(action, status).Inc()
	APILatency.WithLabelValues(action).Observe(duration)
	if errorCode != "" {
		APIErrors.WithLabelValues(action, errorCode).Inc()
	}
}

// RecordCryDownload records a cry audio download and its size
func RecordCryDownload(bytes int64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	CryDownloadsTotal.WithLabelValues(status).Inc()
	if success {
		CryDownloadBytes.Observe(float64(bytes))
	}
}

// RecordPlayback records a playback attempt outcome
func RecordPlayback(platform, status string) {
	PlaybacksTotal.WithLabelValues(platform, status).Inc()
}
