package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cardctl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cardctl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
	cardsParsed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cardctl",
			Subsystem: "codec",
			Name:      "cards_parsed_total",
			Help:      "Cards parsed from wire input.",
		},
		[]string{"node"},
	)
	parseWarnings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cardctl",
			Subsystem: "codec",
			Name:      "parse_warnings_total",
			Help:      "Tolerated anomalies observed while parsing.",
		},
		[]string{"node"},
	)
	parseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cardctl",
			Subsystem: "codec",
			Name:      "parse_duration_seconds",
			Help:      "Wire parse duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node"},
	)
	encodeResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cardctl",
			Subsystem: "codec",
			Name:      "encodes_total",
			Help:      "Card encode attempts by outcome.",
		},
		[]string{"node", "success"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, cardsParsed, parseWarnings, parseDuration, encodeResults)
	})
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}

func RecordParse(node string, cards, warnings int, duration time.Duration) {
	RegisterMetrics()
	cardsParsed.WithLabelValues(node).Add(float64(cards))
	parseWarnings.WithLabelValues(node).Add(float64(warnings))
	parseDuration.WithLabelValues(node).Observe(duration.Seconds())
}

func RecordEncode(node string, success bool) {
	RegisterMetrics()
	encodeResults.WithLabelValues(node, strconv.FormatBool(success)).Inc()
}
