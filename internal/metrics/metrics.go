package metrics

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Explain results.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
	// ResultEmpty is a valid expression with no occurrence within the horizon.
	ResultEmpty = "empty"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// ExplainTotal counts explained expressions by result (valid, invalid, empty).
	ExplainTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cron_explain_total",
			Help: "Total number of cron expressions explained by result",
		},
		[]string{"result"},
	)

	// EnumerationDuration tracks how long occurrence enumeration takes.
	// A sparse expression walks up to a year of minutes.
	EnumerationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cron_enumeration_duration_seconds",
			Help:    "Time spent enumerating occurrences of a cron expression",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .25, .5, 1},
		},
	)

	// OccurrencesFound tracks how many occurrences each enumeration returned.
	OccurrencesFound = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cron_occurrences_found",
			Help:    "Number of occurrences returned per enumeration",
			Buckets: []float64{0, 1, 5, 10, 25, 50},
		},
	)
)

var (
	numericPathSegment = regexp.MustCompile(`/[0-9]+(/|$)`)
	fieldPathSegment   = regexp.MustCompile(`^(/v1/cron/fields)/[^/]+$`)
	initOnce           sync.Once
)

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, ExplainTotal, EnumerationDuration, OccurrencesFound)
	})
}

// NormalizePath collapses field names and numeric segments in a path label.
// E.g. /v1/cron/fields/minute -> /v1/cron/fields/{field}, /static/12 -> /static/{id}.
func NormalizePath(path string) string {
	path = fieldPathSegment.ReplaceAllString(path, "$1/{field}")
	return numericPathSegment.ReplaceAllString(path, "/{id}$1")
}

// RecordRequest records duration and count for an HTTP request. Call from middleware with method, path, statusCode, duration.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// RecordExplain records one explained expression. For invalid expressions
// duration and found are ignored.
func RecordExplain(result string, durationSeconds float64, found int) {
	ExplainTotal.WithLabelValues(result).Inc()
	if result == ResultInvalid {
		return
	}
	EnumerationDuration.Observe(durationSeconds)
	OccurrencesFound.Observe(float64(found))
}
