package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Raymond9734/linkpager/internal/linkheader"
)

// Strategy names used as metric labels
const (
	StrategyPageNumber  = "page_number"
	StrategyLimitOffset = "limit_offset"
	StrategyCursor      = "cursor"
)

var (
	// RequestsTotal counts paginated responses.
	// Labels: strategy, status (HTTP status code)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkpager_paginated_requests_total",
			Help: "Total number of paginated list requests",
		},
		[]string{"strategy", "status"},
	)

	// ErrorsTotal counts pagination failures.
	// Labels: strategy, type (not_found, invalid_input, source)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkpager_pagination_errors_total",
			Help: "Total number of pagination errors",
		},
		[]string{"strategy", "type"},
	)

	// LinkRelationsTotal counts emitted Link relations by label
	LinkRelationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkpager_link_relations_total",
			Help: "Total number of Link header relations emitted",
		},
		[]string{"rel"},
	)

	// DurationSeconds tracks time spent fetching a page
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "linkpager_pagination_duration_seconds",
			Help:    "Time spent reading a page from its source",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"strategy"},
	)
)

// RecordRequest records a paginated response
func RecordRequest(strategy string, statusCode int) {
	RequestsTotal.WithLabelValues(strategy, strconv.Itoa(statusCode)).Inc()
}

// RecordError records a pagination error.
// errorType should be one of: "not_found", "invalid_input", "source"
func RecordError(strategy, errorType string) {
	ErrorsTotal.WithLabelValues(strategy, errorType).Inc()
}

// RecordLinks records the relations advertised for a page
func RecordLinks(links []linkheader.Link) {
	for _, link := range links {
		LinkRelationsTotal.WithLabelValues(string(link.Rel)).Inc()
	}
}

// RecordDuration records page read duration in seconds
func RecordDuration(strategy string, seconds float64) {
	DurationSeconds.WithLabelValues(strategy).Observe(seconds)
}
