package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	QueriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "urbandash_queries_total",
		Help: "Total number of natural language query interpretations",
	})
	EmptyFiltersTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "urbandash_empty_filters_total",
		Help: "Total interpretations that produced no usable filter",
	})
	QueryDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "urbandash_query_duration_ms",
		Help:    "Query interpretation duration in milliseconds",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
	})
	InferenceRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "urbandash_inference_requests_total",
		Help: "Total HuggingFace inference calls",
	})
	InferenceFailTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "urbandash_inference_fail_total",
		Help: "Total HuggingFace inference failures",
	})
	InferenceDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "urbandash_inference_duration_ms",
		Help:    "HuggingFace inference call duration in milliseconds",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
	})
)

func init() {
	prometheus.MustRegister(QueriesTotal)
	prometheus.MustRegister(EmptyFiltersTotal)
	prometheus.MustRegister(QueryDurationMs)
	prometheus.MustRegister(InferenceRequestsTotal)
	prometheus.MustRegister(InferenceFailTotal)
	prometheus.MustRegister(InferenceDurationMs)
}

// Handler exposes the registered metrics for Prometheus scraping; mounted
// at /metrics by the server entrypoint.
func Handler() http.Handler { return promhttp.Handler() }
