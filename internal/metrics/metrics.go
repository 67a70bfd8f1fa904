package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orgdir_http_requests_total",
		Help: "Total number of HTTP requests by route and status",
	}, []string{"method", "route", "status"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "orgdir_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"method", "route"})
	RadiusCandidatesScanned = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "orgdir_radius_candidates_scanned",
		Help:    "Number of organizations scanned per radius search",
		Buckets: []float64{10, 100, 1000, 10000, 100000},
	})
	DescendantCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orgdir_descendant_cache_hits_total",
		Help: "Total activity descendant cache hits",
	})
	DescendantCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orgdir_descendant_cache_misses_total",
		Help: "Total activity descendant cache misses",
	})
	DescendantCacheErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orgdir_descendant_cache_errors_total",
		Help: "Total activity descendant cache failures by operation",
	}, []string{"op"})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
	prometheus.MustRegister(RadiusCandidatesScanned)
	prometheus.MustRegister(DescendantCacheHitsTotal)
	prometheus.MustRegister(DescendantCacheMissesTotal)
	prometheus.MustRegister(DescendantCacheErrorsTotal)
}

// Handler exposes the default registry in the Prometheus text format
func Handler() http.Handler { return promhttp.Handler() }
