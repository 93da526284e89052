// Package metrics exposes Prometheus collectors for the function endpoints.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "faas"

// FunctionMetrics holds the collectors shared by the HTTP layer and the quote cache.
type FunctionMetrics struct {
	registry *prometheus.Registry

	Requests   *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
	QuoteCache *prometheus.CounterVec
}

// New registers the collectors on a fresh registry, together with the Go and process collectors.
func New() *FunctionMetrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &FunctionMetrics{
		registry: reg,
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		QuoteCache: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_cache_lookups_total",
			Help:      "Quote cache lookups by result (hit or miss).",
		}, []string{"result"}),
	}
}

// Registry returns the registry the collectors live in.
func (m *FunctionMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordCacheResult counts one quote cache lookup.
func (m *FunctionMetrics) RecordCacheResult(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.QuoteCache.WithLabelValues(result).Inc()
}

// Middleware records request count and latency per matched route.
// Unmatched paths are grouped under "unmatched" to bound label cardinality.
func (m *FunctionMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.Requests.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		m.Duration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *FunctionMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
