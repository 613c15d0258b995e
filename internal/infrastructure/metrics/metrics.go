// Package metrics exposes Prometheus collectors for the HTTP API and the
// minutes exporter.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors registered for one process
type Metrics struct {
	gatherer prometheus.Gatherer

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	exportsTotal        *prometheus.CounterVec
	exportDuration      *prometheus.HistogramVec
	exportPages         prometheus.Histogram
}

// New registers the collectors on a fresh registry
func New() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry())
}

// NewWithRegistry registers the collectors on reg
func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		gatherer: reg,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notulensi_http_requests_total",
				Help: "Total HTTP requests served",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "notulensi_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		exportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notulensi_exports_total",
				Help: "Minutes exports by locale and outcome",
			},
			[]string{"locale", "outcome"},
		),
		exportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "notulensi_export_duration_seconds",
				Help:    "Time spent laying out and rendering minutes",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"locale"},
		),
		exportPages: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "notulensi_export_pages",
				Help:    "Pages per exported document",
				Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
			},
		),
	}
}

// ObserveExport records one export attempt
func (m *Metrics) ObserveExport(locale, outcome string, pages int, elapsed time.Duration) {
	m.exportsTotal.WithLabelValues(locale, outcome).Inc()
	m.exportDuration.WithLabelValues(locale).Observe(elapsed.Seconds())
	if pages > 0 {
		m.exportPages.Observe(float64(pages))
	}
}

// Middleware counts requests and their latency. Paths are labelled with the
// route template so ids do not blow up cardinality.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else if !c.Response().Committed {
					status = http.StatusInternalServerError
				}
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}

			m.httpRequestsTotal.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
			m.httpRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
