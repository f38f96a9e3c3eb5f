// Package metrics holds the site's Prometheus collectors.
//
// All recording methods are nil-safe: a nil *Metrics records nothing, so
// callers never branch on whether metrics are enabled.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics uses an isolated registry so each server (and each test) has its
// own collectors.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequestsTotal          *prometheus.CounterVec
	HTTPRequestDurationSeconds *prometheus.HistogramVec

	DocViewsTotal    *prometheus.CounterVec
	DocNotFoundTotal prometheus.Counter

	ReleaseFetchTotal           *prometheus.CounterVec
	ReleaseFetchDurationSeconds *prometheus.HistogramVec
	ReleaseCacheHitsTotal       *prometheus.CounterVec

	BuildInfo *prometheus.GaugeVec
}

// New creates and registers every collector. version and goVersion label
// the devdock_site_info gauge.
func New(version, goVersion string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		Registry: reg,

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "devdock_site_http_requests_total",
				Help: "Total HTTP requests served, by method, route and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "devdock_site_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		DocViewsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "devdock_site_doc_views_total",
				Help: "Documentation page views by section and item.",
			},
			[]string{"section", "item"},
		),
		DocNotFoundTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "devdock_site_doc_not_found_total",
				Help: "Requests for documentation pages that are not in the catalog.",
			},
		),
		ReleaseFetchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "devdock_site_release_fetch_total",
				Help: "Upstream release API calls by endpoint and result.",
			},
			[]string{"endpoint", "result"},
		),
		ReleaseFetchDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "devdock_site_release_fetch_duration_seconds",
				Help:    "Upstream release API latency in seconds.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint"},
		),
		ReleaseCacheHitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "devdock_site_release_cache_hits_total",
				Help: "Release lookups answered from the in-memory cache.",
			},
			[]string{"endpoint"},
		),
		BuildInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "devdock_site_info",
				Help: "Build information.",
			},
			[]string{"version", "go_version"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDurationSeconds,
		m.DocViewsTotal,
		m.DocNotFoundTotal,
		m.ReleaseFetchTotal,
		m.ReleaseFetchDurationSeconds,
		m.ReleaseCacheHitsTotal,
		m.BuildInfo,
	)
	m.BuildInfo.WithLabelValues(version, goVersion).Set(1)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, path, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDurationSeconds.WithLabelValues(method, path, status).Observe(d.Seconds())
}

// DocView counts a rendered documentation page.
func (m *Metrics) DocView(section, item string) {
	if m == nil {
		return
	}
	m.DocViewsTotal.WithLabelValues(section, item).Inc()
}

// DocNotFound counts a request for a page missing from the catalog.
func (m *Metrics) DocNotFound() {
	if m == nil {
		return
	}
	m.DocNotFoundTotal.Inc()
}

// ReleaseFetch records an upstream call. result is "ok", "not_found" or "error".
func (m *Metrics) ReleaseFetch(endpoint, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.ReleaseFetchTotal.WithLabelValues(endpoint, result).Inc()
	m.ReleaseFetchDurationSeconds.WithLabelValues(endpoint).Observe(d.Seconds())
}

// ReleaseCacheHit counts a lookup served from cache.
func (m *Metrics) ReleaseCacheHit(endpoint string) {
	if m == nil {
		return
	}
	m.ReleaseCacheHitsTotal.WithLabelValues(endpoint).Inc()
}
