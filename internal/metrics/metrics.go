package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "linkshelf"

// Reload results.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics groups the collectors of the service on a dedicated registry.
// All methods are safe on a nil receiver.
type Metrics struct {
	registry *prometheus.Registry

	pageRenders    prometheus.Counter
	renderErrors   prometheus.Counter
	themeToggles   *prometheus.CounterVec
	contentReloads *prometheus.CounterVec
	categories     prometheus.Gauge
	resources      prometheus.Gauge
	preferences    *prometheus.GaugeVec
}

// New registers every collector, plus the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		pageRenders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Pages rendered successfully.",
		}),
		renderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_errors_total",
			Help:      "Page renders that failed.",
		}),
		themeToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "theme_toggles_total",
			Help:      "Theme toggles by resulting mode.",
		}, []string{"mode"}),
		contentReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_reloads_total",
			Help:      "Content store reloads by result.",
		}, []string{"result"}),
		categories: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "categories",
			Help:      "Categories in the served snapshot.",
		}),
		resources: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "resources",
			Help:      "Resources across all categories of the served snapshot.",
		}),
		preferences: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "theme_preferences",
			Help:      "Visitors with a mirrored theme preference, by mode.",
		}, []string{"mode"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.pageRenders,
		m.renderErrors,
		m.themeToggles,
		m.contentReloads,
		m.categories,
		m.resources,
		m.preferences,
	)

	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRender counts a page render, or a failed one when err is set.
func (m *Metrics) ObserveRender(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.renderErrors.Inc()
		return
	}
	m.pageRenders.Inc()
}

// ObserveToggle counts a toggle ending in mode.
func (m *Metrics) ObserveToggle(mode string) {
	if m == nil {
		return
	}
	m.themeToggles.WithLabelValues(mode).Inc()
}

// ObserveReload counts a reload. On success the snapshot gauges are set.
func (m *Metrics) ObserveReload(err error, categories, resources int) {
	if m == nil {
		return
	}
	if err != nil {
		m.contentReloads.WithLabelValues(ResultFailure).Inc()
		return
	}
	m.contentReloads.WithLabelValues(ResultSuccess).Inc()
	m.categories.Set(float64(categories))
	m.resources.Set(float64(resources))
}

// SetPreferences publishes stored preference counts by mode.
func (m *Metrics) SetPreferences(counts map[string]int) {
	if m == nil {
		return
	}
	for mode, n := range counts {
		m.preferences.WithLabelValues(mode).Set(float64(n))
	}
}
