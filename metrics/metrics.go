package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics records listing traffic.
type Metrics struct {
	registry       *prometheus.Registry
	requests       *prometheus.CounterVec
	results        *prometheus.HistogramVec
	providerErrors *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}
	m.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "devhub",
		Name:      "listing_requests_total",
		Help:      "Listing requests by page and scope",
	}, []string{"listing", "scope"})
	m.results = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "devhub",
		Name:      "listing_results",
		Help:      "Number of records returned per listing request",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
	}, []string{"listing"})
	m.providerErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "devhub",
		Name:      "provider_errors_total",
		Help:      "Failures fetching a collection from its provider",
	}, []string{"listing"})
	m.registry.MustRegister(m.requests, m.results, m.providerErrors)
	return m
}

func (m *Metrics) ObserveListing(listing, scope string, results int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(listing, scope).Inc()
	m.results.WithLabelValues(listing).Observe(float64(results))
}

func (m *Metrics) ProviderError(listing string) {
	if m == nil {
		return
	}
	m.providerErrors.WithLabelValues(listing).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
