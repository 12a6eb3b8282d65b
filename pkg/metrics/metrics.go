package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors the HTTP presenter (L8) and the
// background prober (L0f) report to. Modelled on
// ethpandaops-beacon/metrics_health.go's constructor-and-register shape,
// narrowed to this service's two observable concerns.
type Metrics struct {
	ClassificationTotal *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
	ProbeResultsTotal   *prometheus.CounterVec
	EndpointUp          *prometheus.GaugeVec
}

// New builds and registers the collectors under namespace.
func New(namespace string) *Metrics {
	m := &Metrics{
		ClassificationTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "classification_total",
				Help:      "Total finalized-checkpoint classifications by result.",
			},
			[]string{"network", "result"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of /{network}/finalized requests.",
			},
			[]string{"network", "status"},
		),
		ProbeResultsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "probe_results_total",
				Help:      "Total background reachability probe results per endpoint.",
			},
			[]string{"endpoint", "result"},
		),
		EndpointUp: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "endpoint_up",
				Help:      "Whether the background prober currently considers an endpoint reachable.",
			},
			[]string{"endpoint"},
		),
	}

	prometheus.MustRegister(m.ClassificationTotal, m.RequestDuration, m.ProbeResultsTotal, m.EndpointUp)

	return m
}

// ObserveClassification increments the classification counter for the
// result a DisplayableResult settled into.
func (m *Metrics) ObserveClassification(network, result string) {
	m.ClassificationTotal.WithLabelValues(network, result).Inc()
}

// ObserveProbe increments the probe counter and sets the endpoint's
// current up/down gauge.
func (m *Metrics) ObserveProbe(endpoint, result string, up bool) {
	m.ProbeResultsTotal.WithLabelValues(endpoint, result).Inc()

	value := 0.0
	if up {
		value = 1.0
	}

	m.EndpointUp.WithLabelValues(endpoint).Set(value)
}
