// Package metrics exposes Prometheus metrics for the registration service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
// Each instance owns its registry so several servers can live in one process.
type Metrics struct {
	registry      *prometheus.Registry
	Registrations *prometheus.CounterVec
	StoredUsers   prometheus.Gauge
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		Registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "registration_attempts_total",
			Help: "Registration attempts by outcome (accepted or validation code)",
		}, []string{"outcome"}),
		StoredUsers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "registration_stored_users",
			Help: "Number of records in the stored user list",
		}),
	}
	reg.MustRegister(m.Registrations, m.StoredUsers)
	return m
}

// ObserveRegistration increments the attempts counter for outcome.
func (m *Metrics) ObserveRegistration(outcome string) {
	m.Registrations.WithLabelValues(outcome).Inc()
}

// SetStoredUsers records the size of the stored list.
func (m *Metrics) SetStoredUsers(n int) {
	m.StoredUsers.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
