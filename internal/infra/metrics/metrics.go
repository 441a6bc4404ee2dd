// Package metrics exposes the authentication counters on a dedicated Prometheus registry.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sugarrush"

// AuthMetrics holds the counters of the session lifecycle. It implements usecase.AuthMetrics.
type AuthMetrics struct {
	registry            *prometheus.Registry
	logins              *prometheus.CounterVec
	verifications       *prometheus.CounterVec
	logouts             *prometheus.CounterVec
	upstreamRevocations *prometheus.CounterVec
}

// New registers the counters plus Go runtime and process collectors.
func New() *AuthMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &AuthMetrics{
		registry: registry,
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Google logins by result.",
		}, []string{"result"}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "verifications_total",
			Help:      "Session token verifications by result.",
		}, []string{"result"}),
		logouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "logouts_total",
			Help:      "Successful logouts, split by whether a revocation record was written.",
		}, []string{"blacklisted"}),
		upstreamRevocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "upstream_revocations_total",
			Help:      "Google token revocations by result.",
		}, []string{"result"}),
	}

	registry.MustRegister(m.logins, m.verifications, m.logouts, m.upstreamRevocations)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *AuthMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *AuthMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *AuthMetrics) Login(result string) {
	m.logins.WithLabelValues(result).Inc()
}

func (m *AuthMetrics) Verification(result string) {
	m.verifications.WithLabelValues(result).Inc()
}

func (m *AuthMetrics) Logout(blacklisted bool) {
	m.logouts.WithLabelValues(strconv.FormatBool(blacklisted)).Inc()
}

func (m *AuthMetrics) UpstreamRevocation(result string) {
	m.upstreamRevocations.WithLabelValues(result).Inc()
}
