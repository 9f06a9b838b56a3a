// Package metrics collects Prometheus metrics for the API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OperationLogin        = "login"
	OperationRegister     = "register"
	OperationAuthenticate = "authenticate"
)

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected" // refused because of the request
	OutcomeFailed   = "failed"   // refused because of the server
)

type Metrics struct {
	registry   *prometheus.Registry
	handler    http.Handler
	authEvents *prometheus.CounterVec
	uploads    *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	authEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orpheo_auth_events_total",
		Help: "Authentication attempts by operation and outcome.",
	}, []string{"operation", "outcome"})
	uploads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orpheo_document_uploads_total",
		Help: "Document uploads by outcome.",
	}, []string{"outcome"})
	registry.MustRegister(authEvents, uploads, collectors.NewGoCollector())

	return &Metrics{
		registry:   registry,
		handler:    promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		authEvents: authEvents,
		uploads:    uploads,
	}
}

// Handler serves the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

func (m *Metrics) AuthEvent(operation, outcome string) {
	if m == nil {
		return
	}
	m.authEvents.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) Upload(outcome string) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(outcome).Inc()
}
