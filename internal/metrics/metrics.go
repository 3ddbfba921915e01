// Package metrics holds the Prometheus collectors for admissions,
// registrations and service-request updates.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "campus"

// Metrics groups the engine collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	eventsAdmitted       *prometheus.CounterVec
	eventsRejected       *prometheus.CounterVec
	registrations        *prometheus.CounterVec
	requestsRaised       prometheus.Counter
	requestStatusUpdates *prometheus.CounterVec
}

// New creates the collectors and registers them on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		eventsAdmitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_admitted_total",
				Help:      "Count of events admitted, by validity.",
			},
			[]string{"validity"},
		),
		eventsRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_rejected_total",
				Help:      "Count of event submissions refused before admission, by reason.",
			},
			[]string{"reason"},
		),
		registrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "registrations_total",
				Help:      "Count of new registrations, by assigned status.",
			},
			[]string{"status"},
		),
		requestsRaised: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "service_requests_raised_total",
				Help:      "Count of service requests raised.",
			},
		),
		requestStatusUpdates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "service_request_status_updates_total",
				Help:      "Count of service request status changes, by target status.",
			},
			[]string{"status"},
		),
	}
	m.registry.MustRegister(
		m.eventsAdmitted,
		m.eventsRejected,
		m.registrations,
		m.requestsRaised,
		m.requestStatusUpdates,
		collectors.NewGoCollector(),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordEventAdmitted counts an admitted event.
func (m *Metrics) RecordEventAdmitted(valid bool) {
	if m == nil {
		return
	}
	label := "valid"
	if !valid {
		label = "invalid"
	}
	m.eventsAdmitted.WithLabelValues(label).Inc()
}

// RecordEventRejected counts a submission refused for bad input.
func (m *Metrics) RecordEventRejected(reason string) {
	if m == nil {
		return
	}
	m.eventsRejected.WithLabelValues(reason).Inc()
}

// RecordRegistration counts a newly created registration.
func (m *Metrics) RecordRegistration(status string) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(status).Inc()
}

// RecordRequestRaised counts a raised service request.
func (m *Metrics) RecordRequestRaised() {
	if m == nil {
		return
	}
	m.requestsRaised.Inc()
}

// RecordStatusUpdate counts a successful service request status change.
func (m *Metrics) RecordStatusUpdate(status string) {
	if m == nil {
		return
	}
	m.requestStatusUpdates.WithLabelValues(status).Inc()
}
