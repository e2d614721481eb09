// Package observability holds the Prometheus collectors for the roster.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for roster operations.
const (
	OutcomeSuccess           = "success"
	OutcomeNotFound          = "not_found"
	OutcomeAlreadyRegistered = "already_registered"
	OutcomeNotRegistered     = "not_registered"
	OutcomeCapacityExceeded  = "capacity_exceeded"
	OutcomeInvalidEmail      = "invalid_email"
	OutcomeError             = "error"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mergington",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Number of signup attempts grouped by outcome.",
	}, []string{"outcome"})

	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mergington",
		Subsystem: "roster",
		Name:      "unregistrations_total",
		Help:      "Number of unregister attempts grouped by outcome.",
	}, []string{"outcome"})

	participantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "mergington",
		Subsystem: "roster",
		Name:      "participants",
		Help:      "Current number of participants per activity.",
	}, []string{"activity"})

	capacityGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "mergington",
		Subsystem: "roster",
		Name:      "capacity",
		Help:      "Maximum number of participants per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, participantsGauge, capacityGauge)
}

// RecordSignup counts a signup attempt.
func RecordSignup(outcome string) {
	signupCounter.WithLabelValues(outcome).Inc()
}

// RecordUnregister counts an unregister attempt.
func RecordUnregister(outcome string) {
	unregisterCounter.WithLabelValues(outcome).Inc()
}

// SetRoster publishes the participant count and capacity of one activity.
func SetRoster(activity string, participants, capacity int) {
	participantsGauge.WithLabelValues(activity).Set(float64(participants))
	capacityGauge.WithLabelValues(activity).Set(float64(capacity))
}
