// Package metrics exposes Prometheus instrumentation for the client-state
// layer: bootstrap timing, login branch outcomes, modal lifecycle and fork
// attempts.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Set holds the collectors. A nil *Set is valid and records nothing, so
// callers never need to guard instrumentation sites.
type Set struct {
	bootstrapDuration prometheus.Histogram
	loginOutcomes     *prometheus.CounterVec
	modalEvents       *prometheus.CounterVec
	forkAttempts      *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Set {
	s := &Set{
		bootstrapDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lattice",
			Name:      "bootstrap_duration_seconds",
			Help:      "Wall time of the one-time app bootstrap.",
			Buckets:   prometheus.DefBuckets,
		}),
		loginOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lattice",
			Name:      "bootstrap_login_total",
			Help:      "Bootstrap login branch outcomes.",
		}, []string{"outcome"}),
		modalEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lattice",
			Name:      "modal_events_total",
			Help:      "Modal lifecycle events.",
		}, []string{"modal", "event"}),
		forkAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lattice",
			Name:      "fork_attempts_total",
			Help:      "Sandbox fork attempts by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(s.bootstrapDuration, s.loginOutcomes, s.modalEvents, s.forkAttempts)
	return s
}

// ObserveBootstrap records the bootstrap duration.
func (s *Set) ObserveBootstrap(d time.Duration) {
	if s == nil {
		return
	}
	s.bootstrapDuration.Observe(d.Seconds())
}

// LoginOutcome counts a login branch result: "user", "anonymous" or "error".
func (s *Set) LoginOutcome(outcome string) {
	if s == nil {
		return
	}
	s.loginOutcomes.WithLabelValues(outcome).Inc()
}

// ForkAttempt counts a fork attempt.
func (s *Set) ForkAttempt(ok bool) {
	if s == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	s.forkAttempts.WithLabelValues(result).Inc()
}

// ModalOpened implements modal.Observer.
func (s *Set) ModalOpened(name string) { s.modalEvent(name, "opened") }

// ModalClosed implements modal.Observer.
func (s *Set) ModalClosed(name string) { s.modalEvent(name, "closed") }

// ModalSuperseded implements modal.Observer.
func (s *Set) ModalSuperseded(name string) { s.modalEvent(name, "superseded") }

func (s *Set) modalEvent(name, event string) {
	if s == nil {
		return
	}
	s.modalEvents.WithLabelValues(name, event).Inc()
}
