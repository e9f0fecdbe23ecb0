package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lattice-dev/lattice/pkg/modal"
	"github.com/lattice-dev/lattice/pkg/state"
)

// NewHandler creates the debug HTTP handler exposing the session snapshot,
// the modal controller state and Prometheus metrics. Intended for local
// inspection, not for public exposure.
func NewHandler(container *state.Container, modals *modal.Controller, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/debug/session", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, container.Session())
	})

	r.Get("/debug/sandbox", func(w http.ResponseWriter, req *http.Request) {
		sb := container.Sandbox()
		if sb == nil {
			http.Error(w, "no active sandbox", http.StatusNotFound)
			return
		}
		writeJSON(w, sb)
	})

	r.Get("/debug/modal", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, modals.Snapshot())
	})

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
