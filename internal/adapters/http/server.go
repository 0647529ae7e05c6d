// Package http exposes registered variables as live inspection snapshots
// over a small debug endpoint, expvar-style. Every request runs a fresh
// traversal; nothing is stored.
package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"sync"

	"github.com/aretw0/figure/pkg/inspect"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Exposer is the set of variables the debug endpoint serves. Values are
// held by reference; each request inspects the current state.
type Exposer struct {
	mu   sync.RWMutex
	vars map[string]exposedVar
}

type exposedVar struct {
	value any
	opts  inspect.Options
}

// NewExposer creates an empty variable set.
func NewExposer() *Exposer {
	return &Exposer{vars: make(map[string]exposedVar)}
}

// Expose registers a variable under the given name with default options.
// Re-exposing a name replaces the previous value.
func (e *Exposer) Expose(name string, v any) {
	e.ExposeWith(name, v, inspect.Options{})
}

// ExposeWith registers a variable with per-variable inspection options.
func (e *Exposer) ExposeWith(name string, v any, opts inspect.Options) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vars[name] = exposedVar{value: v, opts: opts}
}

// Names returns the registered variable names, sorted.
func (e *Exposer) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Exposer) lookup(name string) (exposedVar, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.vars[name]
	return v, ok
}

// Server wires the exposer to the router.
type Server struct {
	exposer     *Exposer
	logger      *slog.Logger
	inspections *prometheus.CounterVec
}

// NewHandler creates the debug endpoint:
//
//	GET /vars          variable names
//	GET /vars/{name}   fresh JSON snapshot of one variable
//	GET /metrics       prometheus metrics
func NewHandler(exposer *Exposer, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	inspections := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "figure_inspections_total",
			Help: "Total number of inspections served, by outcome",
		},
		[]string{"outcome"},
	)
	promReg := prometheus.NewRegistry()
	promReg.MustRegister(inspections)

	s := &Server{exposer: exposer, logger: logger, inspections: inspections}

	r := chi.NewRouter()
	r.Get("/vars", s.listVars)
	r.Get("/vars/{name}", s.getVar)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) listVars(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.exposer.Names()); err != nil {
		s.logger.Error("encode variable list", "err", err)
	}
}

func (s *Server) getVar(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	exposed, ok := s.exposer.lookup(name)
	if !ok {
		http.Error(w, fmt.Sprintf("unknown variable: %s", name), http.StatusNotFound)
		return
	}

	opts := exposed.opts
	if opts.Logger == nil {
		opts.Logger = s.logger
	}
	node := inspect.Inspect(exposed.value, name, opts)

	outcome := "ok"
	status := http.StatusOK
	if node.Failed() {
		outcome = "error"
		status = http.StatusInternalServerError
	}
	s.inspections.WithLabelValues(outcome).Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(node); err != nil {
		s.logger.Error("encode snapshot", "variable", name, "err", err)
	}
}
