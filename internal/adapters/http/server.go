// Package http serves rendered diagrams and state templates over HTTP,
// for teams that want flow documentation on demand instead of committed
// Markdown.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/studiomap/internal/adapters/twilio"
	"github.com/aretw0/studiomap/internal/logging"
	"github.com/aretw0/studiomap/pkg/flow"
)

// Generator defines the pipeline surface the server needs.
type Generator interface {
	Generate(def *flow.Definition, trigger flow.TriggerType, names map[string]string) (string, error)
	StatesTemplate(def *flow.Definition, trigger flow.TriggerType) (map[string]string, error)
}

// Server exposes flow diagrams over HTTP.
type Server struct {
	source    twilio.Source
	generator Generator
	logger    *slog.Logger
}

// NewHandler creates the HTTP handler.
func NewHandler(source twilio.Source, generator Generator, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{source: source, generator: generator, logger: logger}

	r := chi.NewRouter()
	r.Get("/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/flows/{sid}/diagram", s.diagram)
	r.Get("/flows/{sid}/states", s.states)
	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// fetch resolves the flow definition and records fetch duration.
func (s *Server) fetch(r *http.Request, sid string) (*flow.Definition, error) {
	start := time.Now()
	def, err := s.source.FetchDefinition(r.Context(), sid)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	fetchDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	return def, err
}

func (s *Server) diagram(w http.ResponseWriter, r *http.Request) {
	sid := chi.URLParam(r, "sid")

	trigger, err := flow.ParseTriggerType(r.URL.Query().Get("trigger"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	def, err := s.fetch(r, sid)
	if err != nil {
		s.logger.Error("flow fetch failed", "sid", sid, "error", err)
		http.Error(w, fmt.Sprintf("fetch flow: %v", err), http.StatusBadGateway)
		return
	}

	diagram, err := s.generator.Generate(def, trigger, nil)
	if err != nil {
		if errors.Is(err, flow.ErrUnknownTrigger) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("render diagram: %v", err), http.StatusInternalServerError)
		return
	}

	rendersTotal.WithLabelValues(trigger.String()).Inc()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(diagram))
}

func (s *Server) states(w http.ResponseWriter, r *http.Request) {
	sid := chi.URLParam(r, "sid")

	trigger, err := flow.ParseTriggerType(r.URL.Query().Get("trigger"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	def, err := s.fetch(r, sid)
	if err != nil {
		s.logger.Error("flow fetch failed", "sid", sid, "error", err)
		http.Error(w, fmt.Sprintf("fetch flow: %v", err), http.StatusBadGateway)
		return
	}

	template, err := s.generator.StatesTemplate(def, trigger)
	if err != nil {
		if errors.Is(err, flow.ErrUnknownTrigger) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("list states: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(template)
}
