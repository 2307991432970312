// Package web serves a read-only HTTP viewer for a collected expression
// graph: an HTML page that renders the Mermaid view in the browser, plain
// endpoints for the DOT/Mermaid/JSON exports, and Prometheus metrics.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/tendril"
	"github.com/aretw0/tendril/internal/logging"
	"github.com/aretw0/tendril/internal/presentation/graph"
)

// Server holds the graph view being served and its instrumentation. The view
// is a snapshot: gradients shown are the ones captured when the view was
// collected, not live engine state.
type Server struct {
	view    *graph.View
	opts    *graph.Options
	logger  *slog.Logger
	renders *prometheus.CounterVec
	metrics http.Handler
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the logger used for request-level diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRenderOptions sets the options shared by the DOT and Mermaid endpoints.
func WithRenderOptions(opts *graph.Options) Option {
	return func(s *Server) {
		s.opts = opts
	}
}

// NewHandler creates an HTTP handler serving the given graph view.
//
// Every handler owns a private Prometheus registry, so multiple viewers can
// coexist in one process without collector collisions.
func NewHandler(view *graph.View, opts ...Option) http.Handler {
	server := &Server{
		view:   view,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(server)
	}

	registry := prometheus.NewRegistry()
	server.renders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tendril_graph_renders_total",
			Help: "Total number of graph renderings served, by format.",
		},
		[]string{"format"},
	)
	nodes := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tendril_graph_nodes",
		Help: "Number of nodes in the served graph.",
	})
	edges := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tendril_graph_edges",
		Help: "Number of edges in the served graph.",
	})
	registry.MustRegister(server.renders, nodes, edges)
	nodes.Set(float64(len(view.Nodes)))
	edges.Set(float64(len(view.Edges)))
	server.metrics = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	r := chi.NewRouter()
	r.Get("/", server.getViewer)
	r.Get("/api/graph", server.getGraphJSON)
	r.Get("/graph.dot", server.getGraphDOT)
	r.Get("/graph.mmd", server.getGraphMermaid)
	r.Get("/health", server.getHealth)
	r.Get("/info", server.getInfo)
	r.Get("/metrics", server.metrics.ServeHTTP)

	return r
}

// getViewer serves the embedded viewer page.
func (s *Server) getViewer(w http.ResponseWriter, r *http.Request) {
	s.renders.WithLabelValues("html").Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(viewerHTML))
}

// getGraphJSON serves the node/edge view as indented JSON.
func (s *Server) getGraphJSON(w http.ResponseWriter, r *http.Request) {
	out, err := graph.ExportJSON(s.view)
	if err != nil {
		http.Error(w, "Failed to encode graph", http.StatusInternalServerError)
		return
	}
	s.renders.WithLabelValues("json").Inc()
	w.Header().Set("Content-Type", "application/json")
	w.Write(out)
}

// getGraphDOT serves the Graphviz rendering.
func (s *Server) getGraphDOT(w http.ResponseWriter, r *http.Request) {
	s.renders.WithLabelValues("dot").Inc()
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	w.Write([]byte(graph.GenerateDOT(s.view, s.opts)))
}

// getGraphMermaid serves the Mermaid rendering consumed by the viewer page.
func (s *Server) getGraphMermaid(w http.ResponseWriter, r *http.Request) {
	s.renders.WithLabelValues("mermaid").Inc()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(graph.GenerateMermaid(s.view, s.opts)))
}

// getHealth handles the GET /health request.
func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		s.logger.Error("health encode error", "error", err)
	}
}

// getInfo handles the GET /info request.
func (s *Server) getInfo(w http.ResponseWriter, r *http.Request) {
	info := map[string]any{
		"app":         "tendril-web",
		"version":     strings.TrimSpace(tendril.Version),
		"api_version": "0.1.0",
		"nodes":       len(s.view.Nodes),
		"edges":       len(s.view.Edges),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(info); err != nil {
		s.logger.Error("info encode error", "error", err)
	}
}
