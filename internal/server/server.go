// Package server exposes the extraction pipeline over HTTP.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/impacta-labs/fieldpoint/internal/common"
	"github.com/impacta-labs/fieldpoint/internal/export"
	"github.com/impacta-labs/fieldpoint/internal/pipeline"
)

// Server wires the pipeline service and the export service into a chi router.
type Server struct {
	pipeline     *pipeline.Service
	export       *export.Service
	logger       *zap.Logger
	maxBodyBytes int64
}

func New(p *pipeline.Service, exp *export.Service, logger *zap.Logger, cfg common.ServerConfig) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		pipeline:     p,
		export:       exp,
		logger:       logger,
		maxBodyBytes: cfg.MaxBodyBytes,
	}
}

// Router builds the HTTP surface.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/extractions/text", s.handleExtractText)
		r.Post("/extractions/image", s.handleExtractImage)
		r.Post("/analysis", s.handleAnalyze)
		r.Post("/analysis/export", s.handleExportAnalysis)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
