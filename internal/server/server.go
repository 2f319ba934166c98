// Package server provides the HTTP API for Vekta.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hyperjump/vekta/internal/config"
	"github.com/hyperjump/vekta/internal/explorer"
)

// Server is the HTTP server for the Vekta API. It is a thin adapter: all
// state lives in the explorer and its store.
type Server struct {
	explorer *explorer.Explorer
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(exp *explorer.Explorer, cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		explorer: exp,
		config:   cfg,
		logger:   logger,
	}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/v1/records", s.handleAddRecord)
	r.Get("/api/v1/records", s.handleListRecords)
	r.Get("/api/v1/records/search", s.handleSearchRecords)
	r.Get("/api/v1/records/{id}", s.handleGetRecord)
	r.Delete("/api/v1/records/{id}", s.handleDeleteRecord)
	r.Post("/api/v1/reset", s.handleReset)
	r.Post("/api/v1/samples", s.handleLoadSamples)
	r.Post("/api/v1/selection", s.handleSelect)
	r.Delete("/api/v1/selection", s.handleClearSelection)
	r.Put("/api/v1/metric", s.handleSetMetric)
	r.Get("/api/v1/rankings", s.handleRankings)
	r.Post("/api/v1/import", s.handleImport)
	r.Get("/api/v1/status", s.handleStatus)
	r.Get("/health", s.handleHealth)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
