// Package server is the HTTP transport over the query engine.
//
// It is a thin collaborator: it invokes search, maps error classifications
// to status codes, and relays payloads verbatim. The retryable not-ready
// classification maps to 503 so early callers know to come back.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/lineseek/lineseek/internal/errors"
	"github.com/lineseek/lineseek/internal/pipeline"
	"github.com/lineseek/lineseek/internal/search"
)

// SearchResponse is the success payload of the search endpoint.
type SearchResponse struct {
	Results []search.Result `json:"results"`
}

// Server serves search queries over HTTP.
type Server struct {
	engine   *search.Engine
	opts     search.Options
	progress *pipeline.Progress
	verbose  bool
	logger   *slog.Logger
	httpSrv  *http.Server
}

// New creates the HTTP server. opts carries the configured field weights and
// result limit applied to every query; verbose gates error payload details.
func New(addr string, engine *search.Engine, opts search.Options, progress *pipeline.Progress, verbose bool, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		engine:   engine,
		opts:     opts,
		progress: progress,
		verbose:  verbose,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/search", s.handleSearch)
	r.Get("/status", s.handleStatus)

	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// ListenAndServe blocks serving requests until Shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("http_listening", slog.String("addr", s.httpSrv.Addr))
	err := s.httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	results, err := s.engine.Search(r.Context(), query, s.opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if results == nil {
		results = []search.Result{}
	}
	s.writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.progress.Snapshot())
}

// writeError maps an error classification to an HTTP status and writes the
// caller-facing payload.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeNotReady:
		status = http.StatusServiceUnavailable
		w.Header().Set("Retry-After", "1")
	case apperrors.ErrCodeQueryEmpty, apperrors.ErrCodeInvalidQuery:
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("search_failed",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("error", err.Error()))
	}

	s.writeJSON(w, status, apperrors.Payload(err, s.verbose))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response_encode_failed", slog.String("error", err.Error()))
	}
}
