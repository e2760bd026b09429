// Package server exposes the match pipeline over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jonathan/job-match-agent/internal/types"
)

// MatchRunner executes one pipeline run. Satisfied by *pipeline.Runner.
type MatchRunner interface {
	Run(ctx context.Context, resumeText, jobQuery string) *types.MatchReport
}

// Config holds server settings.
type Config struct {
	Port int

	// ReadTimeout bounds request reading; zero means 30s.
	ReadTimeout time.Duration
}

// Server wraps an http.Server around a pipeline runner.
type Server struct {
	runner MatchRunner
	http   *http.Server
}

// New creates a server. The pipeline budget itself bounds run latency, so
// no per-request write timeout is set beyond it.
func New(runner MatchRunner, cfg Config) *Server {
	s := &Server{runner: runner}

	readTimeout := cfg.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 30 * time.Second
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /match", s.handleMatch)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.http = &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Port),
		Handler:     mux,
		ReadTimeout: readTimeout,
	}
	return s
}

// ListenAndServe starts serving and blocks until the server stops.
func (s *Server) ListenAndServe() error {
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the route table for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}
