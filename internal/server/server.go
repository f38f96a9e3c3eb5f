// Package server serves the DevDock site over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/justtnz/devdock-site/internal/metrics"
	"github.com/justtnz/devdock-site/internal/site"
)

// Server is the site's HTTP server.
type Server struct {
	site    *site.Site
	addr    string
	version string
	log     *slog.Logger

	// nil when metrics are disabled
	metrics *metrics.Metrics

	mu         sync.Mutex
	httpServer *http.Server
	listener   net.Listener
	done       chan struct{}
	serveErr   error
}

// New creates a server for s that will listen on addr.
func New(s *site.Site, addr, version string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{site: s, addr: addr, version: version, log: log}
}

// SetInstrumentation enables request metrics and the /metrics endpoint.
// Must be called before Start or Handler. m may be nil.
func (s *Server) SetInstrumentation(m *metrics.Metrics) {
	s.metrics = m
}

// Handler returns the fully wrapped handler: request ids, logging, metrics,
// then routing.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.registerRoutes(mux)
	return WithRequestID(LogRequests(InstrumentHandler(mux, s.metrics), s.log))
}

// Start binds the listener and serves in a background goroutine. It
// returns once the socket is bound.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.httpServer != nil {
		return ErrAlreadyStarted
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.listener = ln
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("http server error", "error", err)
			s.serveErr = err
		}
	}()

	s.log.Info("site listening", "addr", ln.Addr().String())
	return nil
}

// Done is closed once the server stops serving, whether through Stop or a
// listener failure. It is nil before Start.
func (s *Server) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Err returns the error that ended serving, or nil after a clean Stop.
// Only valid once Done is closed.
func (s *Server) Err() error {
	return s.serveErr
}

// Addr is the bound address, useful when listening on port 0.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

// Stop drains in-flight requests until ctx expires, then closes the
// listener.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv, done := s.httpServer, s.done
	s.mu.Unlock()
	if srv == nil {
		return ErrNotStarted
	}

	s.log.Info("site shutting down")
	err := srv.Shutdown(ctx)
	if err != nil {
		srv.Close()
	}
	<-done
	s.log.Info("site stopped")
	return err
}
