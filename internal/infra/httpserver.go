package infra

import (
	"context"
	"net/http"
	"time"
)

// HTTPServer wraps http.Server with this service's configured timeouts. The
// write timeout is set independently of the read timeout because a transform
// response waits on a full Gemini round trip.
type HTTPServer struct {
	server        *http.Server
	shutdownGrace time.Duration
}

// NewHTTPServer creates a server bound to the configured port.
func NewHTTPServer(cfg *Config, handler http.Handler) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadTimeout:       cfg.HTTPReadTimeout,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      cfg.HTTPWriteTimeout,
			IdleTimeout:       cfg.HTTPIdleTimeout,
		},
		shutdownGrace: cfg.HTTPWriteTimeout,
	}
}

// Start runs ListenAndServe in the calling goroutine.
func (s *HTTPServer) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown stops accepting connections and drains in-flight requests,
// waiting up to the write timeout so a running transform can finish.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.shutdownGrace)
	defer cancel()
	return s.server.Shutdown(ctx)
}
