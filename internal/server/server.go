package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"fjacquet/pacs2mt/internal/config"
	"fjacquet/pacs2mt/internal/logging"
)

// ShutdownTimeout bounds the graceful shutdown.
const ShutdownTimeout = 10 * time.Second

// Server is the HTTP front end of the converter.
type Server struct {
	httpServer *http.Server
	logger     logging.Logger
}

// NewServer builds a Server from the server configuration section.
func NewServer(cfg config.ServerConfig, processor Processor, logger logging.Logger, version string) *Server {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	h := NewHandler(processor, logger, cfg.MaxBodyBytes, version)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           NewRouter(h, logger, cfg.RequestTimeout()),
			ReadHeaderTimeout: cfg.ReadHeaderTimeout(),
		},
		logger: logger,
	}
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening", logging.F(logging.FieldAddress, ln.Addr().String()))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("Server stopped")
	return nil
}
