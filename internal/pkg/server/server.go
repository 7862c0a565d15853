package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/evoting/internal/pkg/logger"
)

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo            *echo.Echo
	port            int
	shutdownTimeout time.Duration
	cleanup         []func(context.Context) error
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, port int, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	return &GracefulServer{
		echo:            e,
		port:            port,
		shutdownTimeout: shutdownTimeout,
	}
}

// OnShutdown registers a cleanup function run after the HTTP server stops
func (s *GracefulServer) OnShutdown(fn func(context.Context) error) {
	s.cleanup = append(s.cleanup, fn)
}

// Start serves until SIGINT or SIGTERM and then shuts down
func (s *GracefulServer) Start() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	return s.Run(quit)
}

// Run serves until a value arrives on stop or the listener fails
func (s *GracefulServer) Run(stop <-chan os.Signal) error {
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		logger.Info("Starting HTTP server", logger.String("address", addr))
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case sig := <-stop:
		logger.Info("Received shutdown signal", logger.String("signal", sig.String()))
	}

	return s.Shutdown()
}

// Shutdown stops the HTTP server and then runs cleanup functions
func (s *GracefulServer) Shutdown() error {
	logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.echo.Shutdown(ctx)
	if err != nil {
		logger.Error("Server forced to shutdown", logger.Err(err))
	}

	for i, fn := range s.cleanup {
		if cerr := fn(ctx); cerr != nil {
			logger.Error("Error during component shutdown",
				logger.Int("component", i),
				logger.Err(cerr))
		}
	}

	logger.Info("Server shutdown completed")
	return err
}
