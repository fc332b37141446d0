// Package server runs the HTTP servers with signal-driven graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// DefaultShutdownTimeout bounds how long in-flight requests may take to drain
const DefaultShutdownTimeout = 30 * time.Second

// GracefulServer wraps an http.Handler (an echo router or a gin engine) with graceful
// shutdown
type GracefulServer struct {
	server          *http.Server
	logger          *logger.ZapLogger
	shutdownTimeout time.Duration
	onShutdown      *ShutdownManager
}

// NewGracefulServer creates a server listening on port
func NewGracefulServer(handler http.Handler, zapLogger *logger.ZapLogger, port int) *GracefulServer {
	if e, ok := handler.(*echo.Echo); ok {
		e.HideBanner = true
		e.HidePort = true
	}
	return &GracefulServer{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger:          zapLogger,
		shutdownTimeout: DefaultShutdownTimeout,
	}
}

// WithShutdownTimeout overrides the drain timeout
func (s *GracefulServer) WithShutdownTimeout(timeout time.Duration) *GracefulServer {
	if timeout > 0 {
		s.shutdownTimeout = timeout
	}
	return s
}

// WithShutdownManager runs the manager's cleanups after the listener closes
func (s *GracefulServer) WithShutdownManager(sm *ShutdownManager) *GracefulServer {
	s.onShutdown = sm
	return s
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully
func (s *GracefulServer) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done or the listener fails
func (s *GracefulServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.server.Addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal")
	}

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	if s.onShutdown != nil {
		s.onShutdown.Shutdown(ctx)
	}

	s.logger.Info("Server shutdown completed")
	return nil
}

// ShutdownManager runs registered cleanups in reverse registration order
type ShutdownManager struct {
	mu        sync.Mutex
	logger    *logger.ZapLogger
	functions []namedCleanup
}

type namedCleanup struct {
	name string
	fn   func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	if fn == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.functions = append(sm.functions, namedCleanup{name: name, fn: fn})
}

// Shutdown executes all registered cleanup functions. A failing or panicking
// cleanup does not stop the others; the number of failures is returned.
func (sm *ShutdownManager) Shutdown(ctx context.Context) int {
	sm.mu.Lock()
	functions := make([]namedCleanup, len(sm.functions))
	copy(functions, sm.functions)
	sm.mu.Unlock()

	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(functions)))

	failures := 0
	for i := len(functions) - 1; i >= 0; i-- {
		if err := sm.run(ctx, functions[i]); err != nil {
			failures++
			sm.logger.Error("Error during component shutdown",
				logger.String("component", functions[i].name),
				logger.Err(err))
		}
	}

	sm.logger.Info("All components shutdown completed", logger.Int("failures", failures))
	return failures
}

func (sm *ShutdownManager) run(ctx context.Context, c namedCleanup) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return c.fn(ctx)
}
