package health

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/database"
	"github.com/alshuail/authnotify/internal/pkg/logger"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Checker reports whether one dependency is usable
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

// CheckHealth implements Checker
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// PostgresChecker checks PostgreSQL connection health
type PostgresChecker struct {
	client *database.PostgresClient
}

// NewPostgresChecker creates a PostgreSQL checker
func NewPostgresChecker(client *database.PostgresClient) *PostgresChecker {
	return &PostgresChecker{client: client}
}

// CheckHealth implements Checker
func (p *PostgresChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return errors.New("postgres client not initialized")
	}
	return p.client.Ping(ctx)
}

// RedisChecker checks Redis connection health
type RedisChecker struct {
	client *database.RedisClient
}

// NewRedisChecker creates a Redis checker
func NewRedisChecker(client *database.RedisClient) *RedisChecker {
	return &RedisChecker{client: client}
}

// CheckHealth implements Checker
func (r *RedisChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return errors.New("redis client not initialized")
	}
	return r.client.Ping(ctx)
}

// Response represents the readiness response
type Response struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service,omitempty"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Service runs the registered checkers
type Service struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	logger   *logger.ZapLogger
}

// NewService creates a health service
func NewService(zapLogger *logger.ZapLogger) *Service {
	if zapLogger == nil {
		zapLogger = logger.GetGlobalLogger()
	}
	return &Service{
		checkers: make(map[string]Checker),
		logger:   zapLogger,
	}
}

// AddChecker registers a checker under name
func (s *Service) AddChecker(name string, checker Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
}

// CheckAll runs every checker concurrently
func (s *Service) CheckAll(ctx context.Context) Response {
	s.mu.RLock()
	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	s.mu.RUnlock()
	sort.Strings(names)

	resp := Response{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(names)),
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, name := range names {
		s.mu.RLock()
		checker := s.checkers[name]
		s.mu.RUnlock()

		wg.Add(1)
		go func(name string, checker Checker) {
			defer wg.Done()
			info := DependencyInfo{Status: StatusHealthy}
			if err := checker.CheckHealth(ctx); err != nil {
				s.logger.Error("Health check failed",
					logger.String("dependency", name),
					logger.Err(err))
				info = DependencyInfo{Status: StatusUnhealthy, Error: err.Error()}
			}

			mu.Lock()
			resp.Dependencies[name] = info
			if info.Status != StatusHealthy {
				resp.Status = StatusUnhealthy
			}
			mu.Unlock()
		}(name, checker)
	}
	wg.Wait()

	return resp
}
