// Package health exposes liveness and readiness endpoints for both services.
package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/labstack/echo/v4"
)

const readinessTimeout = 3 * time.Second

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// NewBuildInfo describes the running binary, reading VERSION and GIT_COMMIT when set
func NewBuildInfo(serviceName, version string) BuildInfo {
	info := BuildInfo{
		Version:     version,
		GitCommit:   "unknown",
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    "unknown",
	}
	if info.Version == "" {
		info.Version = "development"
	}
	if v := os.Getenv("VERSION"); v != "" {
		info.Version = v
	}
	if commit := os.Getenv("GIT_COMMIT"); commit != "" {
		info.GitCommit = commit
	}
	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}
	return info
}

func (s *Service) ready(ctx context.Context) (int, Response) {
	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()

	resp := s.CheckAll(ctx)
	if resp.Status != StatusHealthy {
		return http.StatusServiceUnavailable, resp
	}
	return http.StatusOK, resp
}

// RegisterEcho registers /ping, /health and /ready on an echo router
func RegisterEcho(e *echo.Echo, info BuildInfo, svc *Service) {
	e.GET("/ping", func(c echo.Context) error {
		current := info
		current.ServerTime = time.Now()
		return c.JSON(http.StatusOK, current)
	})

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"service": info.ServiceName,
		})
	})

	e.GET("/ready", func(c echo.Context) error {
		status, resp := svc.ready(c.Request().Context())
		resp.Service = info.ServiceName
		resp.Version = info.Version
		return c.JSON(status, resp)
	})
}

// RegisterGin registers /ping, /health and /ready on a gin engine
func RegisterGin(r gin.IRoutes, info BuildInfo, svc *Service) {
	r.GET("/ping", func(c *gin.Context) {
		current := info
		current.ServerTime = time.Now()
		c.JSON(http.StatusOK, current)
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": info.ServiceName,
		})
	})

	r.GET("/ready", func(c *gin.Context) {
		status, resp := svc.ready(c.Request.Context())
		resp.Service = info.ServiceName
		resp.Version = info.Version
		c.JSON(status, resp)
	})
}
