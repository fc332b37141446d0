package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func waitForServer(t *testing.T, url string) {
	t.Helper()
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)
}

func TestGracefulServer_RunEcho(t *testing.T) {
	// Arrange
	e := echo.New()
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	port := freePort(t)

	sm := NewShutdownManager(logger.NewNopZapLogger())
	var cleaned bool
	sm.Register("redis", func(context.Context) error {
		cleaned = true
		return nil
	})

	srv := NewGracefulServer(e, logger.NewNopZapLogger(), port).
		WithShutdownTimeout(time.Second).
		WithShutdownManager(sm)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	// Act
	go func() { done <- srv.Run(ctx) }()
	waitForServer(t, "http://127.0.0.1:"+strconv.Itoa(port)+"/health")
	cancel()

	// Assert
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.True(t, cleaned)
}

func TestGracefulServer_RunGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	port := freePort(t)

	srv := NewGracefulServer(router, logger.NewNopZapLogger(), port)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- srv.Run(ctx) }()
	waitForServer(t, "http://127.0.0.1:"+strconv.Itoa(port)+"/health")
	cancel()

	assert.NoError(t, <-done)
}

func TestGracefulServer_PortInUse(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer l.Close()

	srv := NewGracefulServer(http.NotFoundHandler(), logger.NewNopZapLogger(), l.Addr().(*net.TCPAddr).Port)

	err = srv.Run(context.Background())
	assert.Error(t, err)
}

func TestShutdownManager_Shutdown(t *testing.T) {
	t.Run("Runs in reverse order and survives failures", func(t *testing.T) {
		sm := NewShutdownManager(logger.NewNopZapLogger())
		var order []string

		sm.Register("postgres", func(context.Context) error {
			order = append(order, "postgres")
			return nil
		})
		sm.Register("nsq", func(context.Context) error {
			order = append(order, "nsq")
			return errors.New("producer already stopped")
		})
		sm.Register("worker", func(context.Context) error {
			order = append(order, "worker")
			panic("boom")
		})
		sm.Register("ignored", nil)

		failures := sm.Shutdown(context.Background())

		assert.Equal(t, 2, failures)
		assert.Equal(t, []string{"worker", "nsq", "postgres"}, order)
	})

	t.Run("No cleanup functions", func(t *testing.T) {
		sm := NewShutdownManager(logger.NewNopZapLogger())
		assert.Equal(t, 0, sm.Shutdown(context.Background()))
	})

	t.Run("Concurrent registration", func(t *testing.T) {
		sm := NewShutdownManager(logger.NewNopZapLogger())
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sm.Register("c", func(context.Context) error { return nil })
			}()
		}
		wg.Wait()

		assert.Len(t, sm.functions, 50)
	})
}
