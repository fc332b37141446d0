package middleware

import (
	"fmt"
	"net/http"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/alshuail/authnotify/internal/pkg/requestcontext"
	"github.com/alshuail/authnotify/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/labstack/echo/v4"
)

// PanicRecoveryConfig holds configuration for panic recovery middleware
type PanicRecoveryConfig struct {
	StackSize int
	Logger    *logger.ZapLogger
}

// DefaultPanicRecoveryConfig returns default configuration for panic recovery
func DefaultPanicRecoveryConfig() PanicRecoveryConfig {
	return PanicRecoveryConfig{
		StackSize: 4 << 10, // 4 KB
	}
}

// panicDetails is what gets logged for a recovered panic
type panicDetails struct {
	value     interface{}
	method    string
	path      string
	clientIP  string
	userAgent string
	userID    string
	requestID string
	headers   map[string]string
}

// PanicRecoveryMiddleware creates a middleware that recovers from panics and logs
// them with the stack trace
func PanicRecoveryMiddleware(config PanicRecoveryConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					req := c.Request()
					details := panicDetails{
						value:     r,
						method:    req.Method,
						path:      req.URL.Path,
						clientIP:  c.RealIP(),
						userAgent: req.UserAgent(),
						userID:    fmt.Sprintf("%v", valueOr(c.Get("user_id"), "anonymous")),
						requestID: requestcontext.GetRequestID(req.Context()),
						headers:   extractSafeHeaders(req.Header),
					}
					logPanic(config, details)

					if !c.Response().Committed {
						err = utils.InternalServerErrorResponse(c, "")
					}
				}
			}()

			return next(c)
		}
	}
}

// PanicRecoveryWithZapMiddleware creates panic recovery middleware with Zap logger
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	config := DefaultPanicRecoveryConfig()
	config.Logger = zapLogger
	return PanicRecoveryMiddleware(config)
}

// GinPanicRecovery is the gin counterpart of PanicRecoveryWithZapMiddleware
func GinPanicRecovery(zapLogger *logger.ZapLogger) gin.HandlerFunc {
	config := DefaultPanicRecoveryConfig()
	config.Logger = zapLogger
	if config.Logger == nil {
		panic("GinPanicRecovery requires a logger")
	}

	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				details := panicDetails{
					value:     r,
					method:    c.Request.Method,
					path:      c.Request.URL.Path,
					clientIP:  c.ClientIP(),
					userAgent: c.Request.UserAgent(),
					userID:    c.GetString("api_client"),
					requestID: requestcontext.GetRequestID(c.Request.Context()),
					headers:   extractSafeHeaders(c.Request.Header),
				}
				logPanic(config, details)
				utils.GinError(c, http.StatusInternalServerError, "Internal server error")
			}
		}()

		c.Next()
	}
}

func logPanic(config PanicRecoveryConfig, d panicDetails) {
	stack := debug.Stack()
	if config.StackSize > 0 && len(stack) > config.StackSize {
		stack = stack[:config.StackSize]
	}

	config.Logger.Error("Panic recovered during request processing",
		logger.Any("panic_value", d.value),
		logger.String("panic_type", fmt.Sprintf("%T", d.value)),
		logger.String("stack_trace", string(stack)),
		logger.String("caller", getCaller(5)),
		logger.String("method", d.method),
		logger.String("path", d.path),
		logger.String("client_ip", d.clientIP),
		logger.String("user_agent", d.userAgent),
		logger.String("user_id", d.userID),
		logger.String("request_id", d.requestID),
		logger.Any("headers", d.headers),
		logger.Int("goroutines", runtime.NumGoroutine()),
	)
}

func valueOr(v interface{}, fallback string) interface{} {
	if v == nil {
		return fallback
	}
	return v
}

func extractSafeHeaders(headers http.Header) map[string]string {
	safe := make(map[string]string)
	sensitiveHeaders := map[string]bool{
		"authorization": true,
		"cookie":        true,
		"set-cookie":    true,
		"x-api-key":     true,
	}

	for name, values := range headers {
		if !sensitiveHeaders[strings.ToLower(name)] && len(values) > 0 {
			safe[name] = values[0]
		}
	}
	return safe
}

func getCaller(skip int) string {
	if pc, file, line, ok := runtime.Caller(skip); ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			return fmt.Sprintf("%s:%d in %s", file, line, fn.Name())
		}
		return fmt.Sprintf("%s:%d", file, line)
	}
	return "unknown"
}
