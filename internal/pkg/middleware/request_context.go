package middleware

import (
	"github.com/alshuail/authnotify/internal/pkg/requestcontext"
	"github.com/gin-gonic/gin"
	"github.com/labstack/echo/v4"
)

const requestContextKey = "request_context"

// RequestContextMiddleware attaches a request ID and caller address to every echo request
func RequestContextMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqCtx := requestcontext.FromEchoContext(c)
			c.Set(requestContextKey, reqCtx)

			ctx := requestcontext.WithRequestContext(c.Request().Context(), reqCtx)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set(echo.HeaderXRequestID, reqCtx.RequestID)

			return next(c)
		}
	}
}

// GinRequestContext is the gin counterpart of RequestContextMiddleware
func GinRequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqCtx := requestcontext.FromGinContext(c)
		c.Set(requestContextKey, reqCtx)

		ctx := requestcontext.WithRequestContext(c.Request.Context(), reqCtx)
		c.Request = c.Request.WithContext(ctx)

		c.Header(requestcontext.HeaderRequestID, reqCtx.RequestID)

		c.Next()
	}
}

// GetRequestContext extracts request context from Echo context
func GetRequestContext(c echo.Context) *requestcontext.RequestContext {
	if reqCtx, ok := c.Get(requestContextKey).(*requestcontext.RequestContext); ok {
		return reqCtx
	}
	return nil
}
