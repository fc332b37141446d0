// Package requestcontext carries per-request identifiers through context.Context
// so that logs and audit entries can be correlated.
package requestcontext

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey ContextKey = "request_id"
	// UserIDKey is the context key for the authenticated member or API client
	UserIDKey ContextKey = "user_id"
	// ClientIPKey is the context key for the caller address
	ClientIPKey ContextKey = "client_ip"
)

// HeaderRequestID is the header a caller may use to supply its own request ID
const HeaderRequestID = "X-Request-ID"

// RequestContext holds request-specific information
type RequestContext struct {
	RequestID string
	UserID    string
	ClientIP  string
	StartTime time.Time
}

// WithRequestContext adds request context to the given context
func WithRequestContext(ctx context.Context, reqCtx *RequestContext) context.Context {
	ctx = context.WithValue(ctx, RequestIDKey, reqCtx.RequestID)
	ctx = context.WithValue(ctx, ClientIPKey, reqCtx.ClientIP)
	if reqCtx.UserID != "" {
		ctx = context.WithValue(ctx, UserIDKey, reqCtx.UserID)
	}
	return ctx
}

// WithRequestID stores id, generating one when empty
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.New().String()
	}
	return context.WithValue(ctx, RequestIDKey, id)
}

// WithUserID stores the authenticated caller
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// FromEchoContext extracts request context from Echo context
func FromEchoContext(c echo.Context) *RequestContext {
	reqCtx := &RequestContext{
		RequestID: c.Request().Header.Get(HeaderRequestID),
		ClientIP:  c.RealIP(),
		StartTime: time.Now(),
	}
	if reqCtx.RequestID == "" {
		reqCtx.RequestID = uuid.New().String()
	}
	if uid, ok := c.Get("user_id").(string); ok {
		reqCtx.UserID = uid
	}
	return reqCtx
}

// FromGinContext extracts request context from a gin context
func FromGinContext(c *gin.Context) *RequestContext {
	reqCtx := &RequestContext{
		RequestID: c.GetHeader(HeaderRequestID),
		ClientIP:  c.ClientIP(),
		StartTime: time.Now(),
	}
	if reqCtx.RequestID == "" {
		reqCtx.RequestID = uuid.New().String()
	}
	reqCtx.UserID = c.GetString("api_client")
	return reqCtx
}

// GetRequestID extracts request ID from context
func GetRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		return reqID
	}
	return ""
}

// GetUserID extracts user ID from context
func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(UserIDKey).(string); ok {
		return userID
	}
	return ""
}

// GetClientIP extracts the caller address from context
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(ClientIPKey).(string); ok {
		return ip
	}
	return ""
}
