package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/alshuail/authnotify/internal/pkg/requestcontext"
	"github.com/alshuail/authnotify/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/labstack/echo/v4"
)

const (
	APIKeyHeader = "X-API-Key"

	ClientAuthService         = "auth-service"
	ClientNotificationService = "notification-service"
	ClientAdminDashboard      = "admin-dashboard"
)

// APIKeys maps calling clients to their keys
type APIKeys map[string]string

// NewAPIKeys builds the client table from configuration; empty keys are never accepted
func NewAPIKeys(cfg models.APIKeyConfig) APIKeys {
	return APIKeys{
		ClientAuthService:         cfg.AuthService,
		ClientNotificationService: cfg.NotificationService,
		ClientAdminDashboard:      cfg.AdminDashboard,
	}
}

// Match returns the client owning key among allowed, comparing in constant time
func (k APIKeys) Match(key string, allowed ...string) (string, bool) {
	if key == "" {
		return "", false
	}
	for _, client := range allowed {
		expected := k[client]
		if expected == "" {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(expected)) == 1 {
			return client, true
		}
	}
	return "", false
}

// ValidateAPIKey middleware validates the API key for service-to-service communication
func ValidateAPIKey(keys APIKeys, allowedClients ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			client, ok := keys.Match(apiKey, allowedClients...)
			if !ok {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			c.Set("api_client", client)
			return next(c)
		}
	}
}

// GinAPIKey is the gin counterpart of ValidateAPIKey
func GinAPIKey(keys APIKeys, allowedClients ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(APIKeyHeader)
		if apiKey == "" {
			utils.GinError(c, http.StatusUnauthorized, "API key is required")
			return
		}

		client, ok := keys.Match(apiKey, allowedClients...)
		if !ok {
			utils.GinError(c, http.StatusUnauthorized, "Invalid API key")
			return
		}

		c.Set("api_client", client)
		c.Request = c.Request.WithContext(requestcontext.WithUserID(c.Request.Context(), client))
		c.Next()
	}
}
