package handler

import (
	"github.com/alshuail/authnotify/internal/pkg/middleware"
	"github.com/alshuail/authnotify/services/notification/handler/http"
	"github.com/alshuail/authnotify/services/notification/handler/nsq"
	"github.com/gin-gonic/gin"
)

// Handler coordinates all protocol handlers for the notification service
type Handler struct {
	notificationHandler *http.NotificationHandler
	dispatchHandler     *nsq.DispatchHandler
	apiKeys             middleware.APIKeys
}

// NewHandler creates and initializes all handlers
func NewHandler(
	notificationHandler *http.NotificationHandler,
	dispatchHandler *nsq.DispatchHandler,
	apiKeys middleware.APIKeys,
) *Handler {
	return &Handler{
		notificationHandler: notificationHandler,
		dispatchHandler:     dispatchHandler,
		apiKeys:             apiKeys,
	}
}

// DispatchHandler returns the queue consumer handler
func (h *Handler) DispatchHandler() *nsq.DispatchHandler {
	return h.dispatchHandler
}

// RegisterRoutes registers all HTTP routes behind service API keys
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	notifications := r.Group("/notifications", middleware.GinAPIKey(h.apiKeys,
		middleware.ClientAuthService,
		middleware.ClientNotificationService,
		middleware.ClientAdminDashboard,
	))
	{
		notifications.POST("/send", h.notificationHandler.Send)
		notifications.POST("/bulk", h.notificationHandler.SendBulk)
		notifications.POST("/enqueue", h.notificationHandler.Enqueue)
		notifications.GET("/preferences/:memberId", h.notificationHandler.GetPreference)
		notifications.PUT("/preferences/:memberId", h.notificationHandler.UpdatePreference)
	}
}
