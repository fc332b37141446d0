package http

import (
	"net/http"

	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/alshuail/authnotify/internal/utils"
	"github.com/alshuail/authnotify/services/notification"
	"github.com/gin-gonic/gin"
)

// NotificationHandler handles dispatch and preference requests
type NotificationHandler struct {
	notificationUC notification.NotificationUC
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationUC notification.NotificationUC) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
	}
}

// Send handles POST /notifications/send
func (h *NotificationHandler) Send(c *gin.Context) {
	var req models.DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := h.notificationUC.Send(c.Request.Context(), &req)
	if err != nil {
		utils.GinHandleError(c, err)
		return
	}
	utils.GinSuccess(c, http.StatusOK, "", result)
}

// SendBulk handles POST /notifications/bulk
func (h *NotificationHandler) SendBulk(c *gin.Context) {
	var req models.BulkDispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	summary, err := h.notificationUC.SendBulk(c.Request.Context(), &req)
	if err != nil {
		utils.GinHandleError(c, err)
		return
	}
	utils.GinSuccess(c, http.StatusOK, "", summary)
}

// Enqueue handles POST /notifications/enqueue
func (h *NotificationHandler) Enqueue(c *gin.Context) {
	var req models.BulkDispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	batchID, err := h.notificationUC.Enqueue(c.Request.Context(), &req)
	if err != nil {
		utils.GinHandleError(c, err)
		return
	}
	utils.GinSuccess(c, http.StatusAccepted, "Notifications queued", gin.H{"batchId": batchID})
}

// GetPreference handles GET /notifications/preferences/:memberId
func (h *NotificationHandler) GetPreference(c *gin.Context) {
	pref, err := h.notificationUC.GetPreference(c.Request.Context(), c.Param("memberId"))
	if err != nil {
		utils.GinHandleError(c, err)
		return
	}
	utils.GinSuccess(c, http.StatusOK, "", pref)
}

// UpdatePreference handles PUT /notifications/preferences/:memberId
func (h *NotificationHandler) UpdatePreference(c *gin.Context) {
	var update models.PreferenceUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.GinError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	pref, err := h.notificationUC.UpdatePreference(c.Request.Context(), c.Param("memberId"), &update)
	if err != nil {
		utils.GinHandleError(c, err)
		return
	}
	utils.GinSuccess(c, http.StatusOK, "Preferences updated", pref)
}
