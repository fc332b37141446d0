package nsq

import (
	"context"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/alshuail/authnotify/internal/pkg/models"
	nsqpkg "github.com/alshuail/authnotify/internal/pkg/nsq"
	"github.com/alshuail/authnotify/services/notification"
)

// DispatchHandler consumes queued bulk dispatch requests
type DispatchHandler struct {
	notificationUC notification.NotificationUC
}

// NewDispatchHandler creates a new queue handler
func NewDispatchHandler(notificationUC notification.NotificationUC) *DispatchHandler {
	return &DispatchHandler{
		notificationUC: notificationUC,
	}
}

// Handle sends one queued batch. Malformed and invalid batches are dropped; other
// failures are requeued.
func (h *DispatchHandler) Handle(ctx context.Context, body []byte) error {
	var req models.BulkDispatchRequest
	if err := nsqpkg.UnmarshalMessage(body, &req); err != nil {
		return err
	}

	summary, err := h.notificationUC.SendBulk(ctx, &req)
	if err != nil {
		if apperror.Is(err, apperror.KindValidation) {
			return nsqpkg.Drop(err)
		}
		return err
	}

	logger.InfoCtx(ctx, "Queued batch processed",
		logger.String("batch_id", summary.BatchID),
		logger.Int("delivered", summary.Delivered),
		logger.Int("failed", summary.Failed))
	return nil
}
