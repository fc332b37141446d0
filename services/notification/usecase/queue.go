package usecase

import (
	"context"
	"crypto/rand"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/oklog/ulid/v2"
)

// Enqueue publishes a bulk request for the queue consumer and returns its batch ID
func (u *NotificationUC) Enqueue(ctx context.Context, req *models.BulkDispatchRequest) (string, error) {
	memberIDs, err := validateBulk(req)
	if err != nil {
		return "", err
	}
	if u.publisher == nil {
		return "", apperror.NewConfigurationError("notification queue is not configured")
	}

	batch := *req
	batch.MemberIDs = memberIDs
	if batch.BatchID == "" {
		batch.BatchID = ulid.MustNew(ulid.Timestamp(u.now()), ulid.Monotonic(rand.Reader, 0)).String()
	}

	if err := u.publisher.Publish(u.dispatchTopic(), &batch); err != nil {
		return "", apperror.Wrap(err, "failed to enqueue notifications")
	}

	logger.InfoCtx(ctx, "Notification batch enqueued",
		logger.String("batch_id", batch.BatchID),
		logger.String("type", string(batch.Payload.Type)),
		logger.Int("members", len(memberIDs)))
	return batch.BatchID, nil
}
