package notification

import (
	"context"

	"github.com/alshuail/authnotify/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/alshuail/authnotify/services/notification NotificationUC

// NotificationUC defines the business logic of the notification service
type NotificationUC interface {
	Send(ctx context.Context, req *models.DispatchRequest) (*models.DispatchResult, error)
	SendBulk(ctx context.Context, req *models.BulkDispatchRequest) (*models.BulkDispatchResult, error)
	Enqueue(ctx context.Context, req *models.BulkDispatchRequest) (string, error)
	GetPreference(ctx context.Context, memberID string) (*models.NotificationPreference, error)
	UpdatePreference(ctx context.Context, memberID string, update *models.PreferenceUpdate) (*models.NotificationPreference, error)
}
