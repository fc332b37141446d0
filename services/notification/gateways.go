package notification

import (
	"context"

	"github.com/alshuail/authnotify/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/alshuail/authnotify/services/notification Dispatcher

// Dispatcher walks an ordered channel list for one recipient
type Dispatcher interface {
	Dispatch(ctx context.Context, recipient models.Recipient, payload models.NotificationPayload, order []models.Channel) models.DispatchResult
}
