package notification

import (
	"context"

	"github.com/alshuail/authnotify/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/alshuail/authnotify/services/notification RecipientRepo,PreferenceRepo

// RecipientRepo resolves members into deliverable recipients
type RecipientRepo interface {
	// GetRecipient returns the member's contact details and active device tokens
	GetRecipient(ctx context.Context, memberID string) (*models.Recipient, error)
	DeactivateDeviceTokens(ctx context.Context, memberID string, tokens []string) error
}

// PreferenceRepo persists member notification preferences
type PreferenceRepo interface {
	GetPreference(ctx context.Context, memberID string) (*models.NotificationPreference, error)
	UpsertPreference(ctx context.Context, pref *models.NotificationPreference) error
}
