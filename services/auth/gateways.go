package auth

import (
	"context"

	"github.com/alshuail/authnotify/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/alshuail/authnotify/services/auth OtpSender

// OtpSender delivers passcodes over the configured channels
type OtpSender interface {
	SendOTP(ctx context.Context, recipient models.Recipient, code string) models.DispatchResult
	Status() map[models.Channel]bool
}
