package auth

import (
	"context"

	"github.com/alshuail/authnotify/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/alshuail/authnotify/services/auth AuthUC

// AuthUC represents the auth usecase interface
type AuthUC interface {
	// handle OTP
	SendOTP(ctx context.Context, phone string) (*models.SendOTPResponse, error)
	ResendOTP(ctx context.Context, phone string) (*models.SendOTPResponse, error)
	VerifyOTP(ctx context.Context, phone, code string) (*models.AuthResponse, error)
	OTPStatus(ctx context.Context) *models.OTPStatusResponse

	// handle password
	LoginWithPassword(ctx context.Context, req *models.PasswordLoginRequest) (*models.AuthResponse, error)
	PasswordStatus(ctx context.Context, phone string) (*models.PasswordStatusResponse, error)
	ResetPassword(ctx context.Context, req *models.PasswordResetRequest) error
	CreatePassword(ctx context.Context, memberID string, req *models.CreatePasswordRequest) error

	// handle face id
	LoginWithFaceID(ctx context.Context, req *models.FaceIDLoginRequest) (*models.AuthResponse, error)
	EnableFaceID(ctx context.Context, memberID string, req *models.EnableFaceIDRequest) error
	DisableFaceID(ctx context.Context, memberID string) error

	// administration
	DeletePassword(ctx context.Context, adminID, memberID string) error
	DeleteFaceID(ctx context.Context, adminID, memberID string) error
	MemberSecurity(ctx context.Context, memberID string) (*models.MemberSecurityInfo, error)
}
