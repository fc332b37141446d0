package auth

import (
	"context"

	"github.com/alshuail/authnotify/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/alshuail/authnotify/services/auth MemberRepo,OtpStore,LockGuard

// MemberRepo reads members and updates their credentials
type MemberRepo interface {
	GetMemberByPhone(ctx context.Context, phone string) (*models.Member, error)
	GetMemberByID(ctx context.Context, id string) (*models.Member, error)
	RecordLogin(ctx context.Context, id, method string) error

	// credentials
	SetPasswordHash(ctx context.Context, id, hash string) error
	ClearPassword(ctx context.Context, id string) error
	SetFaceIDHash(ctx context.Context, id, hash string) error
	ClearFaceID(ctx context.Context, id string) error
}

// OtpStore keeps at most one passcode per key. Issue and Verify are atomic per key.
type OtpStore interface {
	Issue(ctx context.Context, key, code string) (*models.OtpRecord, error)
	Verify(ctx context.Context, key, candidate string) (models.OtpVerifyResult, error)
	Delete(ctx context.Context, key string) error
}

// LockGuard tracks consecutive login failures per account
type LockGuard interface {
	Status(ctx context.Context, accountID string) (models.AccountLockState, error)
	// RecordFailure reports whether this failure locked the account
	RecordFailure(ctx context.Context, accountID string) (models.AccountLockState, bool, error)
	Reset(ctx context.Context, accountID string) error
}
