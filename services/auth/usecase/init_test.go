package usecase

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/audit"
	auditmocks "github.com/alshuail/authnotify/internal/pkg/audit/mocks"
	"github.com/alshuail/authnotify/internal/pkg/jwt"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/alshuail/authnotify/internal/pkg/otpcode"
	"github.com/alshuail/authnotify/services/auth/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret-key-that-is-long-enough-for-hs256"

type authTestDeps struct {
	members *mocks.MockMemberRepo
	otps    *mocks.MockOtpStore
	locks   *mocks.MockLockGuard
	sender  *mocks.MockOtpSender
	issuer  *jwt.Issuer
	cfg     *models.Config
	entries []models.SecurityAuditEntry
	now     time.Time
	uc      *AuthUC
}

func (d *authTestDeps) actions() []models.SecurityAction {
	actions := make([]models.SecurityAction, 0, len(d.entries))
	for _, e := range d.entries {
		actions = append(actions, e.ActionType)
	}
	return actions
}

func setupAuthUC(t *testing.T) *authTestDeps {
	ctrl := gomock.NewController(t)

	cfg := &models.Config{
		App: models.AppConfig{Environment: "test"},
		OTP: models.OTPConfig{Length: 6, TTL: 5 * time.Minute, MaxAttempts: 3, Cooldown: time.Minute},
		Lock: models.LockConfig{
			MaxAttempts: 5,
			Duration:    30 * time.Minute,
		},
	}

	issuer, err := jwt.NewIssuer(models.JWTConfig{Secret: testJWTSecret, Issuer: "alshuail-auth"}, "test")
	require.NoError(t, err)
	generator, err := otpcode.NewFixedGenerator("123456", "test")
	require.NoError(t, err)

	d := &authTestDeps{
		members: mocks.NewMockMemberRepo(ctrl),
		otps:    mocks.NewMockOtpStore(ctrl),
		locks:   mocks.NewMockLockGuard(ctrl),
		sender:  mocks.NewMockOtpSender(ctrl),
		issuer:  issuer,
		cfg:     cfg,
		now:     time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	auditRepo := auditmocks.NewMockRepository(ctrl)
	auditRepo.EXPECT().InsertAuditEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.SecurityAuditEntry) error {
			d.entries = append(d.entries, *entry)
			return nil
		}).AnyTimes()

	d.uc = NewAuthUC(cfg, d.members, d.otps, d.locks, d.sender, issuer, generator, audit.NewLogger(nil, auditRepo))
	d.uc.bcryptCost = bcrypt.MinCost
	d.uc.now = func() time.Time { return d.now }
	return d
}

func activeMember() *models.Member {
	return &models.Member{
		ID:               "550e8400-e29b-41d4-a716-446655440000",
		Phone:            "966501234567",
		FullName:         "Fahad Al-Shuail",
		MembershipNumber: sql.NullString{String: "M-1001", Valid: true},
		Balance:          sql.NullFloat64{Float64: 300, Valid: true},
		Status:           "active",
		Role:             models.RoleMember,
		IsActive:         true,
		JoinedAt:         sql.NullTime{Time: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), Valid: true},
	}
}

func memberWithPassword(t *testing.T, password string) *models.Member {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	m := activeMember()
	m.HasPassword = true
	m.PasswordHash = sql.NullString{String: string(hash), Valid: true}
	return m
}

func unlocked(id string) models.AccountLockState {
	return models.AccountLockState{AccountID: id}
}
