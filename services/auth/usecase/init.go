package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/audit"
	"github.com/alshuail/authnotify/internal/pkg/jwt"
	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/alshuail/authnotify/internal/pkg/otpcode"
	"github.com/alshuail/authnotify/internal/pkg/requestcontext"
	"github.com/alshuail/authnotify/internal/utils"
	"github.com/alshuail/authnotify/services/auth"
	"golang.org/x/crypto/bcrypt"
)

// Login methods recorded on the member and in the audit trail
const (
	MethodOTP      = "otp"
	MethodPassword = "password"
	MethodFaceID   = "face_id"
)

const (
	defaultBcryptCost  = 12
	defaultMaxFailures = 5
)

type AuthUC struct {
	cfg        *models.Config
	members    auth.MemberRepo
	otps       auth.OtpStore
	locks      auth.LockGuard
	sender     auth.OtpSender
	issuer     *jwt.Issuer
	generator  otpcode.Generator
	audit      *audit.Logger
	bcryptCost int
	now        func() time.Time
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	cfg *models.Config,
	members auth.MemberRepo,
	otps auth.OtpStore,
	locks auth.LockGuard,
	sender auth.OtpSender,
	issuer *jwt.Issuer,
	generator otpcode.Generator,
	auditLogger *audit.Logger,
) *AuthUC {
	return &AuthUC{
		cfg:        cfg,
		members:    members,
		otps:       otps,
		locks:      locks,
		sender:     sender,
		issuer:     issuer,
		generator:  generator,
		audit:      auditLogger,
		bcryptCost: defaultBcryptCost,
		now:        time.Now,
	}
}

func normalizePhone(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", apperror.NewValidationError("phone is required")
	}
	phone, err := utils.NormalizePhone(raw)
	if err != nil {
		return "", apperror.NewValidationError("invalid phone number format")
	}
	return phone, nil
}

// repoError keeps typed repository errors and wraps everything else as internal
func repoError(err error, msg string) error {
	if _, ok := apperror.As(err); ok {
		return err
	}
	return apperror.Wrap(err, msg)
}

// record appends to the security audit trail; it never fails the request
func (u *AuthUC) record(ctx context.Context, accountID, performedBy string, action models.SecurityAction, details map[string]interface{}) {
	if u.audit == nil {
		return
	}
	u.audit.Log(ctx, models.SecurityAuditEntry{
		AccountID:   accountID,
		ActionType:  action,
		PerformedBy: performedBy,
		Details:     details,
		IPAddress:   requestcontext.GetClientIP(ctx),
	})
}

func (u *AuthUC) maxFailures() int {
	if u.cfg.Lock.MaxAttempts > 0 {
		return u.cfg.Lock.MaxAttempts
	}
	return defaultMaxFailures
}

func lockedError(state models.AccountLockState) *apperror.Error {
	minutes := state.RemainingMinutes
	if minutes < 1 {
		minutes = 1
	}
	return apperror.NewAuthenticationError(
		fmt.Sprintf("Account is temporarily locked. Try again in %d minutes", minutes))
}

// checkLock rejects sign-in while the account is locked, whatever the credentials
func (u *AuthUC) checkLock(ctx context.Context, memberID string) error {
	state, err := u.locks.Status(ctx, memberID)
	if err != nil {
		return apperror.Wrap(err, "failed to read lock state")
	}
	if state.Locked(u.now()) {
		return lockedError(state)
	}
	return nil
}

// loginFailed counts a failed credential check and builds the error for the caller
func (u *AuthUC) loginFailed(ctx context.Context, member *models.Member, method, msg string) error {
	state, locked, err := u.locks.RecordFailure(ctx, member.ID)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to record login failure",
			logger.String("member_id", member.ID),
			logger.Err(err))
	}

	u.record(ctx, member.ID, "", models.ActionLoginFailed, map[string]interface{}{
		"method":          method,
		"failed_attempts": state.FailedAttempts,
	})

	if locked {
		u.record(ctx, member.ID, "", models.ActionAccountLocked, map[string]interface{}{
			"method":       method,
			"locked_until": state.LockedUntil,
		})
		logger.WarnCtx(ctx, "Account locked after repeated failures",
			logger.String("member_id", member.ID),
			logger.String("method", method))
		return lockedError(state)
	}
	if state.Locked(u.now()) {
		return lockedError(state)
	}

	authErr := apperror.NewAuthenticationError(msg)
	if err == nil {
		remaining := u.maxFailures() - state.FailedAttempts
		if remaining < 0 {
			remaining = 0
		}
		authErr.RemainingAttempts = remaining
	}
	return authErr
}

// issueSession signs a token for member and records the sign-in
func (u *AuthUC) issueSession(ctx context.Context, member *models.Member, method string) (*models.AuthResponse, error) {
	profile := member.Profile()

	token, expiresAt, err := u.issuer.Issue(jwt.Identity{
		UserID: member.ID,
		Phone:  member.Phone,
		Role:   profile.Role,
	})
	if err != nil {
		return nil, apperror.Wrap(err, "failed to issue token")
	}

	if err := u.members.RecordLogin(ctx, member.ID, method); err != nil {
		logger.WarnCtx(ctx, "Failed to record last login",
			logger.String("member_id", member.ID),
			logger.Err(err))
	}

	u.record(ctx, member.ID, "", models.ActionLoginSuccess, map[string]interface{}{
		"method": method,
	})

	return &models.AuthResponse{
		Success:            true,
		Message:            "Login successful",
		Token:              token,
		ExpiresAt:          expiresAt.Unix(),
		User:               profile,
		MustChangePassword: member.MustChangePassword,
	}, nil
}

func (u *AuthUC) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.bcryptCost)
	if err != nil {
		return "", apperror.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}
