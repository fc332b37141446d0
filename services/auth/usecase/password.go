package usecase

import (
	"context"
	"strings"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 6
	// bcrypt ignores input beyond 72 bytes
	maxPasswordLength = 72

	msgInvalidCredentials = "Invalid phone number or password"
)

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return apperror.NewValidationError("password must be at least 6 characters")
	}
	if len(password) > maxPasswordLength {
		return apperror.NewValidationError("password must be at most 72 bytes")
	}
	return nil
}

// LoginWithPassword signs a member in with phone and password
func (u *AuthUC) LoginWithPassword(ctx context.Context, req *models.PasswordLoginRequest) (*models.AuthResponse, error) {
	if req == nil || strings.TrimSpace(req.Phone) == "" || req.Password == "" {
		return nil, apperror.NewValidationError("phone and password are required")
	}
	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	member, err := u.members.GetMemberByPhone(ctx, phone)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, apperror.NewAuthenticationError(msgInvalidCredentials)
		}
		return nil, repoError(err, "failed to look up member")
	}
	if !member.CanLogin() {
		return nil, apperror.NewForbiddenError("Account is not active")
	}
	if err := u.checkLock(ctx, member.ID); err != nil {
		return nil, err
	}
	if !member.HasPassword || !member.PasswordHash.Valid {
		return nil, apperror.NewValidationError("Password login requires password setup")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash.String), []byte(req.Password)); err != nil {
		return nil, u.loginFailed(ctx, member, MethodPassword, msgInvalidCredentials)
	}

	u.resetFailures(ctx, member.ID)
	return u.issueSession(ctx, member, MethodPassword)
}

func (u *AuthUC) resetFailures(ctx context.Context, memberID string) {
	if err := u.locks.Reset(ctx, memberID); err != nil {
		logger.WarnCtx(ctx, "Failed to reset login failures",
			logger.String("member_id", memberID),
			logger.Err(err))
	}
}

// PasswordStatus reports whether the phone can sign in with a password. Unknown
// phones get the same shape with both flags false.
func (u *AuthUC) PasswordStatus(ctx context.Context, rawPhone string) (*models.PasswordStatusResponse, error) {
	phone, err := normalizePhone(rawPhone)
	if err != nil {
		return nil, err
	}

	member, err := u.members.GetMemberByPhone(ctx, phone)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return &models.PasswordStatusResponse{}, nil
		}
		return nil, repoError(err, "failed to look up member")
	}

	return &models.PasswordStatusResponse{
		HasPassword:    member.HasPassword,
		CanUsePassword: member.HasPassword && member.CanLogin(),
	}, nil
}

// ResetPassword sets a new password after a passcode check
func (u *AuthUC) ResetPassword(ctx context.Context, req *models.PasswordResetRequest) error {
	if req == nil || strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.OTP) == "" || req.NewPassword == "" {
		return apperror.NewValidationError("phone, otp and newPassword are required")
	}
	if err := validatePassword(req.NewPassword); err != nil {
		return err
	}
	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return err
	}

	if err := u.consumeOTP(ctx, phone, req.OTP); err != nil {
		return err
	}

	member, err := u.members.GetMemberByPhone(ctx, phone)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return apperror.NewAuthenticationError(msgInvalidOTP)
		}
		return repoError(err, "failed to look up member")
	}
	if !member.CanLogin() {
		return apperror.NewForbiddenError("Account is not active")
	}

	hash, err := u.hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := u.members.SetPasswordHash(ctx, member.ID, hash); err != nil {
		return repoError(err, "failed to store password")
	}
	u.resetFailures(ctx, member.ID)

	u.record(ctx, member.ID, member.ID, models.ActionPasswordResetRequested, map[string]interface{}{
		"had_password": member.HasPassword,
	})
	return nil
}

// CreatePassword sets or changes the caller's own password. Changing an existing
// password requires the current one unless a change was forced.
func (u *AuthUC) CreatePassword(ctx context.Context, memberID string, req *models.CreatePasswordRequest) error {
	if req == nil || req.NewPassword == "" {
		return apperror.NewValidationError("newPassword is required")
	}
	if err := validatePassword(req.NewPassword); err != nil {
		return err
	}

	member, err := u.members.GetMemberByID(ctx, memberID)
	if err != nil {
		return repoError(err, "failed to look up member")
	}

	action := models.ActionPasswordCreated
	if member.HasPassword && member.PasswordHash.Valid {
		action = models.ActionPasswordChanged
		if !member.MustChangePassword {
			if req.CurrentPassword == "" {
				return apperror.NewValidationError("currentPassword is required")
			}
			if bcrypt.CompareHashAndPassword([]byte(member.PasswordHash.String), []byte(req.CurrentPassword)) != nil {
				return apperror.NewAuthenticationError("Current password is incorrect")
			}
		}
	}

	hash, err := u.hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := u.members.SetPasswordHash(ctx, member.ID, hash); err != nil {
		return repoError(err, "failed to store password")
	}

	u.record(ctx, member.ID, member.ID, action, nil)
	return nil
}
