package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/alshuail/authnotify/internal/utils"
)

const (
	msgOTPAccepted = "If this number is registered, a verification code has been sent"
	msgInvalidOTP  = "Invalid or expired verification code"
)

// SendOTP issues a passcode and delivers it when the phone belongs to an active member.
// The response is identical for unknown and inactive phones.
func (u *AuthUC) SendOTP(ctx context.Context, phone string) (*models.SendOTPResponse, error) {
	return u.sendOTP(ctx, phone, false)
}

// ResendOTP replaces the current passcode under the same cooldown as SendOTP
func (u *AuthUC) ResendOTP(ctx context.Context, phone string) (*models.SendOTPResponse, error) {
	return u.sendOTP(ctx, phone, true)
}

func (u *AuthUC) otpTTL() time.Duration {
	if u.cfg.OTP.TTL > 0 {
		return u.cfg.OTP.TTL
	}
	return 5 * time.Minute
}

func (u *AuthUC) otpAccepted() *models.SendOTPResponse {
	return &models.SendOTPResponse{
		Success:   true,
		Message:   msgOTPAccepted,
		ExpiresIn: int(u.otpTTL().Seconds()),
		TestMode:  u.cfg.OTP.UseTestCode,
	}
}

func (u *AuthUC) sendOTP(ctx context.Context, rawPhone string, resend bool) (*models.SendOTPResponse, error) {
	phone, err := normalizePhone(rawPhone)
	if err != nil {
		return nil, err
	}

	code, err := u.generator.Generate()
	if err != nil {
		return nil, apperror.Wrap(err, "failed to generate code")
	}

	// Cooldown applies before the member lookup so registered and unknown phones behave alike
	if _, err := u.otps.Issue(ctx, phone, code); err != nil {
		return nil, repoError(err, "failed to store code")
	}

	member, err := u.members.GetMemberByPhone(ctx, phone)
	if err != nil {
		if !apperror.Is(err, apperror.KindNotFound) {
			u.discardOTP(ctx, phone)
			return nil, repoError(err, "failed to look up member")
		}
		logger.InfoCtx(ctx, "Passcode requested for unregistered phone",
			logger.String("phone", utils.MaskPhoneNumber(phone)))
		return u.otpAccepted(), nil
	}
	if !member.CanLogin() {
		logger.InfoCtx(ctx, "Passcode requested for inactive member",
			logger.String("member_id", member.ID),
			logger.String("status", member.Status))
		return u.otpAccepted(), nil
	}

	state, err := u.locks.Status(ctx, member.ID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read lock state before sending passcode",
			logger.String("member_id", member.ID),
			logger.Err(err))
	} else if state.Locked(u.now()) {
		logger.InfoCtx(ctx, "Passcode requested for locked member",
			logger.String("member_id", member.ID),
			logger.Int("remaining_minutes", state.RemainingMinutes))
		return u.otpAccepted(), nil
	}

	result := u.sender.SendOTP(ctx, models.Recipient{
		MemberID: member.ID,
		Name:     member.FullName,
		Phone:    phone,
	}, code)

	if !result.Success {
		if !u.cfg.OTP.AllowUndelivered || u.cfg.App.IsProduction() {
			u.discardOTP(ctx, phone)
			return nil, apperror.NewDeliveryError("Failed to send verification code",
				fmt.Errorf("no channel delivered after %d attempts", len(result.Attempts)))
		}
		logger.WarnCtx(ctx, "Passcode not delivered, keeping it for development",
			logger.String("member_id", member.ID))
	}

	u.record(ctx, member.ID, "", models.ActionOTPRequested, map[string]interface{}{
		"resend":    resend,
		"channel":   string(result.DeliveredVia),
		"delivered": result.Success,
	})

	return u.otpAccepted(), nil
}

func (u *AuthUC) discardOTP(ctx context.Context, phone string) {
	if err := u.otps.Delete(ctx, phone); err != nil {
		logger.WarnCtx(ctx, "Failed to discard passcode",
			logger.String("phone", utils.MaskPhoneNumber(phone)),
			logger.Err(err))
	}
}

// consumeOTP verifies code for phone. Every failure is the same authentication error;
// only a wrong code carries the remaining attempts.
func (u *AuthUC) consumeOTP(ctx context.Context, phone, code string) error {
	res, err := u.otps.Verify(ctx, phone, strings.TrimSpace(code))
	if err != nil {
		return apperror.Wrap(err, "failed to verify code")
	}
	if res.OK() {
		return nil
	}

	u.record(ctx, "", "", models.ActionOTPVerificationFailed, map[string]interface{}{
		"phone":  utils.MaskPhoneNumber(phone),
		"status": string(res.Status),
	})

	authErr := apperror.NewAuthenticationError(msgInvalidOTP)
	if res.Status == models.OtpMismatch {
		authErr.RemainingAttempts = res.RemainingAttempts
	}
	return authErr
}

// VerifyOTP consumes the passcode and signs the member in
func (u *AuthUC) VerifyOTP(ctx context.Context, rawPhone, code string) (*models.AuthResponse, error) {
	if strings.TrimSpace(rawPhone) == "" || strings.TrimSpace(code) == "" {
		return nil, apperror.NewValidationError("phone and otp are required")
	}
	phone, err := normalizePhone(rawPhone)
	if err != nil {
		return nil, err
	}

	if err := u.consumeOTP(ctx, phone, code); err != nil {
		return nil, err
	}

	member, err := u.members.GetMemberByPhone(ctx, phone)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, apperror.NewAuthenticationError(msgInvalidOTP)
		}
		return nil, repoError(err, "failed to look up member")
	}
	if !member.CanLogin() {
		return nil, apperror.NewAuthenticationError(msgInvalidOTP)
	}
	if err := u.checkLock(ctx, member.ID); err != nil {
		return nil, err
	}

	return u.issueSession(ctx, member, MethodOTP)
}

// OTPStatus reports passcode delivery configuration without secrets
func (u *AuthUC) OTPStatus(_ context.Context) *models.OTPStatusResponse {
	length := u.cfg.OTP.Length
	if length == 0 {
		length = 6
	}
	return &models.OTPStatusResponse{
		Channels: u.sender.Status(),
		TestMode: u.cfg.OTP.UseTestCode,
		Length:   length,
		TTL:      int(u.otpTTL().Seconds()),
	}
}
