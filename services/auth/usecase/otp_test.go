package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendOTP_RegisteredMember(t *testing.T) {
	// Arrange
	d := setupAuthUC(t)
	member := activeMember()

	d.otps.EXPECT().Issue(gomock.Any(), "966501234567", "123456").Return(&models.OtpRecord{}, nil)
	d.members.EXPECT().GetMemberByPhone(gomock.Any(), "966501234567").Return(member, nil)
	d.locks.EXPECT().Status(gomock.Any(), gomock.Any()).Return(models.AccountLockState{}, nil)
	d.sender.EXPECT().SendOTP(gomock.Any(), models.Recipient{
		MemberID: member.ID,
		Name:     member.FullName,
		Phone:    "966501234567",
	}, "123456").Return(models.DispatchResult{Success: true, DeliveredVia: models.ChannelWhatsApp})

	// Act
	resp, err := d.uc.SendOTP(context.Background(), "0501234567")

	// Assert
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, msgOTPAccepted, resp.Message)
	assert.Equal(t, 300, resp.ExpiresIn)
	assert.Equal(t, []models.SecurityAction{models.ActionOTPRequested}, d.actions())
	assert.Equal(t, "whatsapp", d.entries[0].Details["channel"])
}

func TestSendOTP_EnumerationResistance(t *testing.T) {
	registered := setupAuthUC(t)
	registered.otps.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.OtpRecord{}, nil)
	registered.members.EXPECT().GetMemberByPhone(gomock.Any(), gomock.Any()).Return(activeMember(), nil)
	registered.locks.EXPECT().Status(gomock.Any(), gomock.Any()).Return(models.AccountLockState{}, nil)
	registered.sender.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.DispatchResult{Success: true, DeliveredVia: models.ChannelSMS})

	unknown := setupAuthUC(t)
	unknown.otps.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.OtpRecord{}, nil)
	unknown.members.EXPECT().GetMemberByPhone(gomock.Any(), gomock.Any()).
		Return(nil, apperror.NewNotFoundError("member not found"))
	// no SendOTP expectation: the sender must not be called

	suspended := setupAuthUC(t)
	suspendedMember := activeMember()
	suspendedMember.Status = "suspended"
	suspended.otps.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.OtpRecord{}, nil)
	suspended.members.EXPECT().GetMemberByPhone(gomock.Any(), gomock.Any()).Return(suspendedMember, nil)

	respRegistered, err := registered.uc.SendOTP(context.Background(), "0501234567")
	require.NoError(t, err)
	respUnknown, err := unknown.uc.SendOTP(context.Background(), "0509999999")
	require.NoError(t, err)
	respSuspended, err := suspended.uc.SendOTP(context.Background(), "0508888888")
	require.NoError(t, err)

	assert.Equal(t, respRegistered, respUnknown)
	assert.Equal(t, respRegistered, respSuspended)
	assert.Empty(t, unknown.entries)
	assert.Empty(t, suspended.entries)
}

func TestSendOTP_LockedAccountSendsNothing(t *testing.T) {
	d := setupAuthUC(t)
	member := activeMember()
	until := d.now.Add(20 * time.Minute)
	d.otps.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.OtpRecord{}, nil)
	d.members.EXPECT().GetMemberByPhone(gomock.Any(), gomock.Any()).Return(member, nil)
	d.locks.EXPECT().Status(gomock.Any(), member.ID).
		Return(models.AccountLockState{AccountID: member.ID, LockedUntil: &until, RemainingMinutes: 20}, nil)
	// no SendOTP expectation: a locked account gets the generic answer only

	resp, err := d.uc.SendOTP(context.Background(), "0501234567")

	require.NoError(t, err)
	assert.Equal(t, d.uc.otpAccepted(), resp)
	assert.Empty(t, d.entries)
}

func TestSendOTP_Validation(t *testing.T) {
	d := setupAuthUC(t)

	_, err := d.uc.SendOTP(context.Background(), "  ")
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = d.uc.SendOTP(context.Background(), "12ab")
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestSendOTP_Cooldown(t *testing.T) {
	d := setupAuthUC(t)
	d.otps.EXPECT().Issue(gomock.Any(), "966501234567", gomock.Any()).
		Return(nil, apperror.NewRateLimitError("Please wait before requesting a new code", 42*time.Second))

	_, err := d.uc.SendOTP(context.Background(), "+966 50 123 4567")

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindRateLimit, appErr.Kind)
	assert.Equal(t, 42, appErr.RetryAfterSeconds())
}

func TestSendOTP_DeliveryFailureDiscardsCode(t *testing.T) {
	d := setupAuthUC(t)
	d.otps.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.OtpRecord{}, nil)
	d.members.EXPECT().GetMemberByPhone(gomock.Any(), gomock.Any()).Return(activeMember(), nil)
	d.locks.EXPECT().Status(gomock.Any(), gomock.Any()).Return(models.AccountLockState{}, nil)
	d.sender.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.DispatchResult{
		Attempts: []models.DeliveryResult{
			{Channel: models.ChannelWhatsApp, ErrorCode: models.ErrCodeConfigurationMissing},
			{Channel: models.ChannelSMS, ErrorCode: models.ErrCodeTransientFailure},
		},
	})
	d.otps.EXPECT().Delete(gomock.Any(), "966501234567").Return(nil)

	_, err := d.uc.SendOTP(context.Background(), "0501234567")

	assert.True(t, apperror.Is(err, apperror.KindDelivery))
	assert.Empty(t, d.entries)
}

func TestSendOTP_AllowUndeliveredOutsideProduction(t *testing.T) {
	d := setupAuthUC(t)
	d.cfg.OTP.AllowUndelivered = true
	d.otps.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.OtpRecord{}, nil)
	d.members.EXPECT().GetMemberByPhone(gomock.Any(), gomock.Any()).Return(activeMember(), nil)
	d.locks.EXPECT().Status(gomock.Any(), gomock.Any()).Return(models.AccountLockState{}, nil)
	d.sender.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.DispatchResult{})

	resp, err := d.uc.SendOTP(context.Background(), "0501234567")

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, false, d.entries[0].Details["delivered"])
}

func TestSendOTP_AllowUndeliveredIgnoredInProduction(t *testing.T) {
	d := setupAuthUC(t)
	d.cfg.OTP.AllowUndelivered = true
	d.cfg.App.Environment = "production"
	d.otps.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.OtpRecord{}, nil)
	d.members.EXPECT().GetMemberByPhone(gomock.Any(), gomock.Any()).Return(activeMember(), nil)
	d.locks.EXPECT().Status(gomock.Any(), gomock.Any()).Return(models.AccountLockState{}, nil)
	d.sender.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.DispatchResult{})
	d.otps.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	_, err := d.uc.SendOTP(context.Background(), "0501234567")

	assert.True(t, apperror.Is(err, apperror.KindDelivery))
}

func TestSendOTP_LookupErrorDiscardsCode(t *testing.T) {
	d := setupAuthUC(t)
	d.otps.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.OtpRecord{}, nil)
	d.members.EXPECT().GetMemberByPhone(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
	d.otps.EXPECT().Delete(gomock.Any(), "966501234567").Return(nil)

	_, err := d.uc.SendOTP(context.Background(), "0501234567")

	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
}

func TestResendOTP_RecordsResend(t *testing.T) {
	d := setupAuthUC(t)
	d.otps.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.OtpRecord{}, nil)
	d.members.EXPECT().GetMemberByPhone(gomock.Any(), gomock.Any()).Return(activeMember(), nil)
	d.locks.EXPECT().Status(gomock.Any(), gomock.Any()).Return(models.AccountLockState{}, nil)
	d.sender.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.DispatchResult{Success: true, DeliveredVia: models.ChannelSMS})

	resp, err := d.uc.ResendOTP(context.Background(), "0501234567")

	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.Len(t, d.entries, 1)
	assert.Equal(t, true, d.entries[0].Details["resend"])
}

func TestVerifyOTP_Success(t *testing.T) {
	// Arrange
	d := setupAuthUC(t)
	member := activeMember()

	d.otps.EXPECT().Verify(gomock.Any(), "966501234567", "123456").
		Return(models.OtpVerifyResult{Status: models.OtpVerified}, nil)
	d.members.EXPECT().GetMemberByPhone(gomock.Any(), "966501234567").Return(member, nil)
	d.locks.EXPECT().Status(gomock.Any(), member.ID).Return(unlocked(member.ID), nil)
	d.members.EXPECT().RecordLogin(gomock.Any(), member.ID, MethodOTP).Return(nil)

	// Act
	resp, err := d.uc.VerifyOTP(context.Background(), "0501234567", " 123456 ")

	// Assert
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, member.ID, resp.User.ID)
	assert.Equal(t, "M-1001", resp.User.MembershipNumber)
	assert.NotNil(t, resp.User.JoinDate)

	claims, err := d.issuer.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, member.ID, claims.UserID)
	assert.Equal(t, models.RoleMember, claims.Role)
	assert.Equal(t, claims.ExpiresAt.Unix(), resp.ExpiresAt)

	assert.Equal(t, []models.SecurityAction{models.ActionLoginSuccess}, d.actions())
}

func TestVerifyOTP_FailuresShareOneShape(t *testing.T) {
	statuses := []models.OtpVerifyResult{
		{Status: models.OtpNotFound},
		{Status: models.OtpExpired},
		{Status: models.OtpAttemptsExceeded},
		{Status: models.OtpMismatch, RemainingAttempts: 2},
	}

	for _, res := range statuses {
		t.Run(string(res.Status), func(t *testing.T) {
			d := setupAuthUC(t)
			d.otps.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(res, nil)

			_, err := d.uc.VerifyOTP(context.Background(), "0501234567", "000000")

			appErr, ok := apperror.As(err)
			require.True(t, ok)
			assert.Equal(t, apperror.KindAuthentication, appErr.Kind)
			assert.Equal(t, msgInvalidOTP, appErr.Message)
			if res.Status == models.OtpMismatch {
				assert.Equal(t, 2, appErr.RemainingAttempts)
			} else {
				assert.Equal(t, -1, appErr.RemainingAttempts)
			}
			assert.Equal(t, []models.SecurityAction{models.ActionOTPVerificationFailed}, d.actions())
		})
	}
}

func TestVerifyOTP_UnregisteredPhoneIsGeneric(t *testing.T) {
	d := setupAuthUC(t)
	d.otps.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.OtpVerifyResult{Status: models.OtpVerified}, nil)
	d.members.EXPECT().GetMemberByPhone(gomock.Any(), gomock.Any()).
		Return(nil, apperror.NewNotFoundError("member not found"))

	_, err := d.uc.VerifyOTP(context.Background(), "0509999999", "123456")

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindAuthentication, appErr.Kind)
	assert.Equal(t, msgInvalidOTP, appErr.Message)
}

func TestVerifyOTP_LockedAccount(t *testing.T) {
	d := setupAuthUC(t)
	member := activeMember()
	until := d.now.Add(12 * time.Minute)

	d.otps.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.OtpVerifyResult{Status: models.OtpVerified}, nil)
	d.members.EXPECT().GetMemberByPhone(gomock.Any(), gomock.Any()).Return(member, nil)
	d.locks.EXPECT().Status(gomock.Any(), member.ID).
		Return(models.AccountLockState{AccountID: member.ID, LockedUntil: &until, RemainingMinutes: 12}, nil)

	_, err := d.uc.VerifyOTP(context.Background(), "0501234567", "123456")

	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindAuthentication))
	assert.Contains(t, err.Error(), "12 minutes")
}

func TestVerifyOTP_MissingFields(t *testing.T) {
	d := setupAuthUC(t)

	_, err := d.uc.VerifyOTP(context.Background(), "0501234567", "")
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = d.uc.VerifyOTP(context.Background(), "", "123456")
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestVerifyOTP_StoreError(t *testing.T) {
	d := setupAuthUC(t)
	d.otps.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.OtpVerifyResult{}, errors.New("redis: connection refused"))

	_, err := d.uc.VerifyOTP(context.Background(), "0501234567", "123456")

	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
}

func TestOTPStatus(t *testing.T) {
	d := setupAuthUC(t)
	d.cfg.OTP.UseTestCode = true
	d.sender.EXPECT().Status().Return(map[models.Channel]bool{
		models.ChannelWhatsApp: false,
		models.ChannelSMS:      true,
	})

	status := d.uc.OTPStatus(context.Background())

	assert.True(t, status.TestMode)
	assert.Equal(t, 6, status.Length)
	assert.Equal(t, 300, status.TTL)
	assert.True(t, status.Channels[models.ChannelSMS])
	assert.False(t, status.Channels[models.ChannelWhatsApp])
}
