package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginWithPassword(t *testing.T) {
	testCases := []struct {
		name       string
		req        *models.PasswordLoginRequest
		setup      func(t *testing.T, d *authTestDeps)
		assertFunc func(t *testing.T, d *authTestDeps, resp *models.AuthResponse, err error)
	}{
		{
			name: "Success resets failures",
			req:  &models.PasswordLoginRequest{Phone: "0501234567", Password: "s3cret!"},
			setup: func(t *testing.T, d *authTestDeps) {
				member := memberWithPassword(t, "s3cret!")
				member.MustChangePassword = true
				d.members.EXPECT().GetMemberByPhone(gomock.Any(), "966501234567").Return(member, nil)
				d.locks.EXPECT().Status(gomock.Any(), member.ID).Return(unlocked(member.ID), nil)
				d.locks.EXPECT().Reset(gomock.Any(), member.ID).Return(nil)
				d.members.EXPECT().RecordLogin(gomock.Any(), member.ID, MethodPassword).Return(nil)
			},
			assertFunc: func(t *testing.T, d *authTestDeps, resp *models.AuthResponse, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, resp.Token)
				assert.True(t, resp.MustChangePassword)
				assert.Equal(t, []models.SecurityAction{models.ActionLoginSuccess}, d.actions())
				assert.Equal(t, MethodPassword, d.entries[0].Details["method"])
			},
		},
		{
			name: "Unknown phone is generic",
			req:  &models.PasswordLoginRequest{Phone: "0509999999", Password: "whatever"},
			setup: func(t *testing.T, d *authTestDeps) {
				d.members.EXPECT().GetMemberByPhone(gomock.Any(), gomock.Any()).
					Return(nil, apperror.NewNotFoundError("member not found"))
			},
			assertFunc: func(t *testing.T, d *authTestDeps, resp *models.AuthResponse, err error) {
				appErr, ok := apperror.As(err)
				require.True(t, ok)
				assert.Equal(t, apperror.KindAuthentication, appErr.Kind)
				assert.Equal(t, msgInvalidCredentials, appErr.Message)
			},
		},
		{
			name: "Inactive member forbidden",
			req:  &models.PasswordLoginRequest{Phone: "0501234567", Password: "s3cret!"},
			setup: func(t *testing.T, d *authTestDeps) {
				member := memberWithPassword(t, "s3cret!")
				member.IsActive = false
				d.members.EXPECT().GetMemberByPhone(gomock.Any(), gomock.Any()).Return(member, nil)
			},
			assertFunc: func(t *testing.T, d *authTestDeps, resp *models.AuthResponse, err error) {
				assert.True(t, apperror.Is(err, apperror.KindForbidden))
			},
		},
		{
			name: "No password set",
			req:  &models.PasswordLoginRequest{Phone: "0501234567", Password: "s3cret!"},
			setup: func(t *testing.T, d *authTestDeps) {
				member := activeMember()
				d.members.EXPECT().GetMemberByPhone(gomock.Any(), gomock.Any()).Return(member, nil)
				d.locks.EXPECT().Status(gomock.Any(), member.ID).Return(unlocked(member.ID), nil)
			},
			assertFunc: func(t *testing.T, d *authTestDeps, resp *models.AuthResponse, err error) {
				assert.True(t, apperror.Is(err, apperror.KindValidation))
				assert.Contains(t, err.Error(), "password setup")
			},
		},
		{
			name: "Wrong password counts a failure",
			req:  &models.PasswordLoginRequest{Phone: "0501234567", Password: "wrong"},
			setup: func(t *testing.T, d *authTestDeps) {
				member := memberWithPassword(t, "s3cret!")
				d.members.EXPECT().GetMemberByPhone(gomock.Any(), gomock.Any()).Return(member, nil)
				d.locks.EXPECT().Status(gomock.Any(), member.ID).Return(unlocked(member.ID), nil)
				d.locks.EXPECT().RecordFailure(gomock.Any(), member.ID).
					Return(models.AccountLockState{AccountID: member.ID, FailedAttempts: 3}, false, nil)
			},
			assertFunc: func(t *testing.T, d *authTestDeps, resp *models.AuthResponse, err error) {
				appErr, ok := apperror.As(err)
				require.True(t, ok)
				assert.Equal(t, apperror.KindAuthentication, appErr.Kind)
				assert.Equal(t, 2, appErr.RemainingAttempts)
				assert.Equal(t, []models.SecurityAction{models.ActionLoginFailed}, d.actions())
			},
		},
		{
			name: "Fifth failure locks",
			req:  &models.PasswordLoginRequest{Phone: "0501234567", Password: "wrong"},
			setup: func(t *testing.T, d *authTestDeps) {
				member := memberWithPassword(t, "s3cret!")
				until := d.now.Add(30 * time.Minute)
				d.members.EXPECT().GetMemberByPhone(gomock.Any(), gomock.Any()).Return(member, nil)
				d.locks.EXPECT().Status(gomock.Any(), member.ID).Return(unlocked(member.ID), nil)
				d.locks.EXPECT().RecordFailure(gomock.Any(), member.ID).
					Return(models.AccountLockState{AccountID: member.ID, FailedAttempts: 5, LockedUntil: &until, RemainingMinutes: 30}, true, nil)
			},
			assertFunc: func(t *testing.T, d *authTestDeps, resp *models.AuthResponse, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "30 minutes")
				assert.Equal(t, []models.SecurityAction{models.ActionLoginFailed, models.ActionAccountLocked}, d.actions())
				assert.Equal(t, models.SeverityError, d.entries[1].Severity)
			},
		},
		{
			name: "Locked account rejects correct password",
			req:  &models.PasswordLoginRequest{Phone: "0501234567", Password: "s3cret!"},
			setup: func(t *testing.T, d *authTestDeps) {
				member := memberWithPassword(t, "s3cret!")
				until := d.now.Add(10 * time.Minute)
				d.members.EXPECT().GetMemberByPhone(gomock.Any(), gomock.Any()).Return(member, nil)
				d.locks.EXPECT().Status(gomock.Any(), member.ID).
					Return(models.AccountLockState{AccountID: member.ID, LockedUntil: &until, RemainingMinutes: 10}, nil)
			},
			assertFunc: func(t *testing.T, d *authTestDeps, resp *models.AuthResponse, err error) {
				assert.Nil(t, resp)
				assert.True(t, apperror.Is(err, apperror.KindAuthentication))
				assert.Contains(t, err.Error(), "locked")
			},
		},
		{
			name: "Missing fields",
			req:  &models.PasswordLoginRequest{Phone: "0501234567"},
			setup: func(t *testing.T, d *authTestDeps) {},
			assertFunc: func(t *testing.T, d *authTestDeps, resp *models.AuthResponse, err error) {
				assert.True(t, apperror.Is(err, apperror.KindValidation))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := setupAuthUC(t)
			tc.setup(t, d)

			resp, err := d.uc.LoginWithPassword(context.Background(), tc.req)

			tc.assertFunc(t, d, resp, err)
		})
	}
}

func TestPasswordStatus(t *testing.T) {
	t.Run("Unknown phone has the same shape", func(t *testing.T) {
		d := setupAuthUC(t)
		d.members.EXPECT().GetMemberByPhone(gomock.Any(), gomock.Any()).
			Return(nil, apperror.NewNotFoundError("member not found"))

		status, err := d.uc.PasswordStatus(context.Background(), "0509999999")

		require.NoError(t, err)
		assert.Equal(t, &models.PasswordStatusResponse{}, status)
	})

	t.Run("Suspended member cannot use password", func(t *testing.T) {
		d := setupAuthUC(t)
		member := memberWithPassword(t, "s3cret!")
		member.Status = "suspended"
		d.members.EXPECT().GetMemberByPhone(gomock.Any(), gomock.Any()).Return(member, nil)

		status, err := d.uc.PasswordStatus(context.Background(), "0501234567")

		require.NoError(t, err)
		assert.True(t, status.HasPassword)
		assert.False(t, status.CanUsePassword)
	})
}

func TestResetPassword(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		d := setupAuthUC(t)
		member := activeMember()

		d.otps.EXPECT().Verify(gomock.Any(), "966501234567", "123456").
			Return(models.OtpVerifyResult{Status: models.OtpVerified}, nil)
		d.members.EXPECT().GetMemberByPhone(gomock.Any(), "966501234567").Return(member, nil)
		d.members.EXPECT().SetPasswordHash(gomock.Any(), member.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("n3w-pass")))
				return nil
			})
		d.locks.EXPECT().Reset(gomock.Any(), member.ID).Return(nil)

		err := d.uc.ResetPassword(context.Background(), &models.PasswordResetRequest{
			Phone: "0501234567", OTP: "123456", NewPassword: "n3w-pass",
		})

		require.NoError(t, err)
		assert.Equal(t, []models.SecurityAction{models.ActionPasswordResetRequested}, d.actions())
	})

	t.Run("Short password rejected before the code is consumed", func(t *testing.T) {
		d := setupAuthUC(t)

		err := d.uc.ResetPassword(context.Background(), &models.PasswordResetRequest{
			Phone: "0501234567", OTP: "123456", NewPassword: "abc",
		})

		assert.True(t, apperror.Is(err, apperror.KindValidation))
	})

	t.Run("Wrong code", func(t *testing.T) {
		d := setupAuthUC(t)
		d.otps.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.OtpVerifyResult{Status: models.OtpMismatch, RemainingAttempts: 1}, nil)

		err := d.uc.ResetPassword(context.Background(), &models.PasswordResetRequest{
			Phone: "0501234567", OTP: "000000", NewPassword: "n3w-pass",
		})

		assert.True(t, apperror.Is(err, apperror.KindAuthentication))
	})
}

func TestCreatePassword(t *testing.T) {
	t.Run("First password", func(t *testing.T) {
		d := setupAuthUC(t)
		member := activeMember()
		d.members.EXPECT().GetMemberByID(gomock.Any(), member.ID).Return(member, nil)
		d.members.EXPECT().SetPasswordHash(gomock.Any(), member.ID, gomock.Any()).Return(nil)

		err := d.uc.CreatePassword(context.Background(), member.ID, &models.CreatePasswordRequest{NewPassword: "first-pass"})

		require.NoError(t, err)
		assert.Equal(t, []models.SecurityAction{models.ActionPasswordCreated}, d.actions())
	})

	t.Run("Change requires current password", func(t *testing.T) {
		d := setupAuthUC(t)
		member := memberWithPassword(t, "old-pass")
		d.members.EXPECT().GetMemberByID(gomock.Any(), member.ID).Return(member, nil)

		err := d.uc.CreatePassword(context.Background(), member.ID, &models.CreatePasswordRequest{NewPassword: "new-pass"})

		assert.True(t, apperror.Is(err, apperror.KindValidation))
	})

	t.Run("Change with wrong current password", func(t *testing.T) {
		d := setupAuthUC(t)
		member := memberWithPassword(t, "old-pass")
		d.members.EXPECT().GetMemberByID(gomock.Any(), member.ID).Return(member, nil)

		err := d.uc.CreatePassword(context.Background(), member.ID, &models.CreatePasswordRequest{
			CurrentPassword: "nope-nope", NewPassword: "new-pass",
		})

		assert.True(t, apperror.Is(err, apperror.KindAuthentication))
	})

	t.Run("Change with current password", func(t *testing.T) {
		d := setupAuthUC(t)
		member := memberWithPassword(t, "old-pass")
		d.members.EXPECT().GetMemberByID(gomock.Any(), member.ID).Return(member, nil)
		d.members.EXPECT().SetPasswordHash(gomock.Any(), member.ID, gomock.Any()).Return(nil)

		err := d.uc.CreatePassword(context.Background(), member.ID, &models.CreatePasswordRequest{
			CurrentPassword: "old-pass", NewPassword: "new-pass",
		})

		require.NoError(t, err)
		assert.Equal(t, []models.SecurityAction{models.ActionPasswordChanged}, d.actions())
		assert.Equal(t, models.SeverityWarn, d.entries[0].Severity)
	})

	t.Run("Forced change skips current password", func(t *testing.T) {
		d := setupAuthUC(t)
		member := memberWithPassword(t, "temp-pass")
		member.MustChangePassword = true
		d.members.EXPECT().GetMemberByID(gomock.Any(), member.ID).Return(member, nil)
		d.members.EXPECT().SetPasswordHash(gomock.Any(), member.ID, gomock.Any()).Return(nil)

		err := d.uc.CreatePassword(context.Background(), member.ID, &models.CreatePasswordRequest{NewPassword: "new-pass"})

		assert.NoError(t, err)
	})

	t.Run("Unknown member", func(t *testing.T) {
		d := setupAuthUC(t)
		d.members.EXPECT().GetMemberByID(gomock.Any(), "missing").
			Return(nil, apperror.NewNotFoundError("member not found"))

		err := d.uc.CreatePassword(context.Background(), "missing", &models.CreatePasswordRequest{NewPassword: "new-pass"})

		assert.True(t, apperror.Is(err, apperror.KindNotFound))
	})
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, validatePassword("12345"))
	assert.NoError(t, validatePassword("123456"))
	assert.Error(t, validatePassword(string(make([]byte, 73))))
}
