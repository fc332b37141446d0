package usecase

import (
	"context"
	"strings"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/alshuail/authnotify/internal/pkg/models"
)

// DeletePassword removes a member's password on behalf of an administrator
func (u *AuthUC) DeletePassword(ctx context.Context, adminID, memberID string) error {
	if strings.TrimSpace(memberID) == "" {
		return apperror.NewValidationError("member id is required")
	}
	if err := u.members.ClearPassword(ctx, memberID); err != nil {
		return repoError(err, "failed to delete password")
	}

	u.record(ctx, memberID, adminID, models.ActionPasswordDeletedByAdmin, nil)
	logger.InfoCtx(ctx, "Password deleted by administrator",
		logger.String("member_id", memberID),
		logger.String("admin_id", adminID))
	return nil
}

// DeleteFaceID removes a member's biometric credential on behalf of an administrator
func (u *AuthUC) DeleteFaceID(ctx context.Context, adminID, memberID string) error {
	if strings.TrimSpace(memberID) == "" {
		return apperror.NewValidationError("member id is required")
	}
	if err := u.members.ClearFaceID(ctx, memberID); err != nil {
		return repoError(err, "failed to delete face id")
	}

	u.record(ctx, memberID, adminID, models.ActionFaceIDDeletedByAdmin, nil)
	logger.InfoCtx(ctx, "Face ID deleted by administrator",
		logger.String("member_id", memberID),
		logger.String("admin_id", adminID))
	return nil
}

// MemberSecurity summarizes a member's credentials and lock state
func (u *AuthUC) MemberSecurity(ctx context.Context, memberID string) (*models.MemberSecurityInfo, error) {
	member, err := u.members.GetMemberByID(ctx, memberID)
	if err != nil {
		return nil, repoError(err, "failed to look up member")
	}

	lock, err := u.locks.Status(ctx, member.ID)
	if err != nil {
		return nil, apperror.Wrap(err, "failed to read lock state")
	}

	info := &models.MemberSecurityInfo{
		MemberID:        member.ID,
		Lock:            lock,
		LastLoginMethod: member.LastLoginMethod.String,
	}
	info.Password.Enabled = member.HasPassword
	if member.PasswordUpdatedAt.Valid {
		t := member.PasswordUpdatedAt.Time
		info.Password.UpdatedAt = &t
	}
	info.FaceID.Enabled = member.HasFaceID
	if member.FaceIDEnabledAt.Valid {
		t := member.FaceIDEnabledAt.Time
		info.FaceID.EnabledAt = &t
	}
	if member.LastLoginAt.Valid {
		t := member.LastLoginAt.Time
		info.LastLoginAt = &t
	}
	return info, nil
}
