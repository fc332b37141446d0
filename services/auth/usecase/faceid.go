package usecase

import (
	"context"
	"strings"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/alshuail/authnotify/internal/utils"
)

const (
	msgFaceIDFailed = "Face ID verification failed"
	// tokens shorter than this are rejected at enrollment
	minFaceIDTokenLength = 16
)

// LoginWithFaceID signs a member in with a biometric token
func (u *AuthUC) LoginWithFaceID(ctx context.Context, req *models.FaceIDLoginRequest) (*models.AuthResponse, error) {
	if req == nil || strings.TrimSpace(req.MemberID) == "" || req.FaceIDToken == "" {
		return nil, apperror.NewValidationError("memberId and faceIdToken are required")
	}

	member, err := u.members.GetMemberByID(ctx, req.MemberID)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, apperror.NewAuthenticationError(msgFaceIDFailed)
		}
		return nil, repoError(err, "failed to look up member")
	}
	if !member.CanLogin() {
		return nil, apperror.NewForbiddenError("Account is not active")
	}
	if err := u.checkLock(ctx, member.ID); err != nil {
		return nil, err
	}
	if !member.HasFaceID || !member.FaceIDHash.Valid {
		return nil, apperror.NewValidationError("Face ID is not enabled for this account")
	}

	if !utils.SecretMatches(req.FaceIDToken, member.FaceIDHash.String) {
		return nil, u.loginFailed(ctx, member, MethodFaceID, msgFaceIDFailed)
	}

	u.resetFailures(ctx, member.ID)
	return u.issueSession(ctx, member, MethodFaceID)
}

// EnableFaceID stores the digest of the caller's biometric token
func (u *AuthUC) EnableFaceID(ctx context.Context, memberID string, req *models.EnableFaceIDRequest) error {
	if req == nil || req.FaceIDToken == "" {
		return apperror.NewValidationError("faceIdToken is required")
	}
	if len(req.FaceIDToken) < minFaceIDTokenLength {
		return apperror.NewValidationError("faceIdToken is too short")
	}

	if err := u.members.SetFaceIDHash(ctx, memberID, utils.HashSecret(req.FaceIDToken)); err != nil {
		return repoError(err, "failed to enable face id")
	}

	u.record(ctx, memberID, memberID, models.ActionFaceIDEnabled, nil)
	return nil
}

// DisableFaceID removes the caller's biometric credential
func (u *AuthUC) DisableFaceID(ctx context.Context, memberID string) error {
	if err := u.members.ClearFaceID(ctx, memberID); err != nil {
		return repoError(err, "failed to disable face id")
	}

	u.record(ctx, memberID, memberID, models.ActionFaceIDDisabled, nil)
	return nil
}
