package models

import (
	"time"
)

// Severity classifies a security audit entry
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// SecurityAction names a security-relevant action recorded in the audit trail
type SecurityAction string

const (
	ActionLoginSuccess           SecurityAction = "login_success"
	ActionLoginFailed            SecurityAction = "login_failed"
	ActionOTPRequested           SecurityAction = "otp_requested"
	ActionOTPVerificationFailed  SecurityAction = "otp_verification_failed"
	ActionAccountLocked          SecurityAction = "account_locked"
	ActionPasswordCreated        SecurityAction = "password_created"
	ActionPasswordChanged        SecurityAction = "password_changed"
	ActionPasswordResetRequested SecurityAction = "password_reset_requested"
	ActionPasswordDeletedByAdmin SecurityAction = "password_deleted_by_admin"
	ActionFaceIDEnabled          SecurityAction = "face_id_enabled"
	ActionFaceIDDisabled         SecurityAction = "face_id_disabled"
	ActionFaceIDDeletedByAdmin   SecurityAction = "face_id_deleted_by_admin"
)

// SecurityAuditEntry is one append-only record of the security audit trail
type SecurityAuditEntry struct {
	ID          int64                  `json:"id,omitempty" db:"id"`
	AccountID   string                 `json:"account_id" db:"member_id"`
	ActionType  SecurityAction         `json:"action_type" db:"action_type"`
	PerformedBy string                 `json:"performed_by,omitempty" db:"performed_by"`
	Severity    Severity               `json:"severity" db:"severity"`
	Details     map[string]interface{} `json:"details,omitempty" db:"-"`
	IPAddress   string                 `json:"ip_address,omitempty" db:"ip_address"`
	Timestamp   time.Time              `json:"timestamp" db:"created_at"`
}

// AccountLockState is the lockout state of one account
type AccountLockState struct {
	AccountID        string     `json:"accountId"`
	FailedAttempts   int        `json:"failedAttempts"`
	LockedUntil      *time.Time `json:"lockedUntil,omitempty"`
	RemainingMinutes int        `json:"remainingMinutes,omitempty"`
}

// Locked reports whether the lock window is still open at now
func (s AccountLockState) Locked(now time.Time) bool {
	return s.LockedUntil != nil && s.LockedUntil.After(now)
}
