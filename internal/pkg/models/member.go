package models

import (
	"database/sql"
	"time"
)

// Member roles
const (
	RoleMember           = "member"
	RoleAdmin            = "admin"
	RoleSuperAdmin       = "super_admin"
	RoleFinancialManager = "financial_manager"
)

// Member is a registered association member as stored in the members table
type Member struct {
	ID                 string          `json:"id" db:"id"`
	Phone              string          `json:"phone" db:"phone"`
	FullName           string          `json:"full_name" db:"full_name"`
	MembershipNumber   sql.NullString  `json:"-" db:"membership_number"`
	Balance            sql.NullFloat64 `json:"-" db:"balance"`
	BranchName         sql.NullString  `json:"-" db:"branch_name"`
	Status             string          `json:"status" db:"status"`
	Role               string          `json:"role" db:"role"`
	IsActive           bool            `json:"is_active" db:"is_active"`
	PasswordHash       sql.NullString  `json:"-" db:"password_hash"`
	HasPassword        bool            `json:"has_password" db:"has_password"`
	PasswordUpdatedAt  sql.NullTime    `json:"-" db:"password_updated_at"`
	MustChangePassword bool            `json:"must_change_password" db:"must_change_password"`
	FaceIDHash         sql.NullString  `json:"-" db:"face_id_hash"`
	HasFaceID          bool            `json:"has_face_id" db:"has_face_id"`
	FaceIDEnabledAt    sql.NullTime    `json:"-" db:"face_id_enabled_at"`
	JoinedAt           sql.NullTime    `json:"-" db:"joined_at"`
	LastLoginAt        sql.NullTime    `json:"-" db:"last_login_at"`
	LastLoginMethod    sql.NullString  `json:"-" db:"last_login_method"`
}

// CanLogin reports whether the member may receive a passcode or sign in
func (m *Member) CanLogin() bool {
	return m.IsActive && m.Status != "suspended"
}

// Profile projects the member into the shape returned to clients
func (m *Member) Profile() *MemberProfile {
	p := &MemberProfile{
		ID:               m.ID,
		Name:             m.FullName,
		Phone:            m.Phone,
		Role:             m.Role,
		Status:           m.Status,
		MembershipNumber: m.MembershipNumber.String,
		BranchName:       m.BranchName.String,
		Balance:          m.Balance.Float64,
	}
	if p.Role == "" {
		p.Role = RoleMember
	}
	if m.JoinedAt.Valid {
		t := m.JoinedAt.Time
		p.JoinDate = &t
	}
	return p
}

// MemberProfile is the public user projection returned after authentication
type MemberProfile struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Phone            string     `json:"phone"`
	Role             string     `json:"role"`
	MembershipNumber string     `json:"membershipNumber,omitempty"`
	Balance          float64    `json:"balance"`
	BranchName       string     `json:"branchName,omitempty"`
	Status           string     `json:"status,omitempty"`
	JoinDate         *time.Time `json:"joinDate,omitempty"`
}

// PasswordLoginRequest represents a password sign-in
type PasswordLoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// PasswordStatusRequest asks whether a phone can use password sign-in
type PasswordStatusRequest struct {
	Phone string `json:"phone"`
}

// PasswordStatusResponse is identical in shape for unknown phones
type PasswordStatusResponse struct {
	HasPassword    bool `json:"hasPassword"`
	CanUsePassword bool `json:"canUsePassword"`
}

// PasswordResetRequest sets a new password after passcode verification
type PasswordResetRequest struct {
	Phone       string `json:"phone"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// CreatePasswordRequest sets or changes the caller's own password
type CreatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword"`
}

// FaceIDLoginRequest represents a biometric sign-in
type FaceIDLoginRequest struct {
	MemberID    string `json:"memberId"`
	FaceIDToken string `json:"faceIdToken"`
}

// EnableFaceIDRequest registers a biometric credential for the caller
type EnableFaceIDRequest struct {
	FaceIDToken string `json:"faceIdToken"`
}

// MemberSecurityInfo summarizes credential and lock status for administrators
type MemberSecurityInfo struct {
	MemberID string `json:"memberId"`
	Password struct {
		Enabled   bool       `json:"enabled"`
		UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	} `json:"password"`
	FaceID struct {
		Enabled   bool       `json:"enabled"`
		EnabledAt *time.Time `json:"enabledAt,omitempty"`
	} `json:"faceId"`
	Lock            AccountLockState `json:"lock"`
	LastLoginAt     *time.Time       `json:"lastLoginAt,omitempty"`
	LastLoginMethod string           `json:"lastLoginMethod,omitempty"`
}
