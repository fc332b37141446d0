package models

import (
	"time"
)

// OtpRecord is the stored state of one issued passcode, keyed by normalized phone
type OtpRecord struct {
	Key       string    `json:"key"`
	CodeHash  string    `json:"code_hash"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Attempts  int       `json:"attempts"`
}

// Expired reports whether the record is past its lifetime at now
func (r *OtpRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// OtpVerifyStatus is the outcome of a verification attempt against the store
type OtpVerifyStatus string

const (
	OtpVerified         OtpVerifyStatus = "ok"
	OtpNotFound         OtpVerifyStatus = "not_found"
	OtpExpired          OtpVerifyStatus = "expired"
	OtpMismatch         OtpVerifyStatus = "mismatch"
	OtpAttemptsExceeded OtpVerifyStatus = "attempts_exceeded"
)

// OtpVerifyResult carries the verification outcome and the remaining attempts on mismatch
type OtpVerifyResult struct {
	Status            OtpVerifyStatus
	RemainingAttempts int
}

// OK reports whether the candidate matched and the record was consumed
func (r OtpVerifyResult) OK() bool {
	return r.Status == OtpVerified
}

// SendOTPRequest represents a request to send or resend a passcode
type SendOTPRequest struct {
	Phone string `json:"phone"`
}

// VerifyOTPRequest represents a request to verify a passcode
type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

// SendOTPResponse is returned for every accepted send, registered or not
type SendOTPResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ExpiresIn int    `json:"expiresIn"`
	TestMode  bool   `json:"testMode,omitempty"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Success            bool           `json:"success"`
	Message            string         `json:"message,omitempty"`
	Token              string         `json:"token"`
	ExpiresAt          int64          `json:"expiresAt"`
	User               *MemberProfile `json:"user"`
	MustChangePassword bool           `json:"mustChangePassword,omitempty"`
}

// OTPStatusResponse describes which delivery channels the auth service can use
type OTPStatusResponse struct {
	Channels map[Channel]bool `json:"channels"`
	TestMode bool             `json:"testMode"`
	Length   int              `json:"otpLength"`
	TTL      int              `json:"expiresIn"`
}
