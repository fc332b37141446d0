package constants

// Redis key formats
const (
	// OTP store
	KeyOTP = "otp:%s" // Format: otp:{normalized_phone}

	// Account lock guard
	KeyAccountLock     = "auth:lock:%s"     // Format: auth:lock:{member_id}
	KeyAccountFailures = "auth:failures:%s" // Format: auth:failures:{member_id}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)

// Redis hash fields of an OTP record
const (
	FieldCodeHash  = "code_hash"
	FieldCreatedAt = "created_at"
	FieldExpiresAt = "expires_at"
	FieldAttempts  = "attempts"
)
