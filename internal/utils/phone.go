package utils

import (
	"errors"
	"regexp"
	"strings"
)

// Country calling codes accepted by the association
const (
	SaudiCountryCode  = "966"
	KuwaitCountryCode = "965"
)

// ErrInvalidPhone is returned when a number cannot be canonicalized
var ErrInvalidPhone = errors.New("invalid phone number format")

var (
	phoneSeparators = regexp.MustCompile(`[\s\-\(\)\+\.]`)
	digitsOnly      = regexp.MustCompile(`^\d+$`)
	saudiLocal      = regexp.MustCompile(`^05\d{8}$`)
	saudiShort      = regexp.MustCompile(`^5\d{8}$`)
	kuwaitLocal     = regexp.MustCompile(`^[569]\d{7}$`)
)

// NormalizePhone canonicalizes a phone number to one international digit string
// without a leading plus, e.g. "0501234567" -> "966501234567"
func NormalizePhone(raw string) (string, error) {
	stripped := phoneSeparators.ReplaceAllString(strings.TrimSpace(raw), "")
	if stripped == "" || !digitsOnly.MatchString(stripped) {
		return "", ErrInvalidPhone
	}

	// International dialing prefix
	if strings.HasPrefix(stripped, "00") {
		stripped = stripped[2:]
	}

	var normalized string
	switch {
	case saudiLocal.MatchString(stripped):
		normalized = SaudiCountryCode + stripped[1:]
	case saudiShort.MatchString(stripped):
		normalized = SaudiCountryCode + stripped
	case kuwaitLocal.MatchString(stripped):
		normalized = KuwaitCountryCode + stripped
	case strings.HasPrefix(stripped, SaudiCountryCode), strings.HasPrefix(stripped, KuwaitCountryCode):
		normalized = stripped
	case len(stripped) >= 11:
		normalized = stripped
	default:
		return "", ErrInvalidPhone
	}

	if len(normalized) < 11 || len(normalized) > 15 {
		return "", ErrInvalidPhone
	}

	return normalized, nil
}
