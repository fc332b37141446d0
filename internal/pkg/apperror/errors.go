package apperror

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"
)

// Kind classifies an error for transport mapping
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindRateLimit
	KindAuthentication
	KindForbidden
	KindNotFound
	KindConfiguration
	KindDelivery
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindRateLimit:
		return "rate_limit"
	case KindAuthentication:
		return "authentication"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConfiguration:
		return "configuration"
	case KindDelivery:
		return "delivery"
	default:
		return "internal"
	}
}

// HTTPStatus maps the kind to a response status code
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindRateLimit:
		return http.StatusTooManyRequests
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindDelivery:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is the typed error returned by usecases
type Error struct {
	Kind    Kind
	Message string
	// RetryAfter is set for rate-limit errors
	RetryAfter time.Duration
	// RemainingAttempts is an optional hint on authentication failures; -1 when absent
	RemainingAttempts int
	Err               error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// RetryAfterSeconds rounds RetryAfter up to whole seconds, never below one
func (e *Error) RetryAfterSeconds() int {
	secs := int(math.Ceil(e.RetryAfter.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return secs
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg, RemainingAttempts: -1}
}

// NewValidationError reports missing or malformed input
func NewValidationError(msg string) *Error {
	return newError(KindValidation, msg)
}

// NewRateLimitError reports an active cooldown
func NewRateLimitError(msg string, retryAfter time.Duration) *Error {
	e := newError(KindRateLimit, msg)
	e.RetryAfter = retryAfter
	return e
}

// NewAuthenticationError reports a failed credential check without revealing why
func NewAuthenticationError(msg string) *Error {
	return newError(KindAuthentication, msg)
}

// NewForbiddenError reports an authenticated caller without the required role
func NewForbiddenError(msg string) *Error {
	return newError(KindForbidden, msg)
}

// NewNotFoundError reports a missing resource on administrative routes
func NewNotFoundError(msg string) *Error {
	return newError(KindNotFound, msg)
}

// NewConfigurationError reports a missing secret or credential
func NewConfigurationError(msg string) *Error {
	return newError(KindConfiguration, msg)
}

// NewDeliveryError reports that every delivery channel was exhausted
func NewDeliveryError(msg string, err error) *Error {
	e := newError(KindDelivery, msg)
	e.Err = err
	return e
}

// Wrap attaches a cause to an internal error
func Wrap(err error, msg string) *Error {
	e := newError(KindInternal, msg)
	e.Err = err
	return e
}

// As extracts an *Error from the chain
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the kind of err, KindInternal for foreign errors
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
