package utils

import (
	"net/http"
	"strconv"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success           bool   `json:"success"`
	Error             string `json:"error"`
	Code              int    `json:"code,omitempty"`
	RetryAfter        int    `json:"retryAfter,omitempty"`
	RemainingAttempts *int   `json:"remainingAttempts,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// TooManyRequestsResponse sends a 429 response with Retry-After set
func TooManyRequestsResponse(c echo.Context, errorMessage string, retryAfterSeconds int) error {
	c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
	return c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Success:    false,
		Error:      errorMessage,
		Code:       http.StatusTooManyRequests,
		RetryAfter: retryAfterSeconds,
	})
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// HandleError maps a usecase error to its response; internal causes are logged, never echoed
func HandleError(c echo.Context, err error) error {
	appErr, ok := apperror.As(err)
	if !ok {
		logger.Error("Unhandled error",
			logger.String("path", c.Path()),
			logger.Err(err))
		return InternalServerErrorResponse(c, "")
	}

	switch appErr.Kind {
	case apperror.KindRateLimit:
		return TooManyRequestsResponse(c, appErr.Message, appErr.RetryAfterSeconds())
	case apperror.KindAuthentication:
		resp := ErrorResponse{
			Success: false,
			Error:   appErr.Message,
			Code:    http.StatusUnauthorized,
		}
		if appErr.RemainingAttempts >= 0 {
			remaining := appErr.RemainingAttempts
			resp.RemainingAttempts = &remaining
		}
		return c.JSON(http.StatusUnauthorized, resp)
	case apperror.KindInternal, apperror.KindConfiguration:
		logger.Error("Request failed",
			logger.String("path", c.Path()),
			logger.String("kind", appErr.Kind.String()),
			logger.Err(err))
		return InternalServerErrorResponse(c, "")
	case apperror.KindDelivery:
		logger.Warn("Delivery failed",
			logger.String("path", c.Path()),
			logger.Err(err))
		return ErrorResponseHandler(c, http.StatusServiceUnavailable, appErr.Message)
	default:
		return ErrorResponseHandler(c, appErr.Kind.HTTPStatus(), appErr.Message)
	}
}
