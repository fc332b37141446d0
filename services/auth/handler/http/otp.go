package http

import (
	"net/http"

	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/alshuail/authnotify/internal/utils"
	"github.com/alshuail/authnotify/services/auth"
	"github.com/labstack/echo/v4"
)

// OTPHandler handles passcode requests
type OTPHandler struct {
	authUC auth.AuthUC
}

// NewOTPHandler creates a new passcode handler
func NewOTPHandler(authUC auth.AuthUC) *OTPHandler {
	return &OTPHandler{
		authUC: authUC,
	}
}

// SendOTP handles POST /otp/send
func (h *OTPHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for passcode send",
			logger.Err(err),
			logger.String("endpoint", "SendOTP"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.SendOTP(c.Request().Context(), req.Phone)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ResendOTP handles POST /otp/resend
func (h *OTPHandler) ResendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.ResendOTP(c.Request().Context(), req.Phone)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// VerifyOTP handles POST /otp/verify
func (h *OTPHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.VerifyOTP(c.Request().Context(), req.Phone, req.OTP)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Status handles GET /otp/status
func (h *OTPHandler) Status(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "OTP service status", h.authUC.OTPStatus(c.Request().Context()))
}
