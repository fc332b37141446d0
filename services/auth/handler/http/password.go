package http

import (
	"net/http"

	"github.com/alshuail/authnotify/internal/pkg/middleware"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/alshuail/authnotify/internal/utils"
	"github.com/alshuail/authnotify/services/auth"
	"github.com/labstack/echo/v4"
)

// PasswordHandler handles password sign-in and management
type PasswordHandler struct {
	authUC auth.AuthUC
}

// NewPasswordHandler creates a new password handler
func NewPasswordHandler(authUC auth.AuthUC) *PasswordHandler {
	return &PasswordHandler{
		authUC: authUC,
	}
}

// Login handles POST /auth/password/login
func (h *PasswordHandler) Login(c echo.Context) error {
	var req models.PasswordLoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.LoginWithPassword(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Status handles POST /auth/password/status
func (h *PasswordHandler) Status(c echo.Context) error {
	var req models.PasswordStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	status, err := h.authUC.PasswordStatus(c.Request().Context(), req.Phone)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", status)
}

// Reset handles POST /auth/password/reset
func (h *PasswordHandler) Reset(c echo.Context) error {
	var req models.PasswordResetRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.authUC.ResetPassword(c.Request().Context(), &req); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Password has been reset", nil)
}

// Create handles POST /auth/password for the authenticated member
func (h *PasswordHandler) Create(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.authUC.CreatePassword(c.Request().Context(), claims.UserID, &req); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Password saved", nil)
}
