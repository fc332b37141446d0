package http

import (
	"net/http"

	"github.com/alshuail/authnotify/internal/pkg/middleware"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/alshuail/authnotify/internal/utils"
	"github.com/alshuail/authnotify/services/auth"
	"github.com/labstack/echo/v4"
)

// FaceIDHandler handles biometric sign-in and enrollment
type FaceIDHandler struct {
	authUC auth.AuthUC
}

// NewFaceIDHandler creates a new biometric handler
func NewFaceIDHandler(authUC auth.AuthUC) *FaceIDHandler {
	return &FaceIDHandler{
		authUC: authUC,
	}
}

// Login handles POST /auth/face-id/login
func (h *FaceIDHandler) Login(c echo.Context) error {
	var req models.FaceIDLoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.LoginWithFaceID(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Enable handles POST /auth/face-id/enable
func (h *FaceIDHandler) Enable(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.EnableFaceIDRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.authUC.EnableFaceID(c.Request().Context(), claims.UserID, &req); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Face ID enabled", nil)
}

// Disable handles DELETE /auth/face-id
func (h *FaceIDHandler) Disable(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.authUC.DisableFaceID(c.Request().Context(), claims.UserID); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Face ID disabled", nil)
}
