package http

import (
	"net/http"

	"github.com/alshuail/authnotify/internal/pkg/middleware"
	"github.com/alshuail/authnotify/internal/utils"
	"github.com/alshuail/authnotify/services/auth"
	"github.com/labstack/echo/v4"
)

// AdminHandler handles administrative credential operations
type AdminHandler struct {
	authUC auth.AuthUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(authUC auth.AuthUC) *AdminHandler {
	return &AdminHandler{
		authUC: authUC,
	}
}

// DeletePassword handles DELETE /admin/members/:id/password
func (h *AdminHandler) DeletePassword(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.authUC.DeletePassword(c.Request().Context(), claims.UserID, c.Param("id")); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Password deleted", nil)
}

// DeleteFaceID handles DELETE /admin/members/:id/face-id
func (h *AdminHandler) DeleteFaceID(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.authUC.DeleteFaceID(c.Request().Context(), claims.UserID, c.Param("id")); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Face ID deleted", nil)
}

// MemberSecurity handles GET /admin/members/:id/security
func (h *AdminHandler) MemberSecurity(c echo.Context) error {
	info, err := h.authUC.MemberSecurity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", info)
}
