package handler

import (
	"time"

	"github.com/alshuail/authnotify/internal/pkg/jwt"
	"github.com/alshuail/authnotify/internal/pkg/middleware"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/alshuail/authnotify/services/auth/handler/http"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
)

// Passcode endpoints share one IP window
const (
	otpRateLimit  = 10
	otpRatePeriod = 15 * time.Minute

	loginRateLimit  = 20
	loginRatePeriod = 15 * time.Minute
)

// Handler coordinates all protocol handlers for the auth service
type Handler struct {
	otpHandler      *http.OTPHandler
	passwordHandler *http.PasswordHandler
	faceIDHandler   *http.FaceIDHandler
	adminHandler    *http.AdminHandler
	issuer          *jwt.Issuer
	redisClient     *redis.Client
}

// NewHandler creates and initializes all handlers
func NewHandler(
	otpHandler *http.OTPHandler,
	passwordHandler *http.PasswordHandler,
	faceIDHandler *http.FaceIDHandler,
	adminHandler *http.AdminHandler,
	issuer *jwt.Issuer,
	redisClient *redis.Client,
) *Handler {
	return &Handler{
		otpHandler:      otpHandler,
		passwordHandler: passwordHandler,
		faceIDHandler:   faceIDHandler,
		adminHandler:    adminHandler,
		issuer:          issuer,
		redisClient:     redisClient,
	}
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public passcode routes
	otpGroup := e.Group("/otp")
	otpGroup.GET("/status", h.otpHandler.Status)

	limited := otpGroup.Group("", middleware.IPRateLimiter(otpRateLimit, otpRatePeriod, h.redisClient))
	limited.POST("/send", h.otpHandler.SendOTP)
	limited.POST("/resend", h.otpHandler.ResendOTP)
	limited.POST("/verify", h.otpHandler.VerifyOTP)

	// Public credential routes
	authGroup := e.Group("/auth", middleware.IPRateLimiter(loginRateLimit, loginRatePeriod, h.redisClient))
	authGroup.POST("/password/login", h.passwordHandler.Login)
	authGroup.POST("/password/status", h.passwordHandler.Status)
	authGroup.POST("/password/reset", h.passwordHandler.Reset)
	authGroup.POST("/face-id/login", h.faceIDHandler.Login)

	// Protected routes with JWT middleware (member-facing)
	protected := e.Group("/auth", middleware.JWTAuthMiddleware(h.issuer))
	protected.POST("/password", h.passwordHandler.Create)
	protected.POST("/face-id/enable", h.faceIDHandler.Enable)
	protected.DELETE("/face-id", h.faceIDHandler.Disable)

	// Administrative routes
	admin := e.Group("/admin/members", middleware.JWTAuthMiddleware(h.issuer))
	admin.DELETE("/:id/password", h.adminHandler.DeletePassword, middleware.RequireRole(models.RoleSuperAdmin))
	admin.DELETE("/:id/face-id", h.adminHandler.DeleteFaceID, middleware.RequireRole(models.RoleSuperAdmin))
	admin.GET("/:id/security", h.adminHandler.MemberSecurity, middleware.RequireAudience(jwt.AudienceAdmin))
}
