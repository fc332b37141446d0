package middleware

import (
	"errors"

	jwtpkg "github.com/alshuail/authnotify/internal/pkg/jwt"
	"github.com/alshuail/authnotify/internal/pkg/requestcontext"
	"github.com/alshuail/authnotify/internal/utils"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const claimsContextKey = "claims"

// JWTAuthMiddleware authenticates bearer tokens signed by issuer. The claims are
// stored on the context along with user_id and role.
func JWTAuthMiddleware(issuer *jwtpkg.Issuer) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: claimsContextKey,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return issuer.Validate(auth)
		},
		SuccessHandler: func(c echo.Context) {
			claims, ok := c.Get(claimsContextKey).(*jwtpkg.Claims)
			if !ok {
				return
			}
			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)
			ctx := requestcontext.WithUserID(c.Request().Context(), claims.UserID)
			c.SetRequest(c.Request().WithContext(ctx))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var extractErr *echojwt.TokenExtractionError
			if errors.As(err, &extractErr) {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}
			return utils.UnauthorizedResponse(c, "Invalid token")
		},
	})
}

// ClaimsFrom returns the authenticated claims, or nil outside a protected route
func ClaimsFrom(c echo.Context) *jwtpkg.Claims {
	claims, _ := c.Get(claimsContextKey).(*jwtpkg.Claims)
	return claims
}

// RequireRole lets the request through only when the token carries one of roles
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return utils.UnauthorizedResponse(c, "")
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Insufficient permissions")
		}
	}
}

// RequireAudience lets the request through only for tokens issued to audience
func RequireAudience(audience string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return utils.UnauthorizedResponse(c, "")
			}
			if claims.Audience != audience {
				return utils.ForbiddenResponse(c, "Insufficient permissions")
			}
			return next(c)
		}
	}
}
