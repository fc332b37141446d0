package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/apperror"
	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/alshuail/authnotify/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
)

// Audience classes
const (
	AudienceMember = "member"
	AudienceAdmin  = "admin"
)

// developmentSecret is only used outside production when JWT_SECRET is unset
const developmentSecret = "dev-only-insecure-jwt-secret-do-not-deploy"

var ErrInvalidToken = errors.New("invalid token")

// Identity is the subject a token is issued for
type Identity struct {
	UserID string
	Phone  string
	Role   string
}

// Claims are the validated contents of a token
type Claims struct {
	UserID    string
	Phone     string
	Role      string
	Audience  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// AudienceForRole maps a member role to its audience class
func AudienceForRole(role string) string {
	switch role {
	case models.RoleAdmin, models.RoleSuperAdmin, models.RoleFinancialManager:
		return AudienceAdmin
	default:
		return AudienceMember
	}
}

// Issuer signs and validates HS256 session tokens
type Issuer struct {
	secret    []byte
	issuer    string
	memberTTL time.Duration
	adminTTL  time.Duration
	now       func() time.Time
}

// NewIssuer builds the issuer. An empty secret is fatal in production; elsewhere a
// marked development secret is used.
func NewIssuer(cfg models.JWTConfig, environment string) (*Issuer, error) {
	secret := cfg.Secret
	if secret == "" {
		if environment == "production" {
			return nil, apperror.NewConfigurationError("JWT_SECRET is required in production")
		}
		logger.Warn("JWT_SECRET not set, using development secret",
			logger.String("environment", environment))
		secret = developmentSecret
	}

	memberTTL := time.Duration(cfg.MemberExpiration) * time.Minute
	if memberTTL <= 0 {
		memberTTL = 30 * 24 * time.Hour
	}
	adminTTL := time.Duration(cfg.AdminExpiration) * time.Minute
	if adminTTL <= 0 {
		adminTTL = 12 * time.Hour
	}

	return &Issuer{
		secret:    []byte(secret),
		issuer:    cfg.Issuer,
		memberTTL: memberTTL,
		adminTTL:  adminTTL,
		now:       time.Now,
	}, nil
}

// Secret returns the signing key for middleware configuration
func (i *Issuer) Secret() []byte {
	return i.secret
}

// TTL returns the lifetime of tokens issued for role
func (i *Issuer) TTL(role string) time.Duration {
	if AudienceForRole(role) == AudienceAdmin {
		return i.adminTTL
	}
	return i.memberTTL
}

// Issue signs a token for the identity
func (i *Issuer) Issue(identity Identity) (string, time.Time, error) {
	issuedAt := i.now()
	expiresAt := issuedAt.Add(i.TTL(identity.Role))

	claims := jwt.MapClaims{
		"user_id": identity.UserID,
		"phone":   identity.Phone,
		"role":    identity.Role,
		"aud":     AudienceForRole(identity.Role),
		"iat":     issuedAt.Unix(),
		"exp":     expiresAt.Unix(),
		"iss":     i.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Keyfunc rejects anything that is not HMAC-signed
func (i *Issuer) Keyfunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
	}
	return i.secret, nil
}

// Validate parses a token and returns its claims
func (i *Issuer) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, i.Keyfunc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if i.issuer != "" && !mapClaims.VerifyIssuer(i.issuer, true) {
		return nil, fmt.Errorf("%w: unexpected issuer", ErrInvalidToken)
	}

	return ClaimsFromMap(mapClaims)
}

// ClaimsFromMap converts parsed map claims into Claims
func ClaimsFromMap(mapClaims jwt.MapClaims) (*Claims, error) {
	userID, _ := mapClaims["user_id"].(string)
	if userID == "" {
		return nil, fmt.Errorf("%w: missing user_id", ErrInvalidToken)
	}

	claims := &Claims{UserID: userID}
	claims.Phone, _ = mapClaims["phone"].(string)
	claims.Role, _ = mapClaims["role"].(string)
	claims.Audience, _ = mapClaims["aud"].(string)
	if iat, ok := mapClaims["iat"].(float64); ok {
		claims.IssuedAt = time.Unix(int64(iat), 0)
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return claims, nil
}
