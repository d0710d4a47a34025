package middleware

import (
	"errors"
	"net/http"
	"strings"

	"os_financeiro/internal/domain/entities"
	"os_financeiro/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	rolesKey        = "roles"
	capabilitiesKey = "capabilities"
)

// ErrMissingSigningSecret is returned instead of verifying against an empty HMAC
// key, which would accept tokens anyone can sign.
var ErrMissingSigningSecret = errors.New("jwt signing secret not configured")

var (
	errMissingToken  = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	errInvalidToken  = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errFinancialRole = pkg.NewDomainErrorSimple("FINANCIAL_ACCESS_DENIED", "Financial data is not available for this user", http.StatusForbidden)
)

// AccessClaims are the identity flags issued by the auth provider.
type AccessClaims struct {
	UserID       string `json:"user_id"`
	IsAdmin      bool   `json:"is_admin"`
	IsTechnician bool   `json:"is_technician"`
	jwt.RegisteredClaims
}

func (c AccessClaims) Roles() entities.Roles {
	return entities.Roles{UserID: c.UserID, IsAdmin: c.IsAdmin, IsTechnician: c.IsTechnician}
}

// ParseAccessToken validates an HS256 token and returns its claims.
func ParseAccessToken(secret, tokenString string) (*AccessClaims, error) {
	if secret == "" {
		return nil, ErrMissingSigningSecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// RequireFinancialAccess authenticates the bearer token and only lets through
// users whose roles grant financial visibility. Without a secret every request
// is rejected.
func RequireFinancialAccess(secret string) gin.HandlerFunc {
	if secret == "" {
		zap.S().Errorw("[auth][middleware] jwt secret not configured; rejecting all financial requests")
	}
	return func(c *gin.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		claims, err := ParseAccessToken(secret, strings.TrimSpace(parts[1]))
		if err != nil {
			zap.S().Infow("[auth][middleware] token rejected", "path", c.FullPath(), "error", err)
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		roles := claims.Roles()
		caps := roles.Capabilities()
		if !caps.CanViewFinancials {
			zap.S().Infow("[auth][middleware] financial access denied",
				"user_id", roles.UserID, "is_admin", roles.IsAdmin, "is_technician", roles.IsTechnician)
			c.AbortWithStatusJSON(errFinancialRole.HTTPStatus, errFinancialRole.ToHTTPError())
			return
		}

		c.Set(rolesKey, roles)
		c.Set(capabilitiesKey, caps)
		c.Next()
	}
}

// CapabilitiesFrom returns the capabilities resolved by RequireFinancialAccess.
// Requests that never went through the middleware get no capabilities.
func CapabilitiesFrom(c *gin.Context) entities.Capabilities {
	v, ok := c.Get(capabilitiesKey)
	if !ok {
		return entities.Capabilities{}
	}
	caps, _ := v.(entities.Capabilities)
	return caps
}

// SetCapabilities stores capabilities on the request context.
func SetCapabilities(c *gin.Context, caps entities.Capabilities) {
	c.Set(capabilitiesKey, caps)
}
