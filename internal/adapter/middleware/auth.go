package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	ContextUserID = "userID"
	ContextRole   = "role"
	ContextClaims = "claims"
)

// Claims is the token payload issued by the auth service. The lifecycle
// engine only consumes the already-authenticated subject and role.
type Claims struct {
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// Auth validates the bearer token and puts userID/role on the context.
func Auth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(raw, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}

			claims := &Claims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !parsed.Valid || claims.Subject == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}

			c.Set(ContextUserID, claims.Subject)
			c.Set(ContextRole, claims.Role)
			c.Set(ContextClaims, claims)
			return next(c)
		}
	}
}

// IsAdmin reports whether the current role may use admin endpoints.
func IsAdmin(role string) bool { return role == "admin" || role == "super_admin" }

// RequireAdmin gates admin-only routes. Must run after Auth.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Get(ContextRole).(string)
		if !IsAdmin(role) {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "admin access required"})
		}
		return next(c)
	}
}

// UserID returns the authenticated subject, empty when unauthenticated.
func UserID(c echo.Context) string {
	id, _ := c.Get(ContextUserID).(string)
	return id
}

// Role returns the authenticated role, empty when unauthenticated.
func Role(c echo.Context) string {
	role, _ := c.Get(ContextRole).(string)
	return role
}

// DisplayName builds the human label stamped onto audit entries and notes.
func DisplayName(c echo.Context) string {
	claims, _ := c.Get(ContextClaims).(*Claims)
	if claims == nil {
		return ""
	}
	name := strings.TrimSpace(claims.FirstName + " " + claims.LastName)
	if name == "" {
		return claims.Email
	}
	return name
}
