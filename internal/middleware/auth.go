package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/cachinadev/turismo-app/internal/auth"
	"github.com/cachinadev/turismo-app/internal/domain"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "user_role"
	ctxEmail  = "user_email"
)

// JWTAuth validates the bearer access token and stores the identity on the
// request context for downstream handlers.
func JWTAuth(tokens *auth.TokenManager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		claims, err := tokens.ParseAccess(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ctxUserID, claims.Subject)
		c.Set(ctxRole, claims.Role)
		c.Set(ctxEmail, claims.Email)
		c.Next()
	}
}

// OptionalJWT parses the bearer token when one is present but never aborts.
// Public catalog routes use it so operators can preview inactive packages.
func OptionalJWT(tokens *auth.TokenManager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			if claims, err := tokens.ParseAccess(strings.TrimPrefix(header, "Bearer ")); err == nil {
				c.Set(ctxUserID, claims.Subject)
				c.Set(ctxRole, claims.Role)
				c.Set(ctxEmail, claims.Email)
			}
		}
		c.Next()
	}
}

// RequireRole rejects authenticated users whose role does not satisfy the
// required one. Admin satisfies agent, not the other way around.
func RequireRole(required string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		role := c.GetString(ctxRole)
		if !domain.RoleSatisfies(role, required) {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id set by JWTAuth.
func UserID(c *ginext.Context) string {
	return c.GetString(ctxUserID)
}

// Role returns the authenticated role set by JWTAuth.
func Role(c *ginext.Context) string {
	return c.GetString(ctxRole)
}
