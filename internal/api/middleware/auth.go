package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shelftalk/shelftalk/internal/auth"
	"github.com/shelftalk/shelftalk/pkg/response"
)

// RequireAuth resolves the bearer token to an actor identity and aborts with
// 401 otherwise. Handlers behind it can rely on CtxUserIDKey being set.
func RequireAuth(m *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c, "missing bearer token")
			c.Abort()
			return
		}
		claims, err := m.Parse(token)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}
		revoked, err := m.IsRevoked(c.Request.Context(), claims)
		if err != nil {
			response.InternalError(c, err)
			c.Abort()
			return
		}
		if revoked {
			response.Unauthorized(c, "token revoked")
			c.Abort()
			return
		}
		c.Set(auth.CtxUserIDKey, claims.Subject)
		c.Set(auth.CtxUsernameKey, claims.Username)
		c.Set(auth.CtxClaimsKey, claims)
		c.Next()
	}
}
