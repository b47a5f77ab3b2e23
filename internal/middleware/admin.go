package middleware

import (
	"strings"

	"github.com/rajendra-kc/scamlens/internal/pkg/response"
	"github.com/rajendra-kc/scamlens/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

// AdminAuth requires a valid admin bearer token. Only moderation endpoints
// (gallery deletion) sit behind this; everything else is anonymous.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		// Support both "Bearer <token>" (case-insensitive) and raw token in header
		fields := strings.Fields(authHeader)
		var tokenString string
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			tokenString = fields[1]
		} else {
			tokenString = authHeader
		}

		claims, err := token.ValidateToken(secret, tokenString)
		if err != nil || claims.Role != token.RoleAdmin {
			response.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set("role", claims.Role)
		c.Next()
	}
}
