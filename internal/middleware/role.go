package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"userhub/internal/domain"
	"userhub/internal/pkg/response"
)

// RequireRole lets the request through only when the authenticated user's
// role is one of the allowed ones. Runs after JWTAuth.
func RequireRole(allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		role, ok := v.(domain.Role)
		if !ok || !role.IsValid() {
			response.Error(c, http.StatusForbidden, "Insufficient permissions")
			c.Abort()
			return
		}

		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "Insufficient permissions")
		c.Abort()
	}
}

// AdminOnly gates a route to administrators.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}
