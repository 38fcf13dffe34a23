package middleware

import (
	"net/http"

	"fixitnow/internal/domain"
	"fixitnow/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated user has one of the given roles.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			return
		}

		current, _ := role.(string)
		for _, r := range roles {
			if current == string(r) {
				c.Next()
				return
			}
		}
		response.Abort(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
	}
}

// RequireSelf allows the request only when the caller's id equals the path parameter.
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}
		if actor.ID != c.Param(param) {
			response.Abort(c, http.StatusForbidden, "FORBIDDEN", "You can only modify your own profile")
			return
		}
		c.Next()
	}
}

// CustomerOnly admits customers and admins.
func CustomerOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleUser, domain.RoleAdmin)
}

func ProviderOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleProvider)
}
