package middleware

import (
	"net/http"
	"strings"

	"fixitnow/internal/domain"
	"fixitnow/internal/pkg/jwt"
	"fixitnow/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// JWTAuth requires a valid bearer token and stores its subject and role in the context.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			response.Abort(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			response.Abort(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be: Bearer <token>")
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// ActorFrom returns the authenticated caller. ok is false on routes without JWTAuth.
func ActorFrom(c *gin.Context) (domain.Actor, bool) {
	id := c.GetString(ContextUserID)
	if id == "" {
		return domain.Actor{}, false
	}
	return domain.Actor{ID: id, Role: domain.UserRole(c.GetString(ContextRole))}, true
}
